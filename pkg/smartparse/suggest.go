package smartparse

import (
	"strings"
	"unicode/utf8"
)

const maxSuggestions = 5

var templates = []string{
	"Call someone tomorrow 9am",
	"Meeting with team next Monday 2pm",
	"Buy groceries Friday evening",
	"Doctor appointment next Tuesday 10am",
	"Submit report by Friday urgent",
	"Review presentation later",
	"Pay bills tomorrow",
	"Workout session 6pm today",
}

// Templates returns the canned task sentences.
func Templates() []string {
	out := make([]string, len(templates))
	copy(out, templates)
	return out
}

// Suggest returns up to five templates containing partial (case-insensitive).
// Inputs shorter than three characters match every template.
func Suggest(partial string) []string {
	lowered := strings.ToLower(partial)
	short := utf8.RuneCountInString(partial) < 3

	out := make([]string, 0, maxSuggestions)
	for _, t := range templates {
		if short || strings.Contains(strings.ToLower(t), lowered) {
			out = append(out, t)
		}
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
