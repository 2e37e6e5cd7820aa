package smartparse

import (
	"regexp"
	"strings"
)

var priorityKeywords = []PriorityKeyword{
	newPriorityKeyword("urgent", PriorityHigh),
	newPriorityKeyword("important", PriorityHigh),
	newPriorityKeyword("high priority", PriorityHigh),
	newPriorityKeyword("asap", PriorityHigh),
	newPriorityKeyword("low priority", PriorityLow),
	newPriorityKeyword("later", PriorityLow),
	newPriorityKeyword("sometime", PriorityLow),
}

var reminderRe = regexp.MustCompile(`(?i)remind me|reminder`)

func newPriorityKeyword(keyword string, p Priority) PriorityKeyword {
	return PriorityKeyword{
		Keyword:  keyword,
		Priority: p,
		re:       regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword)),
	}
}

// PriorityKeywords returns the ordered priority keyword table.
func PriorityKeywords() []PriorityKeyword {
	out := make([]PriorityKeyword, len(priorityKeywords))
	copy(out, priorityKeywords)
	return out
}

// DetectPriority returns the priority of the first keyword contained in
// lowered. Without a match it returns MEDIUM and false.
func DetectPriority(lowered string) (PriorityKeyword, bool) {
	for _, k := range priorityKeywords {
		if strings.Contains(lowered, k.Keyword) {
			return k, true
		}
	}
	return PriorityKeyword{Priority: PriorityMedium}, false
}

// Strip removes every case-insensitive occurrence of k from s.
func (k PriorityKeyword) Strip(s string) string {
	if k.re == nil {
		return s
	}
	return k.re.ReplaceAllString(s, "")
}

// HasReminderPhrase reports whether s asks for a reminder.
func HasReminderPhrase(s string) bool {
	return reminderRe.MatchString(s)
}

// StripReminder removes every "remind me" and "reminder" from s.
func StripReminder(s string) string {
	return reminderRe.ReplaceAllString(s, "")
}
