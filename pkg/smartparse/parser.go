package smartparse

import (
	"regexp"
	"strings"
	"time"

	"smart-todo/pkg/datemath"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	leadingRe    = regexp.MustCompile(`^[,\s]+`)
	trailingRe   = regexp.MustCompile(`[,\s]+$`)

	dateKeywordRes = compileDateKeywords()
)

// Parser turns free text into a ParsedTask relative to an injected clock.
type Parser struct {
	location *time.Location
	clock    func() time.Time
}

// New creates a Parser. A nil location means the clock's own location and a
// nil clock means time.Now.
func New(location *time.Location, clock func() time.Time) *Parser {
	if clock == nil {
		clock = time.Now
	}
	return &Parser{location: location, clock: clock}
}

// Now returns the parser's current moment.
func (p *Parser) Now() time.Time {
	now := p.clock()
	if p.location != nil {
		now = now.In(p.location)
	}
	return now
}

// Parse parses input against the parser's current moment.
func (p *Parser) Parse(input string) ParsedTask {
	return ParseAt(input, p.Now())
}

// ParseAt parses input relative to now. It never fails: fragments that do not
// match simply contribute nothing.
//
// Order matters because every step strips its matched text from the title:
// reminder phrase, first priority keyword, then date/time. Only when a date
// was found is the title swept of every date keyword, time pattern and
// priority keyword.
func ParseAt(input string, now time.Time) ParsedTask {
	lowered := strings.ToLower(strings.TrimSpace(input))
	title := strings.TrimSpace(input)
	result := ParsedTask{Priority: PriorityMedium}

	if HasReminderPhrase(lowered) {
		result.HasReminder = true
		title = strings.TrimSpace(StripReminder(title))
		lowered = strings.ToLower(title)
	}

	if kw, ok := DetectPriority(lowered); ok {
		result.Priority = kw.Priority
		title = strings.TrimSpace(kw.Strip(title))
		lowered = strings.ToLower(title)
	}

	if due, ok := datemath.Extract(lowered, now); ok {
		result.DueDate = &due
		title = sweep(title)
	}

	title = tidy(title)
	if title == "" {
		title = input
	}
	result.Title = title

	return result
}

// sweep removes all date keywords, time patterns and priority keywords.
func sweep(title string) string {
	for _, re := range dateKeywordRes {
		title = re.ReplaceAllString(title, "")
	}
	for _, p := range datemath.TimePatterns() {
		title = p.Re.ReplaceAllString(title, "")
	}
	for _, k := range priorityKeywords {
		title = k.Strip(title)
	}
	return title
}

func compileDateKeywords() []*regexp.Regexp {
	keywords := datemath.DateKeywords()
	out := make([]*regexp.Regexp, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(k.Keyword)))
	}
	return out
}

func tidy(title string) string {
	title = whitespaceRe.ReplaceAllString(title, " ")
	title = leadingRe.ReplaceAllString(title, "")
	title = trailingRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
