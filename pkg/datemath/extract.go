package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateKeywords is scanned in order and the first contained keyword wins.
// "next <weekday>" entries come before the bare weekday and resolve the same
// way; they exist so the whole phrase is matched (and later stripped).
var dateKeywords = []DateKeyword{
	{Keyword: "today", Resolve: func(now time.Time) time.Time { return startOfDay(now) }},
	{Keyword: "tomorrow", Resolve: func(now time.Time) time.Time { return startOfDay(now.AddDate(0, 0, 1)) }},
	{Keyword: "next monday", Resolve: nextWeekday(time.Monday)},
	{Keyword: "next tuesday", Resolve: nextWeekday(time.Tuesday)},
	{Keyword: "next wednesday", Resolve: nextWeekday(time.Wednesday)},
	{Keyword: "next thursday", Resolve: nextWeekday(time.Thursday)},
	{Keyword: "next friday", Resolve: nextWeekday(time.Friday)},
	{Keyword: "next saturday", Resolve: nextWeekday(time.Saturday)},
	{Keyword: "next sunday", Resolve: nextWeekday(time.Sunday)},
	{Keyword: "monday", Resolve: nextWeekday(time.Monday)},
	{Keyword: "tuesday", Resolve: nextWeekday(time.Tuesday)},
	{Keyword: "wednesday", Resolve: nextWeekday(time.Wednesday)},
	{Keyword: "thursday", Resolve: nextWeekday(time.Thursday)},
	{Keyword: "friday", Resolve: nextWeekday(time.Friday)},
	{Keyword: "saturday", Resolve: nextWeekday(time.Saturday)},
	{Keyword: "sunday", Resolve: nextWeekday(time.Sunday)},
}

var timePatterns = []TimePattern{
	{Name: "clock_meridiem", Re: regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)},
	{Name: "hour_meridiem", Re: regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)},
	{Name: "clock", Re: regexp.MustCompile(`(\d{1,2}):(\d{2})`)},
}

// DateKeywords returns the ordered date keyword table.
func DateKeywords() []DateKeyword {
	out := make([]DateKeyword, len(dateKeywords))
	copy(out, dateKeywords)
	return out
}

// TimePatterns returns the ordered time pattern table.
func TimePatterns() []TimePattern {
	out := make([]TimePattern, len(timePatterns))
	copy(out, timePatterns)
	return out
}

// ExtractDate returns midnight of the day named by the first date keyword
// contained in text.
func ExtractDate(text string, now time.Time) (time.Time, bool) {
	for _, k := range dateKeywords {
		if strings.Contains(text, k.Keyword) {
			return k.Resolve(now), true
		}
	}
	return time.Time{}, false
}

// ExtractTime returns the time of day of the first time pattern found in text.
// Only the first pattern that matches is considered: if its captures are out
// of range no time is reported, even when a later pattern would have matched.
func ExtractTime(text string) (Clock, bool) {
	for _, p := range timePatterns {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return clockFromMatch(m)
	}
	return Clock{}, false
}

// Extract resolves text to a point in time. A date keyword is required; a
// time on its own is not enough. Without a time the DefaultClock is used.
func Extract(text string, now time.Time) (time.Time, bool) {
	day, ok := ExtractDate(text, now)
	if !ok {
		return time.Time{}, false
	}

	clock, ok := ExtractTime(text)
	if !ok {
		clock = DefaultClock
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location()), true
}

func clockFromMatch(m []string) (Clock, bool) {
	var (
		hourStr, minuteStr, meridiem string
	)

	switch len(m) {
	case 4:
		hourStr, minuteStr, meridiem = m[1], m[2], m[3]
	case 3:
		lower := strings.ToLower(m[2])
		if lower == "am" || lower == "pm" {
			hourStr, minuteStr, meridiem = m[1], "0", m[2]
		} else {
			hourStr, minuteStr = m[1], m[2]
		}
	default:
		return Clock{}, false
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Clock{}, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return Clock{}, false
	}

	hour = applyMeridiem(hour, strings.ToLower(meridiem))
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

func applyMeridiem(hour int, meridiem string) int {
	switch {
	case meridiem == "pm" && hour != 12:
		return hour + 12
	case meridiem == "am" && hour == 12:
		return 0
	default:
		return hour
	}
}

// nextWeekday resolves to the next occurrence of target strictly after today.
func nextWeekday(target time.Weekday) func(now time.Time) time.Time {
	return func(now time.Time) time.Time {
		daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		return startOfDay(now.AddDate(0, 0, daysUntil))
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
