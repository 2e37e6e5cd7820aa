package datemath

import (
	"fmt"
	"time"
)

const (
	DisplayLayout = "Jan 02, 2006 at 3:04 PM"
	TimeLayout    = "3:04 PM"
)

// FormatForDisplay formats t as "Jan 02, 2006 at 3:04 PM".
func FormatForDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// FormatTime formats t as "3:04 PM".
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// DaysBetween returns the number of calendar days from now's date to t's date,
// both taken in now's location.
func DaysBetween(now, t time.Time) int {
	t = t.In(now.Location())
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// RelativeLabel renders due relative to now: "Today 3:04 PM", "Tomorrow ...",
// "Yesterday ...", "<Weekday> ..." within the next week, "Last <Weekday> ..."
// within the past week, otherwise the full display format.
func RelativeLabel(due, now time.Time) string {
	due = due.In(now.Location())
	diff := DaysBetween(now, due)
	clock := FormatTime(due)

	switch {
	case diff == 0:
		return "Today " + clock
	case diff == 1:
		return "Tomorrow " + clock
	case diff == -1:
		return "Yesterday " + clock
	case diff > 1 && diff <= 7:
		return fmt.Sprintf("%s %s", due.Weekday(), clock)
	case diff < -1 && diff >= -7:
		return fmt.Sprintf("Last %s %s", due.Weekday(), clock)
	default:
		return FormatForDisplay(due)
	}
}

// IsDueToday reports whether due falls on now's calendar date.
func IsDueToday(due, now time.Time) bool {
	return DaysBetween(now, due) == 0
}

// IsDueTomorrow reports whether due falls on the calendar date after now's.
func IsDueTomorrow(due, now time.Time) bool {
	return DaysBetween(now, due) == 1
}

// TimeUntilDue renders the remaining time: "Overdue", "45m", "5h 12m" or "3d 4h".
func TimeUntilDue(due, now time.Time) string {
	d := due.Sub(now)
	hours := int64(d / time.Hour)
	minutes := int64(d / time.Minute)

	switch {
	case hours < 0:
		return "Overdue"
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	default:
		return fmt.Sprintf("%dd %dh", hours/24, hours%24)
	}
}
