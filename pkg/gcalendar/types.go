package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultDuration   = time.Hour
)

// EventRequest describes one timed event. The event's timezone is taken from
// Start's location.
type EventRequest struct {
	CalendarID string
	Title      string
	Notes      string
	Start      time.Time
	Duration   time.Duration // DefaultDuration when zero

	// PopupMinutes replaces the calendar's default reminders with popups this
	// many minutes before Start. Nil keeps the defaults.
	PopupMinutes []int64
}

// Event is what the API reports back about a created event.
type Event struct {
	ID    string
	Link  string
	Start time.Time
	End   time.Time
}
