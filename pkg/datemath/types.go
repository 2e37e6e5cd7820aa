package datemath

import (
	"regexp"
	"time"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// DefaultClock is used when a date keyword matched but no time did.
var DefaultClock = Clock{Hour: 9, Minute: 0}

// DateKeyword pairs a literal keyword with the function resolving it to a calendar day.
type DateKeyword struct {
	Keyword string
	Resolve func(now time.Time) time.Time
}

// TimePattern is one entry of the ordered time table.
type TimePattern struct {
	Name string
	Re   *regexp.Regexp
}
