package smartparse

import (
	"regexp"
	"time"
)

// ParsedTask is the structured result of parsing one free-form sentence.
type ParsedTask struct {
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	HasReminder bool       `json:"has_reminder"`
}

// PriorityKeyword maps a literal phrase to the priority it implies.
type PriorityKeyword struct {
	Keyword  string
	Priority Priority
	re       *regexp.Regexp
}
