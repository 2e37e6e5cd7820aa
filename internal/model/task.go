package model

import (
	"fmt"
	"time"

	"smart-todo/pkg/datemath"
	"smart-todo/pkg/smartparse"
)

// Priority is the task urgency level (LOW=0, MEDIUM=1, HIGH=2).
type Priority = smartparse.Priority

const (
	PriorityLow    = smartparse.PriorityLow
	PriorityMedium = smartparse.PriorityMedium
	PriorityHigh   = smartparse.PriorityHigh
)

// UnassignedID marks a task that storage has not assigned an id to yet.
const UnassignedID int64 = 0

// Task is a to-do item as stored by the task repository.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	HasReminder bool       `json:"has_reminder"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Category    string     `json:"category,omitempty"`
}

// IsOverdue reports whether the task is incomplete and its due time has passed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && !t.Completed
}

// IsDueToday reports whether the task is due on now's calendar date.
func (t Task) IsDueToday(now time.Time) bool {
	return t.DueAt != nil && datemath.IsDueToday(*t.DueAt, now)
}

// NeedsReminder reports whether a reminder may be scheduled for the task.
func (t Task) NeedsReminder() bool {
	return t.HasReminder && t.DueAt != nil && !t.Completed
}

// ReminderKey is the scheduler key of the task's reminder.
func (t Task) ReminderKey() string {
	return ReminderKey(t.ID)
}

// ReminderKey builds the scheduler key for a task id.
func ReminderKey(id int64) string {
	return fmt.Sprintf("reminder_%d", id)
}

// SortKey is dueAt when present, otherwise createdAt.
func (t Task) SortKey() time.Time {
	if t.DueAt != nil {
		return *t.DueAt
	}
	return t.CreatedAt
}

// SetCompleted returns a copy with completion toggled to completed. CompletedAt
// is stamped on false→true and cleared on true→false.
func (t Task) SetCompleted(completed bool, now time.Time) Task {
	if completed == t.Completed {
		return t
	}
	t.Completed = completed
	if completed {
		stamp := now
		t.CompletedAt = &stamp
	} else {
		t.CompletedAt = nil
	}
	return t
}

// SetDue returns a copy with a new due time. Clearing the due time clears the reminder too.
func (t Task) SetDue(due *time.Time) Task {
	t.DueAt = due
	if due == nil {
		t.HasReminder = false
	}
	return t
}
