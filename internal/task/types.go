package task

import (
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
)

// View selects which tasks a list shows and how they are ordered.
type View string

const (
	ViewAll       View = "all"
	ViewActive    View = "active"
	ViewCompleted View = "completed"
)

// ParseView maps a view name (any case, empty = all) to a View.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewAll:
		return ViewAll, nil
	case ViewActive:
		return ViewActive, nil
	case ViewCompleted:
		return ViewCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
}

// SaveInput is the input for creating (ID == 0) or editing a task.
type SaveInput struct {
	ID          int64
	Title       string
	Description string
	Priority    model.Priority
	DueAt       *time.Time
	HasReminder bool
	Category    string
}

// SaveOutput is the result of Save and QuickAdd.
type SaveOutput struct {
	Task         model.Task
	Created      bool
	CalendarLink string // Empty unless the calendar mirror is enabled
	Message      string
}

// QuickAddInput is the input for parsing and saving a sentence in one step.
type QuickAddInput struct {
	RawText     string
	Description string
	Category    string
}

// ListInput selects tasks for a list view.
type ListInput struct {
	View      View
	Query     string     // Case-insensitive match on title or description
	Category  string     // Exact category match (optional)
	DueBefore *time.Time // Only tasks due strictly before this moment (optional)
}

// TaskItem is a task with the attributes derived for display.
type TaskItem struct {
	Task          model.Task
	IsOverdue     bool
	IsDueToday    bool
	IsDueTomorrow bool
	DueLabel      string // Relative label, empty without a due date
	TimeUntilDue  string // Empty without a due date
}

// ListOutput is an ordered list view.
type ListOutput struct {
	Items []TaskItem
	Count int
}

// Counts summarises the store for badges.
type Counts struct {
	Active    int
	Completed int
	Overdue   int
	DueToday  int // incomplete tasks due on today's date
}

// ImportOutput is the result of importing an exported JSON document.
type ImportOutput struct {
	Imported int
	Message  string
}

// User-facing notices shared by the delivery layers.
const (
	MsgDeleted  = "Task deleted"
	MsgRestored = "Task restored"
)
