package editor

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/smartparse"
)

// State is the editing session of one client: the task form, the undo
// snackbar, the transient message and the selected list tab.
type State struct {
	Open        bool
	EditingID   int64 // 0 while adding a new task
	Title       string
	Description string
	Priority    model.Priority
	DueAt       *time.Time
	HasReminder bool
	Suggestions []string

	Deleted     *model.Task
	UndoVisible bool
	Message     string
	Tab         task.View
}

// Initial returns the state of a fresh session.
func Initial() State {
	return State{Priority: model.PriorityMedium, Tab: task.ViewAll}
}

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

type (
	ShowAdd            struct{}
	ShowEdit           struct{ Task model.Task }
	Hide               struct{}
	TitleChanged       struct{ Title string }
	DescriptionChanged struct{ Description string }
	PriorityChanged    struct{ Priority model.Priority }
	DueChanged         struct{ DueAt *time.Time }
	ReminderChanged    struct{ On bool }
	SuggestionApplied  struct{ Parsed smartparse.ParsedTask }
	QuickAddParsed     struct{ Parsed smartparse.ParsedTask }
	TaskDeleted        struct{ Task model.Task }
	UndoDismissed      struct{}
	UndoCompleted      struct{}
	MessageShown       struct{ Message string }
	MessageCleared     struct{}
	TabSelected        struct{ Tab task.View }
)

func (ShowAdd) isEvent()            {}
func (ShowEdit) isEvent()           {}
func (Hide) isEvent()               {}
func (TitleChanged) isEvent()       {}
func (DescriptionChanged) isEvent() {}
func (PriorityChanged) isEvent()    {}
func (DueChanged) isEvent()         {}
func (ReminderChanged) isEvent()    {}
func (SuggestionApplied) isEvent()  {}
func (QuickAddParsed) isEvent()     {}
func (TaskDeleted) isEvent()        {}
func (UndoDismissed) isEvent()      {}
func (UndoCompleted) isEvent()      {}
func (MessageShown) isEvent()       {}
func (MessageCleared) isEvent()     {}
func (TabSelected) isEvent()        {}
