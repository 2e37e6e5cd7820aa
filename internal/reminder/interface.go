package reminder

import (
	"context"

	"smart-todo/internal/model"
)

// Notifier delivers a due reminder somewhere a person will see it.
type Notifier interface {
	Notify(ctx context.Context, task model.Task) error
}

// TaskReader re-reads a task when its reminder fires.
type TaskReader interface {
	GetByID(ctx context.Context, id int64) (model.Task, error)
}

// Scheduler arms and cancels task reminders.
type Scheduler interface {
	// Schedule arms the reminder of task and reports whether one was armed.
	Schedule(ctx context.Context, task model.Task) bool
	Cancel(taskID int64)
	Reschedule(ctx context.Context, task model.Task) bool
	CancelAll() int
}
