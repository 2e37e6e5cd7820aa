package repository

import (
	"context"
	"time"

	"smart-todo/internal/model"
)

// Repository is the data access interface for tasks.
// Lookups return a zero-value Task (ID == 0) when the row does not exist.
type Repository interface {
	TaskRepository
	Subscriber
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	Insert(ctx context.Context, task model.Task) (int64, error)
	InsertBatch(ctx context.Context, tasks []model.Task) ([]int64, error)
	Update(ctx context.Context, task model.Task) error
	SetCompletion(ctx context.Context, opt SetCompletionOptions) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Search(ctx context.Context, text string) ([]model.Task, error)
	ListWithReminders(ctx context.Context) ([]model.Task, error)
	ListDueToday(ctx context.Context, now time.Time) ([]model.Task, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.Task, error)

	CountActive(ctx context.Context) (int, error)
	CountCompleted(ctx context.Context) (int, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
}

// Subscriber exposes the change feed of the store.
type Subscriber interface {
	// Subscribe returns a channel receiving one event per committed write and
	// a function that ends the subscription.
	Subscribe() (<-chan model.TaskEvent, func())
}
