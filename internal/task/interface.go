package task

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/pkg/smartparse"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Save creates a task (ID == 0) or edits an existing one, then schedules or cancels its reminder.
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)

	// QuickAdd parses a free-form sentence and saves the resulting task.
	QuickAdd(ctx context.Context, input QuickAddInput) (SaveOutput, error)

	// Parse runs the smart parser without saving anything.
	Parse(raw string) smartparse.ParsedTask

	// Suggest returns canned task sentences matching a partial input.
	Suggest(partial string) []string

	Detail(ctx context.Context, id int64) (model.Task, error)
	ToggleCompletion(ctx context.Context, id int64) (model.Task, error)

	// Delete removes a task and keeps it in the single undo slot.
	Delete(ctx context.Context, id int64) (model.Task, error)
	UndoDelete(ctx context.Context) (model.Task, error)
	DismissUndo()

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Observe(ctx context.Context, input ListInput) (<-chan ListOutput, error)
	Counts(ctx context.Context) (Counts, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (ImportOutput, error)

	// RestoreReminders re-arms reminders of every stored task that still needs one.
	RestoreReminders(ctx context.Context) (int, error)
	OverdueNotice(ctx context.Context) (string, error)
}
