package telegram

import (
	"errors"

	"smart-todo/internal/task"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrEmptyInput):
		return "⚠️ The task needs a title."
	case errors.Is(err, task.ErrTaskNotFound):
		return "⚠️ No task with that id."
	case errors.Is(err, task.ErrNothingToUndo):
		return "Nothing to undo."
	case errors.Is(err, task.ErrInvalidView):
		return "⚠️ View must be all, active or completed."
	default:
		return "Something went wrong while handling your request. Please try again."
	}
}
