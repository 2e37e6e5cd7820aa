package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrTaskNotFound  = errors.New("task not found")
	ErrNothingToUndo = errors.New("no deleted task to restore")
	ErrInvalidView   = errors.New("invalid view")
	ErrEmptyInput    = errors.New("input text is empty")
)
