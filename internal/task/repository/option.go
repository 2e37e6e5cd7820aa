package repository

import "time"

// ListOptions holds filter parameters for listing tasks. Zero values disable a filter.
type ListOptions struct {
	Completed *bool      // Filter by completion state
	Category  string     // Exact category
	DueBefore *time.Time // Due strictly before this moment
}

// SetCompletionOptions holds parameters for changing a task's completion state.
type SetCompletionOptions struct {
	ID          int64
	Completed   bool
	CompletedAt *time.Time // Nil clears the completion stamp
}
