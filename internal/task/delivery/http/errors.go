package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/task"
	pkgErrors "smart-todo/pkg/errors"
	"smart-todo/pkg/response"
)

var (
	errInvalidID        = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
	errInvalidDueBefore = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid due_before")
	errInternal         = pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are persistence failures and surface as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title cannot be empty")
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text cannot be empty")
	case errors.Is(err, task.ErrInvalidView):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "view must be one of all, active, completed")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrNothingToUndo):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to undo")
	default:
		return errInternal
	}
}
