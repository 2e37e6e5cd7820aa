package usecase

import (
	"context"
	"fmt"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetByID: %v", err)
		return model.Task{}, fmt.Errorf("load task %d: %w", id, err)
	}
	if t.ID == model.UnassignedID {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// ToggleCompletion flips the completion state. Completing cancels the
// reminder; un-completing re-arms it when the task still has one.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	t = t.SetCompleted(!t.Completed, uc.now())
	err = uc.repo.SetCompletion(ctx, repository.SetCompletionOptions{
		ID:          t.ID,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion SetCompletion: %v", err)
		return model.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}

	if t.Completed {
		uc.reminders.Cancel(t.ID)
	} else {
		uc.reminders.Schedule(ctx, t)
	}
	return t, nil
}

// Delete removes a task and keeps it as the single undo candidate,
// replacing any earlier one.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: %v", err)
		return model.Task{}, fmt.Errorf("delete task %d: %w", id, err)
	}
	uc.reminders.Cancel(id)

	uc.mu.Lock()
	uc.lastDeleted = &t
	uc.mu.Unlock()
	return t, nil
}

// UndoDelete re-inserts the last deleted task under a fresh id.
func (uc *implUseCase) UndoDelete(ctx context.Context) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.lastDeleted == nil {
		return model.Task{}, task.ErrNothingToUndo
	}

	t := *uc.lastDeleted
	t.ID = model.UnassignedID
	id, err := uc.repo.Insert(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UndoDelete Insert: %v", err)
		return model.Task{}, fmt.Errorf("restore task: %w", err)
	}
	t.ID = id
	uc.reminders.Schedule(ctx, t)

	uc.lastDeleted = nil
	return t, nil
}

func (uc *implUseCase) DismissUndo() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lastDeleted = nil
}
