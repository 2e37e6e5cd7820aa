package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
)

// List returns the tasks of a view, filtered and ordered, with derived display fields.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	view, err := task.ParseView(string(input.View))
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.load(ctx, view, input)
	if err != nil {
		return task.ListOutput{}, err
	}

	now := uc.now()
	tasks = task.Arrange(tasks, view, now)

	items := make([]task.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, task.Derive(t, now))
	}
	return task.ListOutput{Items: items, Count: len(items)}, nil
}

func (uc *implUseCase) load(ctx context.Context, view task.View, input task.ListInput) ([]model.Task, error) {
	if q := strings.TrimSpace(input.Query); q != "" {
		tasks, err := uc.repo.Search(ctx, q)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List Search: %v", err)
			return nil, fmt.Errorf("search tasks: %w", err)
		}
		tasks = task.FilterByCategory(tasks, input.Category)
		if input.DueBefore != nil {
			tasks = dueBefore(tasks, *input.DueBefore)
		}
		return tasks, nil
	}

	opt := repository.ListOptions{Category: input.Category, DueBefore: input.DueBefore}
	switch view {
	case task.ViewActive:
		opt.Completed = new(bool)
	case task.ViewCompleted:
		done := true
		opt.Completed = &done
	}

	tasks, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func dueBefore(tasks []model.Task, limit time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueAt != nil && t.DueAt.Before(limit) {
			out = append(out, t)
		}
	}
	return out
}

// Observe emits the list for input now and again after every write to the store,
// until ctx is cancelled.
func (uc *implUseCase) Observe(ctx context.Context, input task.ListInput) (<-chan task.ListOutput, error) {
	first, err := uc.List(ctx, input)
	if err != nil {
		return nil, err
	}

	events, unsubscribe := uc.repo.Subscribe()
	out := make(chan task.ListOutput, 1)
	out <- first

	go func() {
		defer close(out)
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				list, err := uc.List(ctx, input)
				if err != nil {
					uc.l.Warnf(ctx, "uc.Observe: %v", err)
					continue
				}
				select {
				case out <- list:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (uc *implUseCase) Counts(ctx context.Context) (task.Counts, error) {
	active, err := uc.repo.CountActive(ctx)
	if err != nil {
		return task.Counts{}, fmt.Errorf("count active: %w", err)
	}
	completed, err := uc.repo.CountCompleted(ctx)
	if err != nil {
		return task.Counts{}, fmt.Errorf("count completed: %w", err)
	}
	overdue, err := uc.repo.CountOverdue(ctx, uc.now())
	if err != nil {
		return task.Counts{}, fmt.Errorf("count overdue: %w", err)
	}
	today, err := uc.repo.ListDueToday(ctx, uc.now())
	if err != nil {
		return task.Counts{}, fmt.Errorf("list due today: %w", err)
	}
	dueToday := 0
	for _, t := range today {
		if !t.Completed {
			dueToday++
		}
	}
	return task.Counts{Active: active, Completed: completed, Overdue: overdue, DueToday: dueToday}, nil
}

// OverdueNotice returns "You have N overdue tasks", or "" when nothing is overdue.
func (uc *implUseCase) OverdueNotice(ctx context.Context) (string, error) {
	overdue, err := uc.repo.ListOverdue(ctx, uc.now())
	if err != nil {
		return "", fmt.Errorf("list overdue: %w", err)
	}
	if len(overdue) == 0 {
		return "", nil
	}
	return fmt.Sprintf("You have %d overdue tasks", len(overdue)), nil
}
