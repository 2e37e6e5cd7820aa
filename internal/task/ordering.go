package task

import (
	"cmp"
	"slices"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

const (
	rankOverdue   = 100
	rankCompleted = -1
)

// rank places overdue active tasks first, other active tasks by priority,
// and completed tasks below every priority.
func rank(t model.Task, now time.Time) int {
	switch {
	case t.Completed:
		return rankCompleted
	case t.IsOverdue(now):
		return rankOverdue
	default:
		return int(t.Priority)
	}
}

// SortAll orders the combined list view: rank descending, then dueAt (or
// createdAt) ascending.
func SortAll(tasks []model.Task, now time.Time) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := cmp.Compare(rank(b, now), rank(a, now)); c != 0 {
			return c
		}
		return a.SortKey().Compare(b.SortKey())
	})
}

// SortActive orders by priority descending, then dueAt ascending with undated tasks last.
func SortActive(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return compareOptional(a.DueAt, b.DueAt, false)
	})
}

// SortCompleted orders by completedAt descending.
func SortCompleted(tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		return compareOptional(a.CompletedAt, b.CompletedAt, true)
	})
}

// compareOptional orders present times before absent ones.
func compareOptional(a, b *time.Time, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return b.Compare(*a)
	default:
		return a.Compare(*b)
	}
}

// Arrange filters tasks for view and orders them. The input slice is not modified.
func Arrange(tasks []model.Task, view View, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch view {
		case ViewActive:
			if t.Completed {
				continue
			}
		case ViewCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	switch view {
	case ViewActive:
		SortActive(out)
	case ViewCompleted:
		SortCompleted(out)
	default:
		SortAll(out, now)
	}
	return out
}

// FilterByCategory keeps tasks in category. An empty category keeps everything.
func FilterByCategory(tasks []model.Task, category string) []model.Task {
	if category == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Derive computes the display attributes of t at now.
func Derive(t model.Task, now time.Time) TaskItem {
	item := TaskItem{
		Task:       t,
		IsOverdue:  t.IsOverdue(now),
		IsDueToday: t.IsDueToday(now),
	}
	if t.DueAt != nil {
		item.IsDueTomorrow = !t.Completed && datemath.IsDueTomorrow(*t.DueAt, now)
		item.DueLabel = datemath.RelativeLabel(*t.DueAt, now)
		item.TimeUntilDue = datemath.TimeUntilDue(*t.DueAt, now)
	}
	return item
}
