package sqlite

import (
	"context"
	"testing"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/sqlitedb"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func newTestRepository(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()

	db, err := sqlitedb.Open(ctx, sqlitedb.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop(), time.UTC)
}

func TestInsertAndGetByID(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	in := model.Task{
		Title:       "Call mom",
		Description: "about the weekend",
		Priority:    model.PriorityHigh,
		DueAt:       ptr(now.Add(2 * time.Hour)),
		HasReminder: true,
		CreatedAt:   now,
		Category:    "family",
	}
	id, err := r.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if id == 0 {
		t.Fatal("Insert() returned id 0")
	}

	got, err := r.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	in.ID = id
	if got.ID != in.ID || got.Title != in.Title || got.Description != in.Description ||
		got.Priority != in.Priority || !got.DueAt.Equal(*in.DueAt) || !got.HasReminder ||
		got.Completed || got.CompletedAt != nil || !got.CreatedAt.Equal(in.CreatedAt) || got.Category != in.Category {
		t.Errorf("GetByID() = %+v, want %+v", got, in)
	}
}

func TestGetByIDMissingReturnsZeroValue(t *testing.T) {
	r := newTestRepository(t)

	got, err := r.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != 0 {
		t.Errorf("GetByID() = %+v, want zero value", got)
	}
}

func TestInsertWithIDReplaces(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	id, _ := r.Insert(ctx, model.Task{Title: "first", CreatedAt: now})
	if _, err := r.Insert(ctx, model.Task{ID: id, Title: "second", CreatedAt: now}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, _ := r.GetByID(ctx, id)
	if got.Title != "second" {
		t.Errorf("title = %q, want second", got.Title)
	}
	if n, _ := r.CountActive(ctx); n != 1 {
		t.Errorf("CountActive() = %d, want 1", n)
	}
}

func TestUpdateSetCompletionDelete(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	id, _ := r.Insert(ctx, model.Task{Title: "draft", CreatedAt: now})
	task, _ := r.GetByID(ctx, id)

	task.Title = "final"
	task.DueAt = ptr(now.Add(time.Hour))
	if err := r.Update(ctx, task); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := r.SetCompletion(ctx, repo.SetCompletionOptions{ID: id, Completed: true, CompletedAt: ptr(now)}); err != nil {
		t.Fatalf("SetCompletion() error = %v", err)
	}
	got, _ := r.GetByID(ctx, id)
	if got.Title != "final" || !got.Completed || got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("after update = %+v", got)
	}

	if err := r.SetCompletion(ctx, repo.SetCompletionOptions{ID: id}); err != nil {
		t.Fatalf("SetCompletion() error = %v", err)
	}
	got, _ = r.GetByID(ctx, id)
	if got.Completed || got.CompletedAt != nil {
		t.Errorf("after un-complete = %+v", got)
	}

	if err := r.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := r.GetByID(ctx, id); got.ID != 0 {
		t.Errorf("task still present after Delete: %+v", got)
	}
	if err := r.Delete(ctx, id); err != nil {
		t.Errorf("Delete() of missing id error = %v", err)
	}
}

func seed(t *testing.T, r repo.Repository) map[string]int64 {
	t.Helper()
	tasks := []model.Task{
		{Title: "Buy milk", Category: "home", CreatedAt: now},
		{Title: "Pay rent", Description: "transfer 100%", DueAt: ptr(now.Add(-time.Hour)), HasReminder: true, CreatedAt: now, Category: "home"},
		{Title: "Gym", DueAt: ptr(now.Add(3 * time.Hour)), HasReminder: true, CreatedAt: now},
		{Title: "Report", DueAt: ptr(now.Add(48 * time.Hour)), CreatedAt: now, Category: "work"},
		{Title: "Old chore", DueAt: ptr(now.Add(-48 * time.Hour)), HasReminder: true, Completed: true, CompletedAt: ptr(now), CreatedAt: now},
	}
	ids, err := r.InsertBatch(context.Background(), tasks)
	if err != nil {
		t.Fatalf("InsertBatch() error = %v", err)
	}
	out := make(map[string]int64, len(ids))
	for i, id := range ids {
		out[tasks[i].Title] = id
	}
	return out
}

func titles(tasks []model.Task) map[string]bool {
	out := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		out[t.Title] = true
	}
	return out
}

func TestQueries(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	seed(t, r)

	done := true
	active := false
	dueBefore := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		query func() ([]model.Task, error)
		want  []string
	}{
		{"list all", func() ([]model.Task, error) { return r.List(ctx, repo.ListOptions{}) },
			[]string{"Buy milk", "Pay rent", "Gym", "Report", "Old chore"}},
		{"list completed", func() ([]model.Task, error) { return r.List(ctx, repo.ListOptions{Completed: &done}) },
			[]string{"Old chore"}},
		{"list active home", func() ([]model.Task, error) {
			return r.List(ctx, repo.ListOptions{Completed: &active, Category: "home"})
		}, []string{"Buy milk", "Pay rent"}},
		{"list due before", func() ([]model.Task, error) { return r.List(ctx, repo.ListOptions{DueBefore: &dueBefore}) },
			[]string{"Pay rent", "Gym", "Old chore"}},
		{"search ignores case", func() ([]model.Task, error) { return r.Search(ctx, "MILK") },
			[]string{"Buy milk"}},
		{"search escapes wildcards", func() ([]model.Task, error) { return r.Search(ctx, "100%") },
			[]string{"Pay rent"}},
		{"with reminders", func() ([]model.Task, error) { return r.ListWithReminders(ctx) },
			[]string{"Pay rent", "Gym"}},
		{"due today", func() ([]model.Task, error) { return r.ListDueToday(ctx, now) },
			[]string{"Pay rent", "Gym"}},
		{"overdue", func() ([]model.Task, error) { return r.ListOverdue(ctx, now) },
			[]string{"Pay rent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks (%v), want %v", len(got), titles(got), tt.want)
			}
			set := titles(got)
			for _, w := range tt.want {
				if !set[w] {
					t.Errorf("missing %q in %v", w, set)
				}
			}
		})
	}
}

func TestCounts(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	seed(t, r)

	if n, err := r.CountActive(ctx); err != nil || n != 4 {
		t.Errorf("CountActive() = %d, %v; want 4", n, err)
	}
	if n, err := r.CountCompleted(ctx); err != nil || n != 1 {
		t.Errorf("CountCompleted() = %d, %v; want 1", n, err)
	}
	if n, err := r.CountOverdue(ctx, now); err != nil || n != 1 {
		t.Errorf("CountOverdue() = %d, %v; want 1", n, err)
	}
}

func TestWritesPublishEvents(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	events, cancel := r.Subscribe()
	defer cancel()

	id, _ := r.Insert(ctx, model.Task{Title: "watch", CreatedAt: now})
	_ = r.Update(ctx, model.Task{ID: id, Title: "watched", CreatedAt: now})
	_ = r.Delete(ctx, id)

	want := []model.EventKind{model.EventInserted, model.EventUpdated, model.EventDeleted}
	for _, kind := range want {
		select {
		case ev := <-events:
			if ev.Kind != kind || ev.TaskID != id {
				t.Errorf("event = %+v, want %s for %d", ev, kind, id)
			}
		case <-time.After(time.Second):
			t.Fatalf("no %s event", kind)
		}
	}
}
