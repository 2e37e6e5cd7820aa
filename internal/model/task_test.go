package model_test

import (
	"testing"
	"time"

	"smart-todo/internal/model"
)

func TestTaskDerivedFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	later := now.Add(3 * time.Hour)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name        string
		task        model.Task
		wantOverdue bool
		wantToday   bool
	}{
		{name: "No due date", task: model.Task{}, wantOverdue: false, wantToday: false},
		{name: "Past due, active", task: model.Task{DueAt: &past}, wantOverdue: true, wantToday: true},
		{name: "Past due, completed", task: model.Task{DueAt: &past, Completed: true}, wantOverdue: false, wantToday: true},
		{name: "Later today", task: model.Task{DueAt: &later}, wantOverdue: false, wantToday: true},
		{name: "Tomorrow", task: model.Task{DueAt: &tomorrow}, wantOverdue: false, wantToday: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.wantOverdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.wantOverdue)
			}
			if got := tt.task.IsDueToday(now); got != tt.wantToday {
				t.Errorf("IsDueToday() = %v, want %v", got, tt.wantToday)
			}
		})
	}
}

func TestSetCompleted(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	task := model.Task{ID: 3}

	done := task.SetCompleted(true, now)
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(now) {
		t.Fatalf("expected completion stamped at %v, got %+v", now, done)
	}

	again := done.SetCompleted(true, now.Add(time.Hour))
	if !again.CompletedAt.Equal(now) {
		t.Errorf("completing twice must not move CompletedAt")
	}

	undone := done.SetCompleted(false, now)
	if undone.Completed || undone.CompletedAt != nil {
		t.Errorf("expected completion cleared, got %+v", undone)
	}
}

func TestSetDueClearsReminder(t *testing.T) {
	due := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	task := model.Task{DueAt: &due, HasReminder: true}

	cleared := task.SetDue(nil)
	if cleared.HasReminder {
		t.Error("expected reminder to be cleared with the due date")
	}
	if task.ReminderKey() != "reminder_0" || model.ReminderKey(42) != "reminder_42" {
		t.Errorf("unexpected reminder key")
	}
}
