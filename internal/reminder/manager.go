package reminder

import (
	"context"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/scheduler"
)

const keyPrefix = "reminder_"

// Schedule arms a reminder for task. Nothing is armed when the task has no
// reminder, no due time, is completed, or is due within the current minute.
func (m *Manager) Schedule(ctx context.Context, task model.Task) bool {
	if !m.enabled || !task.NeedsReminder() {
		return false
	}

	now := m.now()
	delayMinutes := int64(task.DueAt.Sub(now) / time.Minute)
	if delayMinutes <= 0 {
		return false
	}

	when := now.Add(time.Duration(delayMinutes) * time.Minute)
	if err := m.sched.ScheduleAt(task.ReminderKey(), when, task.ID); err != nil {
		m.l.Warnf(ctx, "reminder.Schedule %d: %v", task.ID, err)
		return false
	}
	m.l.Debugf(ctx, "reminder.Schedule: task %d in %d minutes", task.ID, delayMinutes)
	return true
}

// Cancel drops the pending reminder of a task, if any.
func (m *Manager) Cancel(taskID int64) {
	m.sched.Cancel(model.ReminderKey(taskID))
}

// Reschedule replaces the task's reminder with one computed from its current state.
func (m *Manager) Reschedule(ctx context.Context, task model.Task) bool {
	m.Cancel(task.ID)
	return m.Schedule(ctx, task)
}

// CancelAll drops every pending reminder and returns how many were dropped.
func (m *Manager) CancelAll() int {
	return m.sched.CancelAll(keyPrefix)
}

// Pending lists the armed reminders ordered by fire time.
func (m *Manager) Pending() []scheduler.Job {
	return m.sched.Pending()
}

// Stop cancels pending reminders and waits for running notifications.
func (m *Manager) Stop() {
	m.sched.Stop()
}

// fire re-reads the task so edits made after scheduling are honoured.
func (m *Manager) fire(ctx context.Context, job scheduler.Job) {
	id, ok := job.Payload.(int64)
	if !ok {
		m.l.Errorf(ctx, "reminder.fire: unexpected payload %T for %s", job.Payload, job.Key)
		return
	}

	task, err := m.tasks.GetByID(ctx, id)
	if err != nil {
		m.l.Errorf(ctx, "reminder.fire GetByID %d: %v", id, err)
		return
	}
	if task.ID == model.UnassignedID || task.Completed || !task.HasReminder {
		m.l.Debugf(ctx, "reminder.fire: task %d no longer needs a reminder", id)
		return
	}

	for _, n := range m.notifiers {
		if err := n.Notify(ctx, task); err != nil {
			m.l.Errorf(ctx, "reminder.fire notify task %d: %v", id, err)
		}
	}
}
