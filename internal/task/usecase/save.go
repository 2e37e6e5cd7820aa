package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/smartparse"
)

const msgSaved = "Task saved successfully"

// Save creates a task when input.ID is 0, otherwise edits the stored task.
func (uc *implUseCase) Save(ctx context.Context, input task.SaveInput) (task.SaveOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.SaveOutput{}, task.ErrEmptyTitle
	}

	if input.ID == model.UnassignedID {
		return uc.create(ctx, model.Task{
			Title:       title,
			Description: strings.TrimSpace(input.Description),
			Priority:    input.Priority,
			HasReminder: input.HasReminder,
			CreatedAt:   uc.now(),
			Category:    strings.TrimSpace(input.Category),
		}.SetDue(input.DueAt))
	}

	existing, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save GetByID: %v", err)
		return task.SaveOutput{}, fmt.Errorf("load task %d: %w", input.ID, err)
	}
	if existing.ID == model.UnassignedID {
		return task.SaveOutput{}, task.ErrTaskNotFound
	}

	existing.Title = title
	existing.Description = strings.TrimSpace(input.Description)
	existing.Priority = input.Priority
	existing.HasReminder = input.HasReminder
	existing.Category = strings.TrimSpace(input.Category)
	existing = existing.SetDue(input.DueAt)

	if err := uc.repo.Update(ctx, existing); err != nil {
		uc.l.Errorf(ctx, "uc.Save Update: %v", err)
		return task.SaveOutput{}, fmt.Errorf("update task %d: %w", existing.ID, err)
	}
	uc.syncReminder(ctx, existing)

	return task.SaveOutput{Task: existing, Message: msgSaved}, nil
}

func (uc *implUseCase) create(ctx context.Context, t model.Task) (task.SaveOutput, error) {
	id, err := uc.repo.Insert(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save Insert: %v", err)
		return task.SaveOutput{}, fmt.Errorf("insert task: %w", err)
	}
	t.ID = id
	uc.syncReminder(ctx, t)

	uc.l.Infof(ctx, "uc.Save: created task %d %q", t.ID, t.Title)
	return task.SaveOutput{
		Task:         t,
		Created:      true,
		CalendarLink: uc.tryCreateCalendarEvent(ctx, t),
		Message:      msgSaved,
	}, nil
}

// syncReminder arms the reminder when the task needs one and cancels it otherwise.
func (uc *implUseCase) syncReminder(ctx context.Context, t model.Task) {
	if t.NeedsReminder() {
		uc.reminders.Reschedule(ctx, t)
		return
	}
	uc.reminders.Cancel(t.ID)
}

// QuickAdd parses a sentence such as "call mom tomorrow 6pm urgent" and saves the result.
func (uc *implUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.SaveOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.SaveOutput{}, task.ErrEmptyInput
	}

	parsed := uc.parser.Parse(input.RawText)
	uc.l.Debugf(ctx, "uc.QuickAdd: parsed %q as %+v", input.RawText, parsed)

	return uc.Save(ctx, task.SaveInput{
		Title:       parsed.Title,
		Description: input.Description,
		Priority:    parsed.Priority,
		DueAt:       parsed.DueDate,
		HasReminder: parsed.HasReminder,
		Category:    input.Category,
	})
}

func (uc *implUseCase) Parse(raw string) smartparse.ParsedTask {
	return uc.parser.Parse(raw)
}

func (uc *implUseCase) Suggest(partial string) []string {
	return smartparse.Suggest(partial)
}

// tryCreateCalendarEvent mirrors a dated task to the calendar.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueAt == nil {
		return ""
	}

	req := gcalendar.EventRequest{
		CalendarID: uc.calendarID,
		Title:      t.Title,
		Notes:      t.Description,
		Start:      *t.DueAt,
	}
	if t.HasReminder {
		req.PopupMinutes = []int64{0}
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Save: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}
	return event.Link
}
