package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/smartparse"
)

// localDateTime is the ISO-8601 local date-time layout used in exported documents.
const localDateTime = "2006-01-02T15:04:05"

// exportedTask is the wire shape of one task in an export document.
type exportedTask struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    smartparse.Priority `json:"priority"`
	IsCompleted bool                `json:"isCompleted"`
	DueDate     *string             `json:"dueDate"`
	HasReminder bool                `json:"hasReminder"`
	CreatedAt   string              `json:"createdAt"`
	CompletedAt *string             `json:"completedAt"`
	Category    string              `json:"category,omitempty"`
}

func formatLocal(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(localDateTime)
	return &s
}

// parseLocal reads a local date-time in loc. Missing or unparseable values are absent.
func parseLocal(s *string, loc *time.Location) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.ParseInLocation(localDateTime, *s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// EncodeTasks renders tasks as an indented JSON array.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	doc := make([]exportedTask, 0, len(tasks))
	for _, t := range tasks {
		doc = append(doc, exportedTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			IsCompleted: t.Completed,
			DueDate:     formatLocal(t.DueAt),
			HasReminder: t.HasReminder,
			CreatedAt:   t.CreatedAt.Format(localDateTime),
			CompletedAt: formatLocal(t.CompletedAt),
			Category:    t.Category,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeTasks parses an export document. Every task gets id 0 and createdAt
// set to now. Entries with a blank title are skipped; malformed input yields
// an empty list.
func DecodeTasks(data []byte, now time.Time) []model.Task {
	var doc []exportedTask
	if err := json.Unmarshal(data, &doc); err != nil {
		return []model.Task{}
	}

	loc := now.Location()
	tasks := make([]model.Task, 0, len(doc))
	for _, e := range doc {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		t := model.Task{
			ID:          model.UnassignedID,
			Title:       title,
			Description: strings.TrimSpace(e.Description),
			Priority:    e.Priority,
			HasReminder: e.HasReminder,
			Completed:   e.IsCompleted,
			CompletedAt: parseLocal(e.CompletedAt, loc),
			CreatedAt:   now,
			Category:    strings.TrimSpace(e.Category),
		}
		tasks = append(tasks, t.SetDue(parseLocal(e.DueDate, loc)))
	}
	return tasks
}

// Export renders every stored task as a JSON document.
func (uc *implUseCase) Export(ctx context.Context) ([]byte, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export: %v", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	task.SortAll(tasks, uc.now())

	data, err := EncodeTasks(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Import stores every task of an export document under fresh ids and arms their reminders.
func (uc *implUseCase) Import(ctx context.Context, data []byte) (task.ImportOutput, error) {
	tasks := DecodeTasks(data, uc.now())
	if len(tasks) == 0 {
		return task.ImportOutput{Message: "No tasks found in the file"}, nil
	}

	ids, err := uc.repo.InsertBatch(ctx, tasks)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Import InsertBatch: %v", err)
		return task.ImportOutput{}, fmt.Errorf("import tasks: %w", err)
	}

	for i, id := range ids {
		tasks[i].ID = id
		uc.reminders.Schedule(ctx, tasks[i])
	}

	uc.l.Infof(ctx, "uc.Import: imported %d tasks", len(ids))
	return task.ImportOutput{
		Imported: len(ids),
		Message:  fmt.Sprintf("Imported %d tasks successfully", len(ids)),
	}, nil
}
