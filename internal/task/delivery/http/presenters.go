package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/response"
	"smart-todo/pkg/smartparse"
)

// --- Request DTOs ---

type saveReq struct {
	ID          int64               `json:"-"` // populated from URI param on edit
	Title       string              `json:"title"        binding:"required,max=255"`
	Description string              `json:"description"  binding:"max=2000"`
	Priority    smartparse.Priority `json:"priority"`
	DueAt       *time.Time          `json:"due_at"`
	HasReminder bool                `json:"has_reminder"`
	Category    string              `json:"category"     binding:"max=64"`
}

func (r saveReq) validate() error { return nil }

func (r saveReq) toInput() task.SaveInput {
	return task.SaveInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueAt:       r.DueAt,
		HasReminder: r.HasReminder,
		Category:    r.Category,
	}
}

// ---

type listReq struct {
	View      string `form:"view"`
	Query     string `form:"q"`
	Category  string `form:"category"`
	DueBefore string `form:"due_before"` // RFC 3339 or a phrase such as "tomorrow", "in 3 days"
}

func (r listReq) validate() error {
	_, err := task.ParseView(r.View)
	return err
}

func (r listReq) toInput(dueBefore *time.Time) task.ListInput {
	return task.ListInput{
		View:      task.View(r.View),
		Query:     r.Query,
		Category:  r.Category,
		DueBefore: dueBefore,
	}
}

// ---

type textReq struct {
	Text        string `json:"text"        binding:"required,max=500"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category"    binding:"max=64"`
}

func (r textReq) validate() error { return nil }

func (r textReq) toQuickAddInput() task.QuickAddInput {
	return task.QuickAddInput{RawText: r.Text, Description: r.Description, Category: r.Category}
}

// --- Response DTOs ---

type taskResp struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Priority      string             `json:"priority"`
	PriorityLabel string             `json:"priority_label"`
	DueAt         *response.DateTime `json:"due_at,omitempty"`
	HasReminder   bool               `json:"has_reminder"`
	Completed     bool               `json:"completed"`
	CompletedAt   *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt     response.DateTime  `json:"created_at"`
	Category      string             `json:"category,omitempty"`

	IsOverdue     bool   `json:"is_overdue"`
	IsDueToday    bool   `json:"is_due_today"`
	IsDueTomorrow bool   `json:"is_due_tomorrow"`
	DueLabel      string `json:"due_label,omitempty"`
	TimeUntilDue  string `json:"time_until_due,omitempty"`
}

func newTaskResp(item task.TaskItem) taskResp {
	t := item.Task
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority.String(),
		PriorityLabel: t.Priority.DisplayName(),
		DueAt:         response.NewDateTime(t.DueAt),
		HasReminder:   t.HasReminder,
		Completed:     t.Completed,
		CompletedAt:   response.NewDateTime(t.CompletedAt),
		CreatedAt:     response.DateTime(t.CreatedAt),
		Category:      t.Category,
		IsOverdue:     item.IsOverdue,
		IsDueToday:    item.IsDueToday,
		IsDueTomorrow: item.IsDueTomorrow,
		DueLabel:      item.DueLabel,
		TimeUntilDue:  item.TimeUntilDue,
	}
}

func (h *handler) present(t model.Task) taskResp {
	return newTaskResp(task.Derive(t, h.now()))
}

type saveResp struct {
	Task         taskResp `json:"task"`
	Created      bool     `json:"created"`
	CalendarLink string   `json:"calendar_link,omitempty"`
	Message      string   `json:"message"`
}

func (h *handler) newSaveResp(out task.SaveOutput) saveResp {
	return saveResp{
		Task:         h.present(out.Task),
		Created:      out.Created,
		CalendarLink: out.CalendarLink,
		Message:      out.Message,
	}
}

type detailResp struct {
	Task    taskResp `json:"task"`
	Message string   `json:"message,omitempty"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Items))
	for i, item := range out.Items {
		tasks[i] = newTaskResp(item)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type parseResp struct {
	Title       string             `json:"title"`
	Priority    string             `json:"priority"`
	DueAt       *response.DateTime `json:"due_at,omitempty"`
	DueLabel    string             `json:"due_label,omitempty"`
	HasReminder bool               `json:"has_reminder"`
}

func (h *handler) newParseResp(p smartparse.ParsedTask) parseResp {
	resp := parseResp{
		Title:       p.Title,
		Priority:    p.Priority.String(),
		DueAt:       response.NewDateTime(p.DueDate),
		HasReminder: p.HasReminder,
	}
	if p.DueDate != nil {
		resp.DueLabel = datemath.RelativeLabel(*p.DueDate, h.now())
	}
	return resp
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

type countsResp struct {
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Overdue   int    `json:"overdue"`
	DueToday  int    `json:"due_today"`
	Notice    string `json:"notice,omitempty"`
}

type importResp struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}
