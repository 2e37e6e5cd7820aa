package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/log"
	"smart-todo/pkg/smartparse"
)

const (
	serverName    = "Smart Todo"
	serverVersion = "0.1.0"
)

// NewServer exposes the task use case as MCP tools.
func NewServer(l log.Logger, uc task.UseCase) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion)
	h := &handler{l: l, uc: uc}

	s.AddTool(mcp.NewTool("parse_task",
		mcp.WithDescription("Parse a free-form sentence into title, priority, due time and reminder flag without saving it."),
		mcp.WithString("text", mcp.Description("Sentence such as 'Submit report by Friday 5pm urgent'"), mcp.Required()),
	), h.parseTask)

	s.AddTool(mcp.NewTool("quick_add",
		mcp.WithDescription("Parse a sentence and save the resulting task."),
		mcp.WithString("text", mcp.Description("Sentence describing the task"), mcp.Required()),
		mcp.WithString("description", mcp.Description("Optional longer description")),
		mcp.WithString("category", mcp.Description("Optional category")),
	), h.quickAdd)

	s.AddTool(mcp.NewTool("save_task",
		mcp.WithDescription("Create a task (id omitted or 0) or edit an existing one."),
		mcp.WithNumber("id", mcp.Description("Task id to edit")),
		mcp.WithString("title", mcp.Description("Task title"), mcp.Required()),
		mcp.WithString("description", mcp.Description("Task description")),
		mcp.WithString("priority", mcp.Description("LOW, MEDIUM or HIGH (default MEDIUM)")),
		mcp.WithString("due_at", mcp.Description("Due time in RFC 3339")),
		mcp.WithBoolean("has_reminder", mcp.Description("Fire a reminder at the due time")),
		mcp.WithString("category", mcp.Description("Category")),
	), h.saveTask)

	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks ordered for a view, with overdue and due-today flags."),
		mcp.WithString("view", mcp.Description("all, active or completed (default all)")),
		mcp.WithString("query", mcp.Description("Text search over title and description")),
		mcp.WithString("category", mcp.Description("Exact category")),
	), h.listTasks)

	s.AddTool(mcp.NewTool("get_task",
		mcp.WithDescription("Get a single task by id."),
		mcp.WithNumber("id", mcp.Description("Task id"), mcp.Required()),
	), h.getTask)

	s.AddTool(mcp.NewTool("suggest",
		mcp.WithDescription("Return up to five template sentences containing the partial text."),
		mcp.WithString("partial", mcp.Description("Partial title")),
	), h.suggest)

	s.AddTool(mcp.NewTool("toggle_task",
		mcp.WithDescription("Flip a task between active and completed."),
		mcp.WithNumber("id", mcp.Description("Task id"), mcp.Required()),
	), h.toggleTask)

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task. The last deleted task can be restored with undo_delete."),
		mcp.WithNumber("id", mcp.Description("Task id"), mcp.Required()),
	), h.deleteTask)

	s.AddTool(mcp.NewTool("undo_delete",
		mcp.WithDescription("Restore the most recently deleted task."),
	), h.undoDelete)

	s.AddTool(mcp.NewTool("task_counts",
		mcp.WithDescription("Count active, completed and overdue tasks."),
	), h.taskCounts)

	return s
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

type taskResult struct {
	model.Task
	IsOverdue  bool   `json:"is_overdue"`
	IsDueToday bool   `json:"is_due_today"`
	DueLabel   string `json:"due_label,omitempty"`
}

func newTaskResult(item task.TaskItem) taskResult {
	return taskResult{
		Task:       item.Task,
		IsOverdue:  item.IsOverdue,
		IsDueToday: item.IsDueToday,
		DueLabel:   item.DueLabel,
	}
}

type saveResult struct {
	Task         model.Task `json:"task"`
	Created      bool       `json:"created"`
	CalendarLink string     `json:"calendar_link,omitempty"`
	Message      string     `json:"message"`
}

func newSaveResult(out task.SaveOutput) saveResult {
	return saveResult{Task: out.Task, Created: out.Created, CalendarLink: out.CalendarLink, Message: out.Message}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports domain errors to the client; anything else is logged first.
func (h *handler) errorResult(ctx context.Context, tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidView),
		errors.Is(err, task.ErrNothingToUndo):
	default:
		h.l.Errorf(ctx, "mcp.%s: %v", tool, err)
	}
	return mcp.NewToolResultError(err.Error())
}

func (h *handler) parseTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.uc.Parse(mcp.ParseString(request, "text", "")))
}

func (h *handler) quickAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.uc.QuickAdd(ctx, task.QuickAddInput{
		RawText:     mcp.ParseString(request, "text", ""),
		Description: mcp.ParseString(request, "description", ""),
		Category:    mcp.ParseString(request, "category", ""),
	})
	if err != nil {
		return h.errorResult(ctx, "quick_add", err), nil
	}
	return jsonResult(newSaveResult(out))
}

func (h *handler) saveTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	priority, err := smartparse.ParsePriority(mcp.ParseString(request, "priority", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := task.SaveInput{
		ID:          mcp.ParseInt64(request, "id", 0),
		Title:       mcp.ParseString(request, "title", ""),
		Description: mcp.ParseString(request, "description", ""),
		Priority:    priority,
		HasReminder: mcp.ParseBoolean(request, "has_reminder", false),
		Category:    mcp.ParseString(request, "category", ""),
	}
	if raw := mcp.ParseString(request, "due_at", ""); raw != "" {
		due, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("due_at must be RFC 3339: %v", err)), nil
		}
		input.DueAt = &due
	}

	out, err := h.uc.Save(ctx, input)
	if err != nil {
		return h.errorResult(ctx, "save_task", err), nil
	}
	return jsonResult(newSaveResult(out))
}

func (h *handler) listTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.uc.List(ctx, task.ListInput{
		View:     task.View(mcp.ParseString(request, "view", "")),
		Query:    mcp.ParseString(request, "query", ""),
		Category: mcp.ParseString(request, "category", ""),
	})
	if err != nil {
		return h.errorResult(ctx, "list_tasks", err), nil
	}

	tasks := make([]taskResult, len(out.Items))
	for i, item := range out.Items {
		tasks[i] = newTaskResult(item)
	}
	return jsonResult(map[string]any{"tasks": tasks, "count": out.Count})
}

func (h *handler) getTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := h.uc.Detail(ctx, mcp.ParseInt64(request, "id", 0))
	if err != nil {
		return h.errorResult(ctx, "get_task", err), nil
	}
	return jsonResult(t)
}

func (h *handler) suggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{"suggestions": h.uc.Suggest(mcp.ParseString(request, "partial", ""))})
}

func (h *handler) toggleTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := h.uc.ToggleCompletion(ctx, mcp.ParseInt64(request, "id", 0))
	if err != nil {
		return h.errorResult(ctx, "toggle_task", err), nil
	}
	return jsonResult(t)
}

func (h *handler) deleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := h.uc.Delete(ctx, mcp.ParseInt64(request, "id", 0))
	if err != nil {
		return h.errorResult(ctx, "delete_task", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %q. Call undo_delete to restore it.", task.MsgDeleted, t.Title)), nil
}

func (h *handler) undoDelete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := h.uc.UndoDelete(ctx)
	if err != nil {
		return h.errorResult(ctx, "undo_delete", err), nil
	}
	return jsonResult(map[string]any{"message": task.MsgRestored, "task": t})
}

func (h *handler) taskCounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := h.uc.Counts(ctx)
	if err != nil {
		return h.errorResult(ctx, "task_counts", err), nil
	}
	notice, err := h.uc.OverdueNotice(ctx)
	if err != nil {
		h.l.Warnf(ctx, "mcp.task_counts: overdue notice: %v", err)
	}
	return jsonResult(map[string]any{
		"active":    counts.Active,
		"completed": counts.Completed,
		"overdue":   counts.Overdue,
		"due_today": counts.DueToday,
		"notice":    notice,
	})
}
