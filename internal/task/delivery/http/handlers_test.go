package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/internal/task"
	taskHTTP "smart-todo/internal/task/delivery/http"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/smartparse"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	saveInput  task.SaveInput
	saveOutput task.SaveOutput
	saveErr    error

	quickInput task.QuickAddInput

	listInput  task.ListInput
	listOutput task.ListOutput
	listErr    error

	observed   []task.ListOutput
	observeErr error

	detailTask task.TaskItem
	detailErr  error

	undoErr   error
	dismissed bool

	importData []byte
	exportData []byte
}

func (m *mockUseCase) Save(ctx context.Context, input task.SaveInput) (task.SaveOutput, error) {
	m.saveInput = input
	return m.saveOutput, m.saveErr
}
func (m *mockUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.SaveOutput, error) {
	m.quickInput = input
	return m.saveOutput, m.saveErr
}
func (m *mockUseCase) Parse(raw string) smartparse.ParsedTask {
	return smartparse.ParsedTask{Title: strings.TrimSpace(raw), Priority: smartparse.PriorityHigh}
}
func (m *mockUseCase) Suggest(partial string) []string { return smartparse.Suggest(partial) }
func (m *mockUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	return m.detailTask.Task, m.detailErr
}
func (m *mockUseCase) ToggleCompletion(ctx context.Context, id int64) (model.Task, error) {
	t := m.detailTask.Task
	t.Completed = !t.Completed
	return t, m.detailErr
}
func (m *mockUseCase) Delete(ctx context.Context, id int64) (model.Task, error) {
	return m.detailTask.Task, m.detailErr
}
func (m *mockUseCase) UndoDelete(ctx context.Context) (model.Task, error) {
	return m.detailTask.Task, m.undoErr
}
func (m *mockUseCase) DismissUndo() { m.dismissed = true }
func (m *mockUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	m.listInput = input
	return m.listOutput, m.listErr
}
func (m *mockUseCase) Observe(ctx context.Context, input task.ListInput) (<-chan task.ListOutput, error) {
	m.listInput = input
	if m.observeErr != nil {
		return nil, m.observeErr
	}
	out := make(chan task.ListOutput, len(m.observed))
	for _, o := range m.observed {
		out <- o
	}
	close(out)
	return out, nil
}
func (m *mockUseCase) Counts(ctx context.Context) (task.Counts, error) {
	return task.Counts{Active: 3, Completed: 2, Overdue: 1, DueToday: 2}, nil
}
func (m *mockUseCase) Export(ctx context.Context) ([]byte, error) { return m.exportData, nil }
func (m *mockUseCase) Import(ctx context.Context, data []byte) (task.ImportOutput, error) {
	m.importData = data
	return task.ImportOutput{Imported: 2, Message: "Imported 2 tasks successfully"}, nil
}
func (m *mockUseCase) RestoreReminders(ctx context.Context) (int, error) { return 0, nil }
func (m *mockUseCase) OverdueNotice(ctx context.Context) (string, error) {
	return "You have 1 overdue tasks", nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newEngine(t *testing.T, muc *mockUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}

	engine := gin.New()
	h := taskHTTP.New(log.NewNop(), muc, dm)
	taskHTTP.RegisterRoutes(engine.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data %q: %v", env.Data, err)
		}
	}
	return env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	due := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	muc := &mockUseCase{saveOutput: task.SaveOutput{
		Task:    model.Task{ID: 7, Title: "Call mom", Priority: smartparse.PriorityHigh, DueAt: &due, HasReminder: true},
		Created: true,
		Message: "Task saved successfully",
	}}
	engine := newEngine(t, muc)

	w := do(engine, http.MethodPost, "/api/v1/tasks",
		`{"title":"Call mom","priority":"HIGH","due_at":"2026-03-11T09:00:00Z","has_reminder":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if muc.saveInput.ID != 0 || muc.saveInput.Title != "Call mom" || !muc.saveInput.HasReminder {
		t.Errorf("unexpected save input: %+v", muc.saveInput)
	}
	if muc.saveInput.Priority != smartparse.PriorityHigh {
		t.Errorf("priority = %v, want HIGH", muc.saveInput.Priority)
	}

	var resp struct {
		Task struct {
			ID       int64  `json:"id"`
			Priority string `json:"priority"`
			DueAt    string `json:"due_at"`
		} `json:"task"`
		Created bool   `json:"created"`
		Message string `json:"message"`
	}
	decode(t, w, &resp)
	if resp.Task.ID != 7 || !resp.Created || resp.Message != "Task saved successfully" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Task.Priority != "HIGH" {
		t.Errorf("priority = %q, want HIGH", resp.Task.Priority)
	}
}

func TestCreate_PriorityDefault(t *testing.T) {
	tests := []struct {
		name string
		body string
		want smartparse.Priority
	}{
		{name: "omitted", body: `{"title":"Buy milk"}`, want: smartparse.PriorityMedium},
		{name: "explicit low", body: `{"title":"Buy milk","priority":"LOW"}`, want: smartparse.PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			muc := &mockUseCase{saveOutput: task.SaveOutput{Task: model.Task{ID: 1, Title: "Buy milk"}, Created: true}}
			w := do(newEngine(t, muc), http.MethodPost, "/api/v1/tasks", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if muc.saveInput.Priority != tt.want {
				t.Errorf("priority = %v, want %v", muc.saveInput.Priority, tt.want)
			}
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		saveErr  error
		wantCode int
	}{
		{name: "missing title", body: `{"description":"x"}`, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `{bad`, wantCode: http.StatusBadRequest},
		{name: "blank title", body: `{"title":"   "}`, saveErr: task.ErrEmptyTitle, wantCode: http.StatusBadRequest},
		{name: "storage failure", body: `{"title":"x"}`, saveErr: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, &mockUseCase{saveErr: tt.saveErr})
			w := do(engine, http.MethodPost, "/api/v1/tasks", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Run("passes id from path", func(t *testing.T) {
		muc := &mockUseCase{}
		w := do(newEngine(t, muc), http.MethodPut, "/api/v1/tasks/42", `{"title":"Edited"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if muc.saveInput.ID != 42 {
			t.Errorf("ID = %d, want 42", muc.saveInput.ID)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		w := do(newEngine(t, &mockUseCase{}), http.MethodPut, "/api/v1/tasks/abc", `{"title":"Edited"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := do(newEngine(t, &mockUseCase{saveErr: task.ErrTaskNotFound}), http.MethodPut, "/api/v1/tasks/9", `{"title":"Edited"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestList(t *testing.T) {
	muc := &mockUseCase{listOutput: task.ListOutput{
		Items: []task.TaskItem{{Task: model.Task{ID: 1, Title: "A"}}, {Task: model.Task{ID: 2, Title: "B"}}},
		Count: 2,
	}}
	engine := newEngine(t, muc)

	w := do(engine, http.MethodGet, "/api/v1/tasks?view=active&q=report&category=work&due_before=2026-03-12T00:00:00Z", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	in := muc.listInput
	if in.View != task.ViewActive || in.Query != "report" || in.Category != "work" {
		t.Errorf("unexpected list input: %+v", in)
	}
	if in.DueBefore == nil || !in.DueBefore.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DueBefore = %v", in.DueBefore)
	}

	var resp struct {
		Tasks []struct {
			ID int64 `json:"id"`
		} `json:"tasks"`
		Count int `json:"count"`
	}
	decode(t, w, &resp)
	if resp.Count != 2 || len(resp.Tasks) != 2 || resp.Tasks[0].ID != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestList_DerivedDueFlags(t *testing.T) {
	muc := &mockUseCase{listOutput: task.ListOutput{
		Items: []task.TaskItem{{Task: model.Task{ID: 1, Title: "Dentist"}, IsDueTomorrow: true, DueLabel: "Tomorrow"}},
		Count: 1,
	}}
	w := do(newEngine(t, muc), http.MethodGet, "/api/v1/tasks", "")

	var resp struct {
		Tasks []struct {
			IsDueToday    bool `json:"is_due_today"`
			IsDueTomorrow bool `json:"is_due_tomorrow"`
		} `json:"tasks"`
	}
	decode(t, w, &resp)
	if len(resp.Tasks) != 1 || !resp.Tasks[0].IsDueTomorrow || resp.Tasks[0].IsDueToday {
		t.Errorf("unexpected response: %s", w.Body.String())
	}
}

func TestStream(t *testing.T) {
	t.Run("Emits one event per list", func(t *testing.T) {
		muc := &mockUseCase{observed: []task.ListOutput{
			{Items: []task.TaskItem{{Task: model.Task{ID: 1, Title: "Gym"}}}, Count: 1},
			{Items: []task.TaskItem{{Task: model.Task{ID: 1, Title: "Gym"}}, {Task: model.Task{ID: 2, Title: "Read"}}}, Count: 2},
		}}
		w := do(newEngine(t, muc), http.MethodGet, "/api/v1/tasks/stream?view=active", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Errorf("Content-Type = %q", ct)
		}
		if muc.listInput.View != task.ViewActive {
			t.Errorf("view = %q", muc.listInput.View)
		}

		body := w.Body.String()
		if n := strings.Count(body, "event:tasks"); n != 2 {
			t.Errorf("got %d events in %q", n, body)
		}
		if !strings.Contains(body, `"count":2`) || !strings.Contains(body, `"title":"Read"`) {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("Invalid view", func(t *testing.T) {
		w := do(newEngine(t, &mockUseCase{}), http.MethodGet, "/api/v1/tasks/stream?view=someday", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Observe failure", func(t *testing.T) {
		w := do(newEngine(t, &mockUseCase{observeErr: errors.New("db down")}), http.MethodGet, "/api/v1/tasks/stream", "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestList_DueBeforePhrase(t *testing.T) {
	muc := &mockUseCase{}
	w := do(newEngine(t, muc), http.MethodGet, "/api/v1/tasks?due_before=tomorrow", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if muc.listInput.DueBefore == nil {
		t.Fatal("DueBefore not resolved")
	}
	if h, m, s := muc.listInput.DueBefore.Clock(); h != 23 || m != 59 || s != 59 {
		t.Errorf("DueBefore = %v, want end of day", muc.listInput.DueBefore)
	}
}

func TestList_InvalidView(t *testing.T) {
	w := do(newEngine(t, &mockUseCase{}), http.MethodGet, "/api/v1/tasks?view=archived", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDetail_NotFound(t *testing.T) {
	w := do(newEngine(t, &mockUseCase{detailErr: task.ErrTaskNotFound}), http.MethodGet, "/api/v1/tasks/5", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteAndUndo(t *testing.T) {
	muc := &mockUseCase{detailTask: task.TaskItem{Task: model.Task{ID: 3, Title: "Pay bills"}}}
	engine := newEngine(t, muc)

	w := do(engine, http.MethodDelete, "/api/v1/tasks/3", "")
	var del struct {
		Message string `json:"message"`
	}
	decode(t, w, &del)
	if w.Code != http.StatusOK || del.Message != task.MsgDeleted {
		t.Errorf("delete: code %d, message %q", w.Code, del.Message)
	}

	w = do(engine, http.MethodPost, "/api/v1/tasks/undo", "")
	var undo struct {
		Message string `json:"message"`
	}
	decode(t, w, &undo)
	if w.Code != http.StatusOK || undo.Message != task.MsgRestored {
		t.Errorf("undo: code %d, message %q", w.Code, undo.Message)
	}

	muc.undoErr = task.ErrNothingToUndo
	w = do(engine, http.MethodPost, "/api/v1/tasks/undo", "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	w = do(engine, http.MethodDelete, "/api/v1/tasks/undo", "")
	if w.Code != http.StatusOK || !muc.dismissed {
		t.Errorf("dismiss: code %d, dismissed %v", w.Code, muc.dismissed)
	}
}

func TestQuickAdd(t *testing.T) {
	muc := &mockUseCase{}
	w := do(newEngine(t, muc), http.MethodPost, "/api/v1/tasks/quick-add", `{"text":"Pay bills tomorrow urgent","category":"home"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if muc.quickInput.RawText != "Pay bills tomorrow urgent" || muc.quickInput.Category != "home" {
		t.Errorf("unexpected quick add input: %+v", muc.quickInput)
	}
}

func TestParseAndSuggestions(t *testing.T) {
	engine := newEngine(t, &mockUseCase{})

	w := do(engine, http.MethodPost, "/api/v1/tasks/parse", `{"text":" Call mom "}`)
	var parsed struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
	}
	decode(t, w, &parsed)
	if parsed.Title != "Call mom" || parsed.Priority != "HIGH" {
		t.Errorf("unexpected parse response: %+v", parsed)
	}

	w = do(engine, http.MethodGet, "/api/v1/tasks/suggestions?q=bills", "")
	var sugg struct {
		Suggestions []string `json:"suggestions"`
	}
	decode(t, w, &sugg)
	if len(sugg.Suggestions) != 1 || sugg.Suggestions[0] != "Pay bills tomorrow" {
		t.Errorf("unexpected suggestions: %v", sugg.Suggestions)
	}
}

func TestCounts(t *testing.T) {
	w := do(newEngine(t, &mockUseCase{}), http.MethodGet, "/api/v1/tasks/counts", "")
	var resp struct {
		Active   int    `json:"active"`
		Overdue  int    `json:"overdue"`
		DueToday int    `json:"due_today"`
		Notice   string `json:"notice"`
	}
	decode(t, w, &resp)
	if resp.Active != 3 || resp.Overdue != 1 || resp.DueToday != 2 || resp.Notice != "You have 1 overdue tasks" {
		t.Errorf("unexpected counts: %+v", resp)
	}
}

func TestExportImport(t *testing.T) {
	muc := &mockUseCase{exportData: []byte(`[{"id":1,"title":"A"}]`)}
	engine := newEngine(t, muc)

	w := do(engine, http.MethodGet, "/api/v1/tasks/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "attachment") {
		t.Errorf("missing attachment header: %q", w.Header().Get("Content-Disposition"))
	}
	if !bytes.Equal(w.Body.Bytes(), muc.exportData) {
		t.Errorf("body = %s", w.Body.String())
	}

	w = do(engine, http.MethodPost, "/api/v1/tasks/import", `[{"title":"A"},{"title":"B"}]`)
	var resp struct {
		Imported int    `json:"imported"`
		Message  string `json:"message"`
	}
	decode(t, w, &resp)
	if resp.Imported != 2 || string(muc.importData) != `[{"title":"A"},{"title":"B"}]` {
		t.Errorf("unexpected import: %+v, data %s", resp, muc.importData)
	}
}
