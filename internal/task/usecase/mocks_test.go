package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/smartparse"
)

var (
	now     = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	errDown = errors.New("storage unavailable")
)

func ptr(t time.Time) *time.Time { return &t }

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu     sync.Mutex
	tasks  map[int64]model.Task
	nextID int64
	feed   *repository.Feed
	err    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[int64]model.Task), nextID: 1, feed: repository.NewFeed()}
}

func (m *mockRepo) Subscribe() (<-chan model.TaskEvent, func()) { return m.feed.Subscribe() }

func (m *mockRepo) Insert(_ context.Context, t model.Task) (int64, error) {
	m.mu.Lock()
	if m.err != nil {
		m.mu.Unlock()
		return 0, m.err
	}
	if t.ID == 0 {
		t.ID = m.nextID
		m.nextID++
	}
	m.tasks[t.ID] = t
	m.mu.Unlock()
	m.feed.Publish(model.TaskEvent{Kind: model.EventInserted, TaskID: t.ID})
	return t.ID, nil
}

func (m *mockRepo) InsertBatch(ctx context.Context, tasks []model.Task) ([]int64, error) {
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		id, err := m.Insert(ctx, t)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockRepo) Update(_ context.Context, t model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) SetCompletion(_ context.Context, opt repository.SetCompletionOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	t := m.tasks[opt.ID]
	t.Completed, t.CompletedAt = opt.Completed, opt.CompletedAt
	m.tasks[opt.ID] = t
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.Task{}, m.err
	}
	return m.tasks[id], nil
}

func (m *mockRepo) filter(keep func(model.Task) bool) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Task{}
	for _, t := range m.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRepo) List(_ context.Context, opt repository.ListOptions) ([]model.Task, error) {
	return m.filter(func(t model.Task) bool {
		if opt.Completed != nil && t.Completed != *opt.Completed {
			return false
		}
		if opt.Category != "" && t.Category != opt.Category {
			return false
		}
		return opt.DueBefore == nil || (t.DueAt != nil && t.DueAt.Before(*opt.DueBefore))
	})
}

func (m *mockRepo) Search(_ context.Context, text string) ([]model.Task, error) {
	q := strings.ToLower(text)
	return m.filter(func(t model.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Description), q)
	})
}

func (m *mockRepo) ListWithReminders(_ context.Context) ([]model.Task, error) {
	return m.filter(func(t model.Task) bool { return t.NeedsReminder() })
}

func (m *mockRepo) ListDueToday(_ context.Context, at time.Time) ([]model.Task, error) {
	return m.filter(func(t model.Task) bool { return t.IsDueToday(at) })
}

func (m *mockRepo) ListOverdue(_ context.Context, at time.Time) ([]model.Task, error) {
	return m.filter(func(t model.Task) bool { return t.IsOverdue(at) })
}

func (m *mockRepo) CountActive(ctx context.Context) (int, error) {
	tasks, err := m.filter(func(t model.Task) bool { return !t.Completed })
	return len(tasks), err
}

func (m *mockRepo) CountCompleted(ctx context.Context) (int, error) {
	tasks, err := m.filter(func(t model.Task) bool { return t.Completed })
	return len(tasks), err
}

func (m *mockRepo) CountOverdue(ctx context.Context, at time.Time) (int, error) {
	tasks, err := m.ListOverdue(ctx, at)
	return len(tasks), err
}

// mockReminders records reminder calls and applies the same skip rule as the real manager.
type mockReminders struct {
	mu      sync.Mutex
	armed   map[int64]time.Time
	cancels []int64
}

func newMockReminders() *mockReminders {
	return &mockReminders{armed: make(map[int64]time.Time)}
}

func (m *mockReminders) Schedule(_ context.Context, t model.Task) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !t.NeedsReminder() || t.DueAt.Sub(now) < time.Minute {
		return false
	}
	m.armed[t.ID] = *t.DueAt
	return true
}

func (m *mockReminders) Cancel(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.armed, id)
	m.cancels = append(m.cancels, id)
}

func (m *mockReminders) Reschedule(ctx context.Context, t model.Task) bool {
	m.Cancel(t.ID)
	return m.Schedule(ctx, t)
}

func (m *mockReminders) CancelAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.armed)
	m.armed = make(map[int64]time.Time)
	return n
}

func (m *mockReminders) isArmed(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.armed[id]
	return ok
}

type mockCalendar struct {
	reqs []gcalendar.EventRequest
	err  error
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Link: "https://calendar.example/evt-1"}, nil
}

func newTestUseCase() (*implUseCase, *mockRepo, *mockReminders) {
	repo := newMockRepo()
	rem := newMockReminders()
	parser := smartparse.New(time.UTC, func() time.Time { return now })
	return New(log.NewNop(), repo, rem, parser, nil, ""), repo, rem
}
