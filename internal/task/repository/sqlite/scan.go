package sqlite

import (
	"database/sql"
	"time"

	"smart-todo/internal/model"
)

const taskColumns = `id, title, description, priority, due_at, has_reminder, completed, completed_at, created_at, category`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(s rowScanner) (model.Task, error) {
	var (
		t           model.Task
		priority    int
		dueAt       sql.NullInt64
		hasReminder int
		completed   int
		completedAt sql.NullInt64
		createdAt   int64
	)
	err := s.Scan(&t.ID, &t.Title, &t.Description, &priority, &dueAt,
		&hasReminder, &completed, &completedAt, &createdAt, &t.Category)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.DueAt = r.fromMillis(dueAt)
	t.HasReminder = hasReminder == 1
	t.Completed = completed == 1
	t.CompletedAt = r.fromMillis(completedAt)
	t.CreatedAt = time.UnixMilli(createdAt).In(r.loc)
	return t, nil
}

func (r *implRepository) scanTasks(rows *sql.Rows) ([]model.Task, error) {
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *implRepository) fromMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).In(r.loc)
	return &t
}

func toMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
