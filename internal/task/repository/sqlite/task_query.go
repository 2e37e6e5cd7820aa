package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// GetByID returns the task with id, or a zero-value Task (ID == 0) when it does not exist.
func (r *implRepository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByID"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// List returns tasks matching opt ordered by id. View ordering is applied by the caller.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	return r.query(ctx, "List", where, args...)
}

// Search matches text against title and description, ignoring ASCII case.
func (r *implRepository) Search(ctx context.Context, text string) ([]model.Task, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(text)) + "%"
	return r.query(ctx, "Search", `title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'`, pattern, pattern)
}

// ListWithReminders returns incomplete tasks that carry a reminder and a due time.
func (r *implRepository) ListWithReminders(ctx context.Context) ([]model.Task, error) {
	return r.query(ctx, "ListWithReminders", `has_reminder = 1 AND due_at IS NOT NULL AND completed = 0`)
}

// ListDueToday returns tasks due on now's calendar date.
func (r *implRepository) ListDueToday(ctx context.Context, now time.Time) ([]model.Task, error) {
	start, end := dayBounds(now)
	return r.query(ctx, "ListDueToday", `due_at >= ? AND due_at < ?`, start.UnixMilli(), end.UnixMilli())
}

// ListOverdue returns incomplete tasks whose due time is before now.
func (r *implRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Task, error) {
	return r.query(ctx, "ListOverdue", `due_at < ? AND completed = 0`, now.UnixMilli())
}

func (r *implRepository) CountActive(ctx context.Context) (int, error) {
	return r.count(ctx, "CountActive", `completed = 0`)
}

func (r *implRepository) CountCompleted(ctx context.Context) (int, error) {
	return r.count(ctx, "CountCompleted", `completed = 1`)
}

func (r *implRepository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	return r.count(ctx, "CountOverdue", `due_at < ? AND completed = 0`, now.UnixMilli())
}

func (r *implRepository) query(ctx context.Context, method, where string, args ...any) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	tasks, err := r.scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

func (r *implRepository) count(ctx context.Context, method, where string, args ...any) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

// buildListQuery builds the WHERE clause + args for List.
// All set fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolInt(*opt.Completed))
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, "due_at < ?")
		args = append(args, opt.DueBefore.UnixMilli())
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
