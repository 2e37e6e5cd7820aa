package sqlite

import (
	"context"
	"database/sql"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Insert stores a task and returns its id. A task carrying a non-zero id
// replaces any row with that id.
func (r *implRepository) Insert(ctx context.Context, task model.Task) (int64, error) {
	id, err := r.insert(ctx, r.db, task)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return 0, repo.ErrFailedToInsert
	}
	r.publish(model.EventInserted, id)
	return id, nil
}

// InsertBatch stores all tasks in one transaction.
func (r *implRepository) InsertBatch(ctx context.Context, tasks []model.Task) ([]int64, error) {
	if len(tasks) == 0 {
		return []int64{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("InsertBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		id, err := r.insert(ctx, tx, t)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("InsertBatch"), err)
			return nil, repo.ErrFailedToInsert
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InsertBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	r.publish(model.EventInserted, 0)
	return ids, nil
}

func (r *implRepository) insert(ctx context.Context, exec execer, t model.Task) (int64, error) {
	args := []any{
		t.Title, t.Description, int(t.Priority), toMillis(t.DueAt), boolInt(t.HasReminder),
		boolInt(t.Completed), toMillis(t.CompletedAt), t.CreatedAt.UnixMilli(), t.Category,
	}

	query := `
		INSERT INTO tasks (title, description, priority, due_at, has_reminder, completed, completed_at, created_at, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if t.ID != model.UnassignedID {
		query = `
		INSERT OR REPLACE INTO tasks (title, description, priority, due_at, has_reminder, completed, completed_at, created_at, category, id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		args = append(args, t.ID)
	}

	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every column of an existing task.
func (r *implRepository) Update(ctx context.Context, task model.Task) error {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, due_at = ?, has_reminder = ?,
		    completed = ?, completed_at = ?, created_at = ?, category = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, int(task.Priority), toMillis(task.DueAt), boolInt(task.HasReminder),
		boolInt(task.Completed), toMillis(task.CompletedAt), task.CreatedAt.UnixMilli(), task.Category,
		task.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return repo.ErrFailedToUpdate
	}
	r.publish(model.EventUpdated, task.ID)
	return nil
}

// SetCompletion changes only the completion columns of a task.
func (r *implRepository) SetCompletion(ctx context.Context, opt repo.SetCompletionOptions) error {
	const query = `UPDATE tasks SET completed = ?, completed_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, boolInt(opt.Completed), toMillis(opt.CompletedAt), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCompletion"), err)
		return repo.ErrFailedToUpdate
	}
	r.publish(model.EventUpdated, opt.ID)
	return nil
}

// Delete removes a task by id. Deleting a missing id is not an error.
func (r *implRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	r.publish(model.EventDeleted, id)
	return nil
}

