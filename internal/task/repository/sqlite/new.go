package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/sqlitedb"
)

//go:embed schema.sql
var schema string

type implRepository struct {
	db   *sql.DB
	l    log.Logger
	loc  *time.Location
	feed *repository.Feed
	now  func() time.Time
}

// New creates a SQLite-backed task Repository. Times are read back in loc.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{
		db:   db,
		l:    l,
		loc:  loc,
		feed: repository.NewFeed(),
		now:  time.Now,
	}
}

// Migrate creates the tasks table and its indexes when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	return sqlitedb.Migrate(ctx, db, schema)
}

func (r *implRepository) Subscribe() (<-chan model.TaskEvent, func()) {
	return r.feed.Subscribe()
}

func (r *implRepository) publish(kind model.EventKind, id int64) {
	r.feed.Publish(model.TaskEvent{Kind: kind, TaskID: id, At: r.now()})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
