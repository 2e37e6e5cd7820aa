package reminder

import (
	"time"

	"smart-todo/pkg/log"
	"smart-todo/pkg/scheduler"
)

// Manager schedules one reminder per task on top of a keyed scheduler.
type Manager struct {
	l         log.Logger
	tasks     TaskReader
	notifiers []Notifier
	sched     *scheduler.Scheduler
	enabled   bool
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	clock    scheduler.Clock
	disabled bool
}

// WithClock replaces the wall clock used to compute delays and fire reminders.
func WithClock(c scheduler.Clock) Option {
	return func(o *options) { o.clock = c }
}

// Disabled makes every Schedule call a no-op.
func Disabled() Option {
	return func(o *options) { o.disabled = true }
}

// New creates a Manager that re-reads tasks through tasks and notifies every notifier.
func New(l log.Logger, tasks TaskReader, notifiers []Notifier, opts ...Option) *Manager {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		l:         l,
		tasks:     tasks,
		notifiers: notifiers,
		enabled:   !o.disabled,
	}

	var schedOpts []scheduler.Option
	if o.clock != nil {
		schedOpts = append(schedOpts, scheduler.WithClock(o.clock))
	}
	m.sched = scheduler.New(m.fire, schedOpts...)
	return m
}

func (m *Manager) now() time.Time {
	return m.sched.Now()
}
