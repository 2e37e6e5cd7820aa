// Package scheduler runs keyed one-shot jobs at a given time. Scheduling a
// key that is already pending replaces the earlier job.
package scheduler

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

type entry struct {
	job   Job
	timer Timer
	seq   uint64
}

// Scheduler keeps one pending job per key.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	handler Handler
	jobs    map[string]*entry
	seq     uint64
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Scheduler that hands fired jobs to handler.
func New(handler Handler, opts ...Option) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		clock:   realClock{},
		handler: handler,
		jobs:    make(map[string]*entry),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScheduleAt arms key to fire at when, replacing any pending job with the
// same key. A time in the past fires immediately.
func (s *Scheduler) ScheduleAt(key string, when time.Time, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if old, ok := s.jobs[key]; ok {
		old.timer.Stop()
	}

	s.seq++
	e := &entry{job: Job{Key: key, When: when, Payload: payload}, seq: s.seq}
	delay := max(when.Sub(s.clock.Now()), 0)
	e.timer = s.clock.AfterFunc(delay, func() { s.fire(key, e.seq) })
	s.jobs[key] = e
	return nil
}

func (s *Scheduler) fire(key string, seq uint64) {
	s.mu.Lock()
	e, ok := s.jobs[key]
	if !ok || e.seq != seq || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.jobs, key)
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.handler(s.ctx, e.job)
}

// Cancel drops the pending job for key and reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.jobs[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.jobs, key)
	return true
}

// CancelAll drops every pending job whose key starts with prefix and returns how many were dropped.
func (s *Scheduler) CancelAll(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, e := range s.jobs {
		if strings.HasPrefix(key, prefix) {
			e.timer.Stop()
			delete(s.jobs, key)
			n++
		}
	}
	return n
}

// Pending returns the pending jobs ordered by fire time.
func (s *Scheduler) Pending() []Job {
	s.mu.Lock()
	jobs := make([]Job, 0, len(s.jobs))
	for _, e := range s.jobs {
		jobs = append(jobs, e.job)
	}
	s.mu.Unlock()

	slices.SortFunc(jobs, func(a, b Job) int {
		if c := a.When.Compare(b.When); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return jobs
}

// Stop cancels every pending job, cancels the handler context and waits for
// running handlers to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for key, e := range s.jobs {
		e.timer.Stop()
		delete(s.jobs, key)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// Now returns the scheduler clock's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}
