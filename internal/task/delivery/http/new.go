package http

import (
	"time"

	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       task.UseCase
	dateMath *datemath.Parser
	clock    func() time.Time
}

// New creates a new HTTP handler for the task domain. dateMath resolves
// relative phrases in the due_before filter.
func New(l log.Logger, uc task.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		clock:    time.Now,
	}
}
