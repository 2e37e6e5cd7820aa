package usecase

import (
	"context"
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/reminder"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/smartparse"
)

// Calendar mirrors dated tasks as calendar events.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	reminders  reminder.Scheduler
	parser     *smartparse.Parser
	calendar   Calendar
	calendarID string

	mu          sync.Mutex
	lastDeleted *model.Task
}

// New creates a new task UseCase instance. calendar may be nil to disable the calendar mirror.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	reminders reminder.Scheduler,
	parser *smartparse.Parser,
	calendar Calendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		reminders:  reminders,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.parser.Now()
}
