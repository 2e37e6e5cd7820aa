// Package app assembles the task stack shared by the API and MCP binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-todo/config"
	"smart-todo/internal/reminder"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository/sqlite"
	"smart-todo/internal/task/usecase"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/smartparse"
	"smart-todo/pkg/sqlitedb"
	"smart-todo/pkg/telegram"
)

// App is the wired task stack.
type App struct {
	UseCase   task.UseCase
	DateMath  *datemath.Parser
	Bot       *telegram.Bot // nil without a bot token
	reminders *reminder.Manager
	db        *sql.DB
}

// New opens the store and wires repository, reminders, parser, calendar and use case.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	loc := dateMath.Location()

	db, err := sqlitedb.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	repo := sqlite.New(db, l, loc)
	l.Infof(ctx, "Task store ready at %s", cfg.Database.Path)

	a := &App{DateMath: dateMath, db: db}

	notifiers := []reminder.Notifier{reminder.NewLogNotifier(l)}
	if cfg.Telegram.Enabled() {
		a.Bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.ChatID != 0 {
			notifiers = append(notifiers, reminder.NewTelegramNotifier(a.Bot, cfg.Telegram.ChatID))
		}
	}

	var reminderOpts []reminder.Option
	if !cfg.Reminder.Enabled {
		reminderOpts = append(reminderOpts, reminder.Disabled())
		l.Warn(ctx, "Reminders disabled by config")
	}
	a.reminders = reminder.New(l, repo, notifiers, reminderOpts...)

	parser := smartparse.New(loc, time.Now)

	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			calendar = client
			l.Info(ctx, "Google Calendar mirror enabled")
		}
	}

	a.UseCase = usecase.New(l, repo, a.reminders, parser, calendar, cfg.GoogleCalendar.CalendarID)
	return a, nil
}

// Start re-arms persisted reminders and logs the overdue notice.
func (a *App) Start(ctx context.Context, l log.Logger) {
	n, err := a.UseCase.RestoreReminders(ctx)
	if err != nil {
		l.Errorf(ctx, "Restore reminders: %v", err)
	} else {
		l.Infof(ctx, "Restored %d reminders", n)
	}

	notice, err := a.UseCase.OverdueNotice(ctx)
	if err != nil {
		l.Warnf(ctx, "Overdue notice: %v", err)
	} else if notice != "" {
		l.Warn(ctx, notice)
	}
}

// Close stops pending reminders and closes the store.
func (a *App) Close() error {
	a.reminders.Stop()
	return a.db.Close()
}
