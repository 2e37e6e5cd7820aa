package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo/config"
	_ "smart-todo/docs"
	"smart-todo/internal/app"
	"smart-todo/internal/httpserver"
	"smart-todo/internal/middleware"
	"smart-todo/internal/router"
	tgDelivery "smart-todo/internal/task/delivery/telegram"
	"smart-todo/pkg/log"
)

// @title       Smart Todo API
// @description Smart to-do list with natural-language quick add, reminders and Telegram delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "smart-todo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Infof(ctx, "Starting smart-todo (env=%s, tz=%s)", cfg.Environment.Name, cfg.Timezone)

	todo, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init task stack: %w", err)
	}
	defer todo.Close()
	todo.Start(ctx, logger)

	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMinute},
		TaskUseCase:     todo.UseCase,
		DateMath:        todo.DateMath,
		TelegramHandler: newTelegramHandler(ctx, cfg, logger, todo),
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// newTelegramHandler returns nil when no bot token is configured. A failed
// webhook registration is logged; updates may still arrive from an earlier one.
func newTelegramHandler(ctx context.Context, cfg *config.Config, l log.Logger, todo *app.App) tgDelivery.Handler {
	if todo.Bot == nil {
		l.Warn(ctx, "Telegram disabled: telegram.bot_token is empty")
		return nil
	}

	if url := cfg.Telegram.WebhookURL; url != "" {
		if err := todo.Bot.SetWebhook(ctx, url); err != nil {
			l.Warnf(ctx, "Telegram setWebhook failed: %v", err)
		} else {
			l.Infof(ctx, "Telegram webhook registered at %s", url)
		}
	}
	return tgDelivery.New(l, todo.UseCase, todo.Bot, router.New(l))
}
