package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/task"
	tgDelivery "smart-todo/internal/task/delivery/telegram"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

// HTTPServer serves the REST API, the Telegram webhook and the system routes.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	startedAt   time.Time

	taskUC          task.UseCase
	dateMath        *datemath.Parser
	telegramHandler tgDelivery.Handler
}

type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string // gin mode: debug, release or test
	Environment string
	Middleware  middleware.Config

	TaskUseCase     task.UseCase
	DateMath        *datemath.Parser
	TelegramHandler tgDelivery.Handler // nil leaves the webhook route unmounted
}

// New validates cfg and mounts every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:               logger,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		startedAt:       time.Now(),
		taskUC:          cfg.TaskUseCase,
		dateMath:        cfg.DateMath,
		telegramHandler: cfg.TelegramHandler,
	}
	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()
	srv.mw = middleware.New(logger, cfg.Middleware)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv HTTPServer) validate() error {
	switch {
	case srv.l == nil:
		return errors.New("logger is required")
	case srv.mode == "":
		return errors.New("mode is required")
	case srv.port <= 0:
		return errors.New("port must be positive")
	case srv.taskUC == nil:
		return errors.New("task use case is required")
	case srv.dateMath == nil:
		return errors.New("date parser is required")
	}
	return nil
}
