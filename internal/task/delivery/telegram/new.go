package telegram

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo/internal/router"
	"smart-todo/internal/task"
	"smart-todo/internal/task/editor"
	pkgLog "smart-todo/pkg/log"
	pkgTelegram "smart-todo/pkg/telegram"
)

const (
	maxSessions = 1024
	sessionTTL  = 30 * time.Minute
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    pkgTelegram.Sender
	router router.Router

	// mu serializes message processing so a chat's session is never updated concurrently.
	mu       sync.Mutex
	sessions *expirable.LRU[int64, editor.State]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot pkgTelegram.Sender, r router.Router) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		router:   r,
		sessions: expirable.NewLRU[int64, editor.State](maxSessions, nil, sessionTTL),
	}
}

func (h *handler) session(chatID int64) editor.State {
	if s, ok := h.sessions.Get(chatID); ok {
		return s
	}
	return editor.Initial()
}
