package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	taskHTTP "smart-todo/internal/task/delivery/http"
)

// setupTaskDomain mounts /tasks under api. The use case comes from
// internal/app since the Telegram and reminder pipelines share it.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.dateMath)

	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "httpserver: task routes mounted")
	return nil
}
