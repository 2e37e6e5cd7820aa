package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}
	if srv.environment != string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "httpserver: running in %s environment", srv.environment)
	}

	srv.registerSystemRoutes()

	if err := srv.setupTaskDomain(ctx, srv.gin.Group("/api/v1"), srv.mw); err != nil {
		return err
	}
	srv.setupTelegram(ctx)

	srv.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: "route not found"})
	})
	return nil
}

func (srv HTTPServer) registerSystemRoutes() {
	for path, state := range map[string]string{"/health": "healthy", "/live": "alive"} {
		srv.gin.GET(path, srv.statusHandler(state))
	}
	srv.gin.GET("/ready", srv.readyCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) setupTelegram(ctx context.Context) {
	if srv.telegramHandler == nil {
		srv.l.Infof(ctx, "httpserver: telegram bot not configured, webhook route skipped")
		return
	}
	srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
	srv.l.Infof(ctx, "httpserver: telegram webhook mounted at POST /webhook/telegram")
}
