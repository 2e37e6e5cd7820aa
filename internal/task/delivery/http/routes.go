package http

import (
	"smart-todo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Static segments are registered before /:id so gin resolves them first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)

		tasks.POST("/quick-add", h.QuickAdd)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/suggestions", h.Suggestions)
		tasks.GET("/counts", h.Counts)
		tasks.GET("/stream", h.Stream)
		tasks.GET("/export", h.Export)
		tasks.POST("/import", h.Import)
		tasks.POST("/undo", h.Undo)
		tasks.DELETE("/undo", h.DismissUndo)

		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
