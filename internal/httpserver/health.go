package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

const (
	ServiceName    = "smart-todo"
	ServiceVersion = "1.0.0"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"service": ServiceName,
		"version": ServiceVersion,
		"uptime":  time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// statusHandler answers the static probes.
// @Summary     Health and liveness
// @Description /health and /live report the process is up without touching the store
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /health [get]
// @Router      /live [get]
func (srv HTTPServer) statusHandler(state string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, srv.status(state))
	}
}

// readyCheck reports ready once the task store answers a count query.
// @Summary     Readiness
// @Description Runs a count query against the task store
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := srv.taskUC.Counts(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "task store unavailable",
		})
		return
	}

	body := srv.status("ready")
	body["active_tasks"] = counts.Active
	response.OK(c, body)
}
