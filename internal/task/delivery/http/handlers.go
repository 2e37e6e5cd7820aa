package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

const (
	maxImportBytes = 4 << 20
	streamEvent    = "tasks"
)

func exportFileName(now time.Time) string {
	return "tasks_backup_" + now.Format("20060102_150405") + ".json"
}

// Create godoc
// @Summary     Create a task
// @Description Saves a new task. Title and description are trimmed; a blank title is rejected.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Task data"
// @Success     200  {object} saveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// Update godoc
// @Summary     Edit a task
// @Description Replaces the editable fields of an existing task and re-arms its reminder.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body saveReq true "Task data"
// @Success     200  {object} saveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	h.Create(c)
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks for a view, ordered by the view's rules, with derived due fields.
// @Tags        Tasks
// @Produce     json
// @Param       view       query string false "all, active or completed (default: all)"
// @Param       q          query string false "Case-insensitive text search over title and description"
// @Param       category   query string false "Exact category"
// @Param       due_before query string false "RFC 3339 time or phrase such as tomorrow"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, dueBefore, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(dueBefore))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stream godoc
// @Summary     Stream task lists
// @Description Server-sent events: one "tasks" event with the current list, then another after every change to the store.
// @Tags        Tasks
// @Produce     text/event-stream
// @Param       view       query string false "all, active or completed (default: all)"
// @Param       q          query string false "Case-insensitive text search over title and description"
// @Param       category   query string false "Exact category"
// @Param       due_before query string false "RFC 3339 time or phrase such as tomorrow"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, dueBefore, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	lists, err := h.uc.Observe(ctx, req.toInput(dueBefore))
	if err != nil {
		h.l.Errorf(ctx, "uc.Observe: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return
		case out, ok := <-lists:
			if !ok {
				return
			}
			c.SSEvent(streamEvent, h.newListResp(out))
			c.Writer.Flush()
		}
	}
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Task: h.present(t)})
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completed flag. Completing cancels the reminder; reopening re-arms it.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.ToggleCompletion(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Task: h.present(t)})
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task and keeps it in the undo slot until the next delete or undo.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Task: h.present(t), Message: task.MsgDeleted})
}

// Undo godoc
// @Summary     Undo the last delete
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} detailResp
// @Failure     409 {object} response.Resp "Nothing to undo"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.UndoDelete(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.UndoDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Task: h.present(t), Message: task.MsgRestored})
}

// DismissUndo godoc
// @Summary     Forget the last deleted task
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/undo [DELETE]
func (h *handler) DismissUndo(c *gin.Context) {
	h.uc.DismissUndo()
	response.OK(c, nil)
}

// QuickAdd godoc
// @Summary     Quick add from a sentence
// @Description Parses a free-form sentence into title, priority, due time and reminder, then saves it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Sentence"
// @Success     200  {object} saveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toQuickAddInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// Parse godoc
// @Summary     Preview parsing
// @Description Runs the smart parser without saving anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Sentence"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newParseResp(h.uc.Parse(req.Text)))
}

// Suggestions godoc
// @Summary     Template suggestions
// @Description Returns up to five canned sentences containing q.
// @Tags        Tasks
// @Produce     json
// @Param       q query string false "Partial title"
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/tasks/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	response.OK(c, suggestionsResp{Suggestions: h.uc.Suggest(c.Query("q"))})
}

// Counts godoc
// @Summary     Task counters
// @Description Returns active, completed, overdue and due-today counts plus the overdue notice.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} countsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/counts [GET]
func (h *handler) Counts(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.uc.Counts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Counts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	notice, err := h.uc.OverdueNotice(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.OverdueNotice: %v", err)
	}

	response.OK(c, countsResp{
		Active:    counts.Active,
		Completed: counts.Completed,
		Overdue:   counts.Overdue,
		DueToday:  counts.DueToday,
		Notice:    notice,
	})
}

// Export godoc
// @Summary     Export tasks
// @Description Downloads every task as a JSON array.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  object
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.Export(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName(h.now())+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import godoc
// @Summary     Import tasks
// @Description Appends every task from an exported JSON array. Ids are reassigned.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, data)
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, importResp{Imported: output.Imported, Message: output.Message})
}
