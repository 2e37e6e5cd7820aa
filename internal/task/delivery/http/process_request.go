package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/smartparse"
)

func (h *handler) now() time.Time {
	return h.clock().In(h.dateMath.Location())
}

// processID parses the :id URI param.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processSaveReq binds and validates the create/edit request body + optional URI param.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	// An omitted priority keeps the MEDIUM default.
	req := saveReq{Priority: smartparse.PriorityMedium}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if c.Param("id") != "" {
		id, err := h.processID(c)
		if err != nil {
			return req, err
		}
		req.ID = id
	}
	return req, req.validate()
}

// processListReq binds the list query and resolves due_before.
func (h *handler) processListReq(c *gin.Context) (listReq, *time.Time, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, nil, err
	}
	if err := req.validate(); err != nil {
		return req, nil, h.mapError(err)
	}
	if req.DueBefore == "" {
		return req, nil, nil
	}

	dueBefore, err := h.resolveDueBefore(req.DueBefore)
	if err != nil {
		return req, nil, errInvalidDueBefore
	}
	return req, &dueBefore, nil
}

// resolveDueBefore accepts an RFC 3339 instant or a relative day phrase,
// which covers the whole of that day.
func (h *handler) resolveDueBefore(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	day, err := h.dateMath.Parse(v, h.now())
	if err != nil {
		return time.Time{}, err
	}
	return h.dateMath.EndOfDay(day), nil
}

// processTextReq binds and validates a free-text request body.
func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
