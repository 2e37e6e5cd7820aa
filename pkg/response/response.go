package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo/pkg/errors"
)

// ErrorCodeBadRequest is reported for plain errors that carry no status.
const ErrorCodeBadRequest = 1

// NewOKResp wraps data in the success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error writes err in the envelope. *errors.HTTPError chooses the status and
// message; any other error becomes a 400 with err's text.
func Error(c *gin.Context, err error, data map[string]any) {
	status, resp := http.StatusBadRequest, Resp{ErrorCode: ErrorCodeBadRequest, Message: err.Error(), Data: data}
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		resp.ErrorCode, resp.Message = httpErr.Code, httpErr.Message
	}
	c.JSON(status, resp)
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   MessageTooManyRequests,
	})
}
