// internal/common/errors/handler.go
package errors

import (
	"time"

	"github.com/gin-gonic/gin"
)

// maxLoggedDetail caps error detail length in log output. Response
// bodies never carry details at all.
const maxLoggedDetail = 500

// ErrorHandler maps application errors onto HTTP responses with
// standardized logging.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Respond writes a JSON error response for any error. Internal detail
// is logged (truncated) but never returned to the caller.
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	stdErr := h.normalizeError(err)

	h.logError(c, stdErr)

	c.AbortWithStatusJSON(HTTPStatus(stdErr.Code), gin.H{
		"error": stdErr.Message,
		"code":  string(stdErr.Code),
	})
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(c *gin.Context, stdErr *StandardError) {
	details := stdErr.Details
	if len(details) > maxLoggedDetail {
		details = details[:maxLoggedDetail] + "..."
	}

	h.logger.Error("Request failed", map[string]interface{}{
		"method":        c.Request.Method,
		"path":          c.FullPath(),
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       details,
		"retryable":     stdErr.Retryable,
		"status":        HTTPStatus(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
	})
}
