// internal/agents/ceo/handler.go
package ceo

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/metrics"
)

type Handler struct {
	service *Service
	errors  *apperrors.ErrorHandler
}

func NewHandler(service *Service, errHandler *apperrors.ErrorHandler) *Handler {
	return &Handler{
		service: service,
		errors:  errHandler,
	}
}

// RegisterRoutes mounts the planning endpoints on /ceo.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/ceo")
	group.POST("/analyze", h.PostAnalyze)
	group.GET("/status", h.GetStatus)
	group.GET("/:project_id", h.GetProject)
}

func (h *Handler) PostAnalyze(c *gin.Context) {
	start := time.Now()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "ceo.analyze", apperrors.NewInvalidRequestError(err.Error()))
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "ceo.analyze", err)
		return
	}

	h.done(c, "ceo.analyze", start, resp)
}

func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

func (h *Handler) GetProject(c *gin.Context) {
	start := time.Now()

	record, err := h.service.GetProject(c.Param("project_id"))
	if err != nil {
		h.fail(c, "ceo.get", err)
		return
	}

	h.done(c, "ceo.get", start, record)
}

func (h *Handler) done(c *gin.Context, operation string, start time.Time, body interface{}) {
	metrics.AgentRequestsCompleted.WithLabelValues(operation).Inc()
	metrics.AgentRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, body)
}

func (h *Handler) fail(c *gin.Context, operation string, err error) {
	code := "INTERNAL_ERROR"
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		code = string(stdErr.Code)
	}
	metrics.AgentRequestsFailed.WithLabelValues(operation, code).Inc()
	h.errors.Respond(c, err)
}
