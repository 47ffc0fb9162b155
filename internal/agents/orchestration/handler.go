// internal/agents/orchestration/handler.go
package orchestration

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

// RegisterRoutes mounts the trigger and job endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rnd/trigger", h.trigger(AgentRND))
	rg.POST("/marketing/trigger", h.trigger(AgentMarketing))
	rg.GET("/jobs/:job_id", h.GetJob)
}

func (h *Handler) trigger(agent string) gin.HandlerFunc {
	operation := agent + ".trigger"
	return func(c *gin.Context) {
		start := time.Now()

		var req TriggerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, operation, apperrors.NewInvalidRequestError(err.Error()))
			return
		}

		resp, err := h.service.Trigger(agent, req.ProjectID, req.Params)
		if err != nil {
			h.fail(c, operation, err)
			return
		}

		h.done(c, operation, start, resp)
	}
}

func (h *Handler) GetJob(c *gin.Context) {
	start := time.Now()

	record, err := h.service.GetJob(c.Param("job_id"))
	if err != nil {
		h.fail(c, "jobs.get", err)
		return
	}

	h.done(c, "jobs.get", start, record)
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
