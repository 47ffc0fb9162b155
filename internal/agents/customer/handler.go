// internal/agents/customer/handler.go
package customer

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

// RegisterRoutes mounts the intake endpoints on /customer.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/customer")
	group.POST("/message", h.PostMessage)
	group.GET("/ready/:conversation_id", h.GetReady)
	group.POST("/export/:conversation_id", h.PostExport)
	group.GET("/:conversation_id", h.GetConversation)
}

func (h *Handler) PostMessage(c *gin.Context) {
	start := time.Now()

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "customer.message", apperrors.NewInvalidRequestError(err.Error()))
		return
	}

	resp, err := h.service.ProcessMessage(c.Request.Context(), req.ConversationID, req.Text)
	if err != nil {
		h.fail(c, "customer.message", err)
		return
	}

	h.done(c, "customer.message", start, resp)
}

func (h *Handler) GetConversation(c *gin.Context) {
	start := time.Now()

	resp, err := h.service.GetConversation(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		h.fail(c, "customer.get", err)
		return
	}

	h.done(c, "customer.get", start, resp)
}

func (h *Handler) GetReady(c *gin.Context) {
	start := time.Now()

	resp, err := h.service.Ready(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		h.fail(c, "customer.ready", err)
		return
	}

	h.done(c, "customer.ready", start, resp)
}

func (h *Handler) PostExport(c *gin.Context) {
	start := time.Now()

	resp, err := h.service.Export(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		h.fail(c, "customer.export", err)
		return
	}

	h.done(c, "customer.export", start, resp)
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
