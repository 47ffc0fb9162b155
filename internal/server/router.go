// internal/server/router.go
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"automate-agents/internal/agents/ceo"
	"automate-agents/internal/agents/customer"
	"automate-agents/internal/agents/orchestration"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/common/observability"
	"automate-agents/pkg/registry"
)

// Dependencies carries everything the router mounts.
type Dependencies struct {
	Logger        logger.Logger
	Observability *observability.Observability
	Customer      *customer.Handler
	CEO           *ceo.Handler
	Orchestration *orchestration.Handler
	Registry      *registry.AgentRegistry
	Model         string
	Environment   string
}

// NewRouter wires the full HTTP surface: the /api/v1 agent routes plus
// health, metrics and the root service catalog.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger, deps.Observability))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"ceo_agent": "online",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "Automate Agents API v2.0 - LIVE",
			"services": deps.Registry.Services(),
			"ceo_agent": gin.H{
				"model":       deps.Model,
				"initialized": true,
			},
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	deps.Customer.RegisterRoutes(api)
	deps.CEO.RegisterRoutes(api)
	deps.Orchestration.RegisterRoutes(api)

	return router
}

// requestLogger emits one structured line per request and feeds the
// OTel request metrics.
func requestLogger(log logger.Logger, obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		status := "success"
		if c.Writer.Status() >= http.StatusBadRequest {
			status = "error"
		}

		operation := c.FullPath()
		if operation == "" {
			operation = c.Request.URL.Path
		}
		if obs != nil {
			obs.RecordRequest(c.Request.Context(), operation, status)
			obs.RecordRequestDuration(c.Request.Context(), duration, operation)
		}

		log.Info("request handled", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": duration.String(),
		})
	}
}
