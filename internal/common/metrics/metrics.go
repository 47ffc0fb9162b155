// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AgentRequestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_requests_completed_total",
			Help: "Total number of requests completed per agent operation",
		},
		[]string{"operation"},
	)

	AgentRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_requests_failed_total",
			Help: "Total number of requests failed per agent operation",
		},
		[]string{"operation", "error_code"},
	)

	AgentRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_request_duration_seconds",
			Help: "Duration of agent request processing in seconds",
		},
		[]string{"operation"},
	)

	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM chat completion calls",
		},
		[]string{"purpose", "status"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "llm_request_duration_seconds",
			Help: "Duration of LLM chat completion calls in seconds",
		},
		[]string{"purpose"},
	)

	PlanRepairSubstitutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_repair_substitutions_total",
			Help: "Total number of plan fields replaced by repair defaults",
		},
		[]string{"field"},
	)

	PlanSchemaDefects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_schema_defects_total",
			Help: "Total number of schema violations found in raw model plans",
		},
		[]string{"field"},
	)
)
