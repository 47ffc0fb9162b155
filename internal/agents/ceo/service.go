// internal/agents/ceo/service.go
package ceo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/genai"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/common/observability"
	"automate-agents/internal/models"
	"automate-agents/internal/planning"
	"automate-agents/internal/storage"
)

// LLMClient is the chat-completion surface the planning service needs.
type LLMClient interface {
	Complete(ctx context.Context, purpose string, messages []genai.Message, opts genai.Options) (string, error)
	Model() string
}

type Service struct {
	llm      LLMClient
	projects *storage.ProjectStore
	tracing  *observability.Tracing
	logger   logger.Logger
}

func NewService(llm LLMClient, projects *storage.ProjectStore, tracing *observability.Tracing, log logger.Logger) *Service {
	return &Service{
		llm:      llm,
		projects: projects,
		tracing:  tracing,
		logger: log.With(map[string]interface{}{
			"agent": "ceo",
		}),
	}
}

// Analyze generates a strategic plan: conversation insights, one model
// call for the plan, schema defect report, deterministic repair, then
// persistence. A model failure on the plan call surfaces as an error;
// there is no fallback plan.
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("proj_%d", time.Now().Unix())
	}

	budget := planning.ParseBudget(req.Requirements["budget"])

	s.logger.Info("analysis starting", map[string]interface{}{
		"conversationId": conversationID,
		"budget":         budget,
	})

	insights := s.extractInsights(ctx, req.Messages)

	ctx, span := s.tracing.StartSpan(ctx, "ceo.plan",
		attribute.String("conversation.id", conversationID),
	)
	text, err := s.llm.Complete(ctx, "plan", planning.BuildPlanPrompt(req.Requirements, budget, insights), genai.Options{})
	span.End()
	if err != nil {
		if errors.Is(err, genai.ErrLLMTimeout) {
			return nil, apperrors.NewLLMTimeoutError()
		}
		return nil, apperrors.NewLLMCallFailedError(err)
	}

	raw, err := planning.ExtractJSONObject(text)
	if err != nil {
		return nil, apperrors.NewPlanParsingError(err.Error())
	}

	if defects := planning.ValidateRawPlan(raw); len(defects) > 0 {
		s.logger.Warn("raw plan has schema defects", map[string]interface{}{
			"conversationId": conversationID,
			"defectCount":    len(defects),
			"defects":        defects,
		})
	}

	plan := planning.Repair(raw, req.Requirements, budget, insights)

	record := &models.ProjectRecord{
		ProjectID:       conversationID,
		ConversationID:  conversationID,
		Requirements:    req.Requirements,
		CEOPlan:         plan,
		Status:          "planning_complete",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		AgentsTriggered: []models.TriggerNote{},
		Model:           s.llm.Model(),
	}
	if err := s.projects.Save(record); err != nil {
		return nil, apperrors.NewStorageWriteFailedError(err)
	}

	s.logger.Info("plan generated", map[string]interface{}{
		"projectId":   conversationID,
		"projectName": plan["project_name"],
	})

	return &AnalyzeResponse{
		Status:             "success",
		ProjectID:          conversationID,
		ConversationID:     conversationID,
		Plan:               plan,
		RNDTrigger:         planBool(plan, "should_trigger_rnd"),
		MarketingTrigger:   planBool(plan, "should_trigger_marketing"),
		SuccessProbability: planString(plan, "success_probability", "Medium"),
	}, nil
}

// extractInsights analyzes the conversation history. An empty history
// and a failed analysis each map to their own neutral default, so the
// result is never empty and repair can always stamp it into the plan.
func (s *Service) extractInsights(ctx context.Context, messages []models.ChatMessage) map[string]interface{} {
	if len(messages) == 0 {
		return planning.NoHistoryInsights()
	}

	ctx, span := s.tracing.StartSpan(ctx, "ceo.insights",
		attribute.Int("conversation.messages", len(messages)),
	)
	defer span.End()

	text, err := s.llm.Complete(ctx, "insights", planning.BuildInsightsPrompt(messages), genai.Options{})
	if err != nil {
		s.logger.Warn("conversation analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
		return planning.AnalysisFailedInsights()
	}

	insights, err := planning.ExtractJSONObject(text)
	if err != nil {
		s.logger.Warn("conversation analysis returned no JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return planning.AnalysisFailedInsights()
	}

	return insights
}

func (s *Service) Status() *StatusResponse {
	return &StatusResponse{
		Status:   "ready",
		Model:    s.llm.Model(),
		Provider: "Groq",
	}
}

func (s *Service) GetProject(projectID string) (*models.ProjectRecord, error) {
	record, err := s.projects.Get(projectID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NewProjectNotFoundError(projectID)
	}
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}
	return record, nil
}

func planBool(plan map[string]interface{}, key string) bool {
	b, _ := plan[key].(bool)
	return b
}

func planString(plan map[string]interface{}, key, fallback string) string {
	if s, ok := plan[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
