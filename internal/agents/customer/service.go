// internal/agents/customer/service.go
package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/genai"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/models"
	"automate-agents/internal/store"
)

const intakeSystemPrompt = `You are CompanyOS Customer Intake Agent. ONLY collect project requirements.

🚫 NEVER: Give marketing advice, explain strategies, make promises.
✅ ALWAYS: Ask simple questions, confirm understanding, stay friendly.

COLLECT 6 FIELDS:
1. PRODUCT_SERVICE - What are they selling?
2. TARGET_AUDIENCE - Who is it for? (age, profession, interests)
3. BUDGET - Approx marketing budget (₹ or range)
4. TIMELINE - When to start and for how long (weeks/months)
5. CHANNELS - Instagram, LinkedIn, Email, YouTube, etc.
6. GOALS - What success means (leads, sales, awareness)

RESPONSE PATTERN:
1) Briefly confirm: "Got it, you want to promote [PRODUCT] to [AUDIENCE]."
2) Status: "I have X/6 details. Missing: [LIST]"
3) Ask ONE follow-up: "What is your [MISSING]?"

RULES:
- One question per message
- If all 6 collected: "I have everything! Ready to plan?"
- Keep tone WhatsApp-friendly`

// LLMClient is the chat-completion surface the intake service needs.
type LLMClient interface {
	Complete(ctx context.Context, purpose string, messages []genai.Message, opts genai.Options) (string, error)
}

type Service struct {
	config *Config
	store  store.ConversationStore
	llm    LLMClient
	logger logger.Logger
}

func NewService(config *Config, convStore store.ConversationStore, llm LLMClient, log logger.Logger) *Service {
	return &Service{
		config: config,
		store:  convStore,
		llm:    llm,
		logger: log.With(map[string]interface{}{
			"agent": "customer",
		}),
	}
}

// ProcessMessage runs one intake turn: store the customer message, ask
// the model for the next question, store the reply, re-extract the
// requirement snapshot over the whole conversation.
func (s *Service) ProcessMessage(ctx context.Context, conversationID, text string) (*MessageResponse, error) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	if _, err := s.store.Get(ctx, conversationID); errors.Is(err, store.ErrNotFound) {
		if err := s.store.Create(ctx, conversationID); err != nil {
			return nil, apperrors.NewStorageWriteFailedError(err)
		}
	} else if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	if err := s.store.AppendMessage(ctx, conversationID, "customer", text); err != nil {
		return nil, apperrors.NewStorageWriteFailedError(err)
	}

	conv, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	reply, err := s.llm.Complete(ctx, "intake", s.buildIntakeMessages(conv.Messages), genai.Options{
		Temperature: &s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, genai.ErrLLMTimeout) {
			return nil, apperrors.NewLLMTimeoutError()
		}
		return nil, apperrors.NewLLMCallFailedError(err)
	}

	if err := s.store.AppendMessage(ctx, conversationID, "assistant", reply); err != nil {
		return nil, apperrors.NewStorageWriteFailedError(err)
	}

	conv, err = s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	reqs := ExtractRequirements(allText(conv.Messages))
	completeness := Completeness(reqs)

	s.logger.Info("intake turn processed", map[string]interface{}{
		"conversationId": conversationID,
		"completeness":   completeness,
	})

	return &MessageResponse{
		ConversationID: conversationID,
		Reply:          reply,
		Requirements:   reqs,
		Completeness:   completeness,
		ReadyForCEO:    completeness >= ReadyThreshold,
	}, nil
}

func (s *Service) GetConversation(ctx context.Context, conversationID string) (*ConversationResponse, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewConversationNotFoundError(conversationID)
	}
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	reqs := ExtractRequirements(allText(conv.Messages))
	return &ConversationResponse{
		ConversationID: conversationID,
		Messages:       conv.Messages,
		Requirements:   reqs,
		Completeness:   Completeness(reqs),
		CreatedAt:      conv.CreatedAt,
	}, nil
}

func (s *Service) Ready(ctx context.Context, conversationID string) (*ReadyResponse, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewConversationNotFoundError(conversationID)
	}
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	reqs := ExtractRequirements(allText(conv.Messages))
	completeness := Completeness(reqs)
	return &ReadyResponse{
		ConversationID: conversationID,
		ReadyForCEO:    completeness >= ReadyThreshold,
		Completeness:   completeness,
		Missing:        MissingFields(reqs),
	}, nil
}

// Export builds the structured brief handed to the planning agent.
func (s *Service) Export(ctx context.Context, conversationID string) (*ExportResponse, error) {
	conv, err := s.store.Get(ctx, conversationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewConversationNotFoundError(conversationID)
	}
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}

	reqs := ExtractRequirements(allText(conv.Messages))
	status := "incomplete"
	if Completeness(reqs) >= ReadyThreshold {
		status = "ready_for_ceo"
	}

	return &ExportResponse{
		ConversationID: conversationID,
		Status:         status,
		Brief:          reqs,
		Messages:       conv.Messages,
		CreatedAt:      conv.CreatedAt,
	}, nil
}

func (s *Service) buildIntakeMessages(history []models.ChatMessage) []genai.Message {
	messages := make([]genai.Message, 0, len(history)+1)
	messages = append(messages, genai.Message{Role: "system", Content: intakeSystemPrompt})
	for _, m := range history {
		role := "assistant"
		if m.Role == "customer" || m.Role == "user" {
			role = "user"
		}
		messages = append(messages, genai.Message{Role: role, Content: m.Text})
	}
	return messages
}

func allText(messages []models.ChatMessage) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, " ")
}
