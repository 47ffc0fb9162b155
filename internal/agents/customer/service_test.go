// internal/agents/customer/service_test.go
package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/genai"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/store"
)

// fakeLLM records the last request and returns a canned reply.
type fakeLLM struct {
	reply    string
	err      error
	purpose  string
	messages []genai.Message
	opts     genai.Options
}

func (f *fakeLLM) Complete(ctx context.Context, purpose string, messages []genai.Message, opts genai.Options) (string, error) {
	f.purpose = purpose
	f.messages = messages
	f.opts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(t *testing.T, llm *fakeLLM) *Service {
	cfg := &Config{Temperature: 0.0, MaxTokens: 500}
	return NewService(cfg, store.NewMemoryStore(), llm, logger.NewTestLogger(t))
}

func TestService_ProcessMessage_NewConversation(t *testing.T) {
	llm := &fakeLLM{reply: "Got it! What is your budget?"}
	service := newTestService(t, llm)

	resp, err := service.ProcessMessage(context.Background(), "", "I want to sell ashwagandha supplements")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Equal(t, "Got it! What is your budget?", resp.Reply)
	assert.NotNil(t, resp.Requirements.ProductService)
	assert.Nil(t, resp.Requirements.Timeline)
	assert.InDelta(t, 1.0/6, resp.Completeness, 1e-9)
	assert.False(t, resp.ReadyForCEO)

	// Intake tuning is passed through on every turn.
	assert.Equal(t, "intake", llm.purpose)
	assert.NotNil(t, llm.opts.Temperature)
	assert.Equal(t, 0.0, *llm.opts.Temperature)
	assert.Equal(t, 500, llm.opts.MaxTokens)
}

func TestService_ProcessMessage_PromptShape(t *testing.T) {
	llm := &fakeLLM{reply: "And your timeline?"}
	service := newTestService(t, llm)

	resp, err := service.ProcessMessage(context.Background(), "conv-1", "selling a product")
	assert.NoError(t, err)
	assert.Equal(t, "conv-1", resp.ConversationID)

	_, err = service.ProcessMessage(context.Background(), "conv-1", "budget is 2 lakh")
	assert.NoError(t, err)

	// system prompt + customer, assistant, customer
	assert.Len(t, llm.messages, 4)
	assert.Equal(t, "system", llm.messages[0].Role)
	assert.Contains(t, llm.messages[0].Content, "Customer Intake Agent")
	assert.Equal(t, "user", llm.messages[1].Role)
	assert.Equal(t, "assistant", llm.messages[2].Role)
	assert.Equal(t, "user", llm.messages[3].Role)
	assert.Equal(t, "budget is 2 lakh", llm.messages[3].Content)
}

func TestService_ProcessMessage_AccumulatesAcrossTurns(t *testing.T) {
	llm := &fakeLLM{reply: "Noted."}
	service := newTestService(t, llm)

	turns := []string{
		"I sell a supplement product",
		"targeting working professionals",
		"budget is 10 lakh",
		"launching next month",
		"mainly instagram and linkedin",
	}

	var resp *MessageResponse
	var err error
	for _, text := range turns {
		resp, err = service.ProcessMessage(context.Background(), "conv-acc", text)
		assert.NoError(t, err)
	}

	assert.InDelta(t, 5.0/6, resp.Completeness, 1e-9)
	assert.True(t, resp.ReadyForCEO)
	assert.Nil(t, resp.Requirements.Goals)
}

func TestService_ProcessMessage_LLMFailures(t *testing.T) {
	tests := []struct {
		name     string
		llmErr   error
		wantCode apperrors.ErrorCode
	}{
		{"timeout maps to LLM_TIMEOUT", genai.ErrLLMTimeout, apperrors.ErrCodeLLMTimeout},
		{"other failure maps to LLM_CALL_FAILED", genai.ErrLLMCallFailed, apperrors.ErrCodeLLMCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, &fakeLLM{err: tt.llmErr})

			resp, err := service.ProcessMessage(context.Background(), "conv-x", "hello")

			assert.Nil(t, resp)
			stdErr, ok := err.(*apperrors.StandardError)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

func TestService_ProcessMessage_FailedTurnKeepsCustomerMessage(t *testing.T) {
	llm := &fakeLLM{err: genai.ErrLLMCallFailed}
	service := newTestService(t, llm)

	_, err := service.ProcessMessage(context.Background(), "conv-keep", "my message")
	assert.Error(t, err)

	llm.err = nil
	llm.reply = "Back online."
	resp, err := service.ProcessMessage(context.Background(), "conv-keep", "second message")
	assert.NoError(t, err)
	assert.Equal(t, "Back online.", resp.Reply)

	// The failed turn's customer message is still part of the history.
	conv, err := service.GetConversation(context.Background(), "conv-keep")
	assert.NoError(t, err)
	assert.Len(t, conv.Messages, 3)
	assert.Equal(t, "my message", conv.Messages[0].Text)
}

func TestService_GetConversation_NotFound(t *testing.T) {
	service := newTestService(t, &fakeLLM{})

	resp, err := service.GetConversation(context.Background(), "missing")

	assert.Nil(t, resp)
	stdErr, ok := err.(*apperrors.StandardError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConversationNotFound, stdErr.Code)
}

func TestService_Ready(t *testing.T) {
	llm := &fakeLLM{reply: "Noted."}
	service := newTestService(t, llm)

	_, err := service.ProcessMessage(context.Background(), "conv-ready", "I sell a product, budget 1 lakh")
	assert.NoError(t, err)

	resp, err := service.Ready(context.Background(), "conv-ready")
	assert.NoError(t, err)
	assert.False(t, resp.ReadyForCEO)
	assert.InDelta(t, 2.0/6, resp.Completeness, 1e-9)
	assert.Equal(t, []string{"target_audience", "timeline", "channels", "goals"}, resp.Missing)
}

func TestService_Ready_NotFound(t *testing.T) {
	service := newTestService(t, &fakeLLM{})

	_, err := service.Ready(context.Background(), "missing")

	stdErr, ok := err.(*apperrors.StandardError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConversationNotFound, stdErr.Code)
}

func TestService_Export(t *testing.T) {
	llm := &fakeLLM{reply: "Noted."}
	service := newTestService(t, llm)

	t.Run("incomplete brief", func(t *testing.T) {
		_, err := service.ProcessMessage(context.Background(), "conv-exp", "I sell supplements")
		assert.NoError(t, err)

		resp, err := service.Export(context.Background(), "conv-exp")
		assert.NoError(t, err)
		assert.Equal(t, "incomplete", resp.Status)
		assert.NotNil(t, resp.Brief.ProductService)
		assert.Len(t, resp.Messages, 2)
		assert.NotEmpty(t, resp.CreatedAt)
	})

	t.Run("ready brief", func(t *testing.T) {
		_, err := service.ProcessMessage(context.Background(), "conv-exp",
			"targeting professionals, budget 5 lakh, launch next week, instagram, want leads")
		assert.NoError(t, err)

		resp, err := service.Export(context.Background(), "conv-exp")
		assert.NoError(t, err)
		assert.Equal(t, "ready_for_ceo", resp.Status)
	})
}
