// internal/server/router_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"automate-agents/internal/agents/ceo"
	"automate-agents/internal/agents/customer"
	"automate-agents/internal/agents/orchestration"
	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/genai"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/common/observability"
	"automate-agents/internal/storage"
	"automate-agents/internal/store"
	"automate-agents/pkg/registry"
)

// fakeLLM satisfies both agents' LLM interfaces with canned
// per-purpose replies.
type fakeLLM struct {
	replies map[string]string
}

func (f *fakeLLM) Complete(ctx context.Context, purpose string, messages []genai.Message, opts genai.Options) (string, error) {
	return f.replies[purpose], nil
}

func (f *fakeLLM) Model() string { return "llama-3.3-70b-versatile" }

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewTestLogger(t)
	errHandler := apperrors.NewErrorHandler(log)
	llm := &fakeLLM{replies: map[string]string{
		"intake":   "Got it! What is your budget?",
		"insights": `{"customer_tone": "neutral"}`,
		"plan":     `{"project_name": "Routed Plan"}`,
	}}

	projects, err := storage.NewProjectStore(t.TempDir())
	assert.NoError(t, err)
	jobs, err := storage.NewJobStore(t.TempDir())
	assert.NoError(t, err)

	customerService := customer.NewService(&customer.Config{MaxTokens: 500}, store.NewMemoryStore(), llm, log)
	ceoService := ceo.NewService(llm, projects, observability.NewTracing("test", ""), log)
	orchestrationService := orchestration.NewService(jobs, projects, log)

	return NewRouter(Dependencies{
		Logger:        log,
		Observability: &observability.Observability{},
		Customer:      customer.NewHandler(customerService, errHandler),
		CEO:           ceo.NewHandler(ceoService, errHandler),
		Orchestration: orchestration.NewHandler(orchestrationService, errHandler),
		Registry:      registry.Default(),
		Model:         "llama-3.3-70b-versatile",
		Environment:   "test",
	})
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "online", body["ceo_agent"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_RootCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Automate Agents API v2.0 - LIVE", body["status"])

	services := body["services"].(map[string]interface{})
	assert.Contains(t, services, "customer")
	assert.Contains(t, services, "ceo")
	assert.Contains(t, services, "agents")

	agent := body["ceo_agent"].(map[string]interface{})
	assert.Equal(t, "llama-3.3-70b-versatile", agent["model"])
	assert.Equal(t, true, agent["initialized"])
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "GET", "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_CustomerFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/customer/message", map[string]interface{}{
		"text": "I sell ashwagandha supplements to professionals, budget 10 lakh",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var msg map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	conversationID := msg["conversation_id"].(string)
	assert.NotEmpty(t, conversationID)
	assert.Equal(t, "Got it! What is your budget?", msg["reply"])

	w = doJSON(router, "GET", "/api/v1/customer/"+conversationID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/customer/ready/"+conversationID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var ready map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ready))
	assert.Equal(t, false, ready["ready_for_ceo"])
	assert.NotEmpty(t, ready["missing"])

	w = doJSON(router, "POST", "/api/v1/customer/export/"+conversationID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var export map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Equal(t, "incomplete", export["status"])
}

func TestRouter_CustomerValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/customer/message", map[string]interface{}{
		"conversation_id": "conv-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.ErrCodeInvalidRequest), body["code"])
}

func TestRouter_PlanningAndTriggerFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, "POST", "/api/v1/ceo/analyze", map[string]interface{}{
		"conversation_id": "conv-plan",
		"requirements": map[string]interface{}{
			"product_service": "supplements",
			"budget":          "1 lakh",
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var analyze map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &analyze))
	assert.Equal(t, "success", analyze["status"])
	assert.Equal(t, "conv-plan", analyze["project_id"])
	plan := analyze["plan"].(map[string]interface{})
	assert.Equal(t, "Routed Plan", plan["project_name"])

	w = doJSON(router, "GET", "/api/v1/ceo/conv-plan", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/ceo/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var status map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ready", status["status"])
	assert.Equal(t, "Groq", status["provider"])

	w = doJSON(router, "POST", "/api/v1/rnd/trigger", map[string]interface{}{
		"project_id": "conv-plan",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var trigger map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &trigger))
	assert.Equal(t, "success", trigger["status"])
	jobID := trigger["job_id"].(string)

	w = doJSON(router, "GET", "/api/v1/jobs/"+jobID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var job map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, "queued", job["status"])
	assert.Equal(t, "conv-plan", job["project_id"])
}

func TestRouter_NotFoundResponses(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode string
	}{
		{"unknown conversation", "GET", "/api/v1/customer/missing", "CONVERSATION_NOT_FOUND"},
		{"unknown project", "GET", "/api/v1/ceo/missing", "PROJECT_NOT_FOUND"},
		{"unknown job", "GET", "/api/v1/jobs/missing", "JOB_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, tt.method, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}
