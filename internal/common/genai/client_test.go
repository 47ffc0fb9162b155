// internal/common/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testLogger implements the package Logger interface.
type testLogger struct {
	t testing.TB
}

func (l *testLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO: %s %v", msg, fields)
}

func (l *testLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR: %s %v", msg, fields)
}

func (l *testLogger) With(fields map[string]interface{}) Logger { return l }

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "llama-3.3-70b-versatile",
		Timeout:     5 * time.Second,
		MaxTokens:   4000,
		Temperature: 0.3,
		MaxRetries:  1,
	}
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req["model"])
		assert.Equal(t, 0.3, req["temperature"])
		assert.Equal(t, float64(4000), req["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionBody("Hello from the model")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), &testLogger{t})

	content, err := client.Complete(context.Background(), "intake", []Message{
		{Role: "user", Content: "hi"},
	}, Options{})

	assert.NoError(t, err)
	assert.Equal(t, "Hello from the model", content)
}

func TestClient_Complete_OptionsOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.0, req["temperature"])
		assert.Equal(t, float64(500), req["max_tokens"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionBody("ok")))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), &testLogger{t})

	zero := 0.0
	_, err := client.Complete(context.Background(), "intake", []Message{{Role: "user", Content: "hi"}}, Options{
		Temperature: &zero,
		MaxTokens:   500,
	})

	assert.NoError(t, err)
}

func TestClient_Complete_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		// Each attempt must carry a full request body.
		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["messages"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(completionBody("Success after retry")))
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.MaxRetries = 2
	client := NewClient(config, &testLogger{t})

	content, err := client.Complete(context.Background(), "plan", []Message{{Role: "user", Content: "plan please"}}, Options{})

	assert.NoError(t, err)
	assert.Equal(t, "Success after retry", content)
	assert.Equal(t, 2, attempts)
}

func TestClient_Complete_ExhaustedRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.MaxRetries = 1
	client := NewClient(config, &testLogger{t})

	content, err := client.Complete(context.Background(), "plan", []Message{{Role: "user", Content: "hi"}}, Options{})

	assert.Empty(t, content)
	assert.ErrorIs(t, err, ErrLLMCallFailed)
}

func TestClient_Complete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Timeout = 50 * time.Millisecond
	client := NewClient(config, &testLogger{t})

	content, err := client.Complete(context.Background(), "plan", []Message{{Role: "user", Content: "hi"}}, Options{})

	assert.Empty(t, content)
	assert.ErrorIs(t, err, ErrLLMTimeout)
}

func TestClient_Complete_APIErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": {"message": "model overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), &testLogger{t})

	_, err := client.Complete(context.Background(), "plan", []Message{{Role: "user", Content: "hi"}}, Options{})

	assert.ErrorIs(t, err, ErrLLMCallFailed)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestClient_Complete_DegenerateResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty choices", `{"choices": []}`},
		{"blank content", completionBody("   ")},
		{"malformed json", `not json {{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), &testLogger{t})

			_, err := client.Complete(context.Background(), "plan", []Message{{Role: "user", Content: "hi"}}, Options{})

			assert.ErrorIs(t, err, ErrLLMCallFailed)
		})
	}
}

func TestClient_Model(t *testing.T) {
	client := NewClient(testConfig("http://localhost:9"), &testLogger{t})
	assert.Equal(t, "llama-3.3-70b-versatile", client.Model())
}
