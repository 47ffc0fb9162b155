// cmd/agent-gateway/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"automate-agents/internal/agents/ceo"
	"automate-agents/internal/agents/customer"
	"automate-agents/internal/agents/orchestration"
	"automate-agents/internal/common/config"
	"automate-agents/internal/common/errors"
	"automate-agents/internal/common/genai"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/common/observability"
	"automate-agents/internal/server"
	"automate-agents/internal/storage"
	"automate-agents/internal/store"
	"automate-agents/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting agent gateway...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("agent-gateway")
	defer obs.Shutdown()

	var tracing *observability.Tracing
	if cfg.Observability.TracingEnabled {
		tracing = observability.NewTracing("agent-gateway", cfg.Observability.JaegerEndpoint)
	} else {
		tracing = observability.NewTracing("agent-gateway", "")
	}
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Conversation store ---
	var convStore store.ConversationStore
	switch cfg.Conversation.Backend {
	case "redis":
		redisStore := store.NewRedisStore(cfg.Conversation.Redis)
		err = retryWithBackoff(func() error {
			return redisStore.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisStore.Close()
		convStore = redisStore
		zapLog.Info("Redis conversation store connected")
	default:
		convStore = store.NewMemoryStore()
		zapLog.Info("In-memory conversation store initialized")
	}

	// --- File stores ---
	projects, err := storage.NewProjectStore(cfg.Storage.ProjectsDir)
	if err != nil {
		zapLog.Fatal("project store init failed", zap.Error(err))
	}
	jobs, err := storage.NewJobStore(cfg.Storage.JobsDir)
	if err != nil {
		zapLog.Fatal("job store init failed", zap.Error(err))
	}

	// --- GenAI client ---
	llmClient := genai.NewClient(genai.NewConfig(cfg.APIs.GenAI), &genaiLoggerAdapter{log})
	zapLog.Info("GenAI client initialized", zap.String("model", cfg.APIs.GenAI.Model))

	// --- Services and handlers ---
	errHandler := errors.NewErrorHandler(log)

	customerService := customer.NewService(customer.NewConfig(cfg.APIs.GenAI), convStore, llmClient, log)
	ceoService := ceo.NewService(llmClient, projects, tracing, log)
	orchestrationService := orchestration.NewService(jobs, projects, log)

	reg := registry.Default()

	router := server.NewRouter(server.Dependencies{
		Logger:        log,
		Observability: obs,
		Customer:      customer.NewHandler(customerService, errHandler),
		CEO:           ceo.NewHandler(ceoService, errHandler),
		Orchestration: orchestration.NewHandler(orchestrationService, errHandler),
		Registry:      reg,
		Model:         cfg.APIs.GenAI.Model,
		Environment:   cfg.App.Environment,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Agent gateway stopped gracefully")
}

// genaiLoggerAdapter bridges the shared logger to the genai package's
// own Logger interface.
type genaiLoggerAdapter struct {
	logger.Logger
}

func (a *genaiLoggerAdapter) With(fields map[string]interface{}) genai.Logger {
	return &genaiLoggerAdapter{a.Logger.With(fields)}
}
