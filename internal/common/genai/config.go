// internal/common/genai/config.go
package genai

import (
	"time"

	"automate-agents/internal/common/config"
)

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
	MaxRetries  int
}

// NewConfig maps the application GenAI section onto the client config.
func NewConfig(cfg config.GenAIConfig) *Config {
	return &Config{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Timeout:     config.GetDuration(cfg.Timeout),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		MaxRetries:  cfg.MaxRetries,
	}
}
