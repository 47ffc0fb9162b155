// internal/agents/customer/config.go
package customer

import "automate-agents/internal/common/config"

type Config struct {
	Temperature float64
	MaxTokens   int
}

// NewConfig maps the GenAI section onto intake-call parameters. Intake
// replies run at zero temperature so follow-up questions stay stable.
func NewConfig(cfg config.GenAIConfig) *Config {
	return &Config{
		Temperature: cfg.IntakeTemp,
		MaxTokens:   cfg.IntakeMaxTokens,
	}
}
