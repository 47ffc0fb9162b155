// internal/agents/ceo/models.go
package ceo

import "automate-agents/internal/models"

type AnalyzeRequest struct {
	ConversationID string                 `json:"conversation_id"`
	Requirements   map[string]interface{} `json:"requirements" binding:"required"`
	Messages       []models.ChatMessage   `json:"messages"`
}

type AnalyzeResponse struct {
	Status             string                 `json:"status"`
	ProjectID          string                 `json:"project_id"`
	ConversationID     string                 `json:"conversation_id"`
	Plan               map[string]interface{} `json:"plan"`
	RNDTrigger         bool                   `json:"rnd_trigger"`
	MarketingTrigger   bool                   `json:"marketing_trigger"`
	SuccessProbability string                 `json:"success_probability"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
}
