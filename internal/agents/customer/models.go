// internal/agents/customer/models.go
package customer

import "automate-agents/internal/models"

// ReadyThreshold is the completeness at which a conversation can be
// handed to planning.
const ReadyThreshold = 0.8

type MessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ConversationID string              `json:"conversation_id"`
	Reply          string              `json:"reply"`
	Requirements   models.Requirements `json:"requirements"`
	Completeness   float64             `json:"completeness"`
	ReadyForCEO    bool                `json:"ready_for_ceo"`
}

type ConversationResponse struct {
	ConversationID string               `json:"conversation_id"`
	Messages       []models.ChatMessage `json:"messages"`
	Requirements   models.Requirements  `json:"requirements"`
	Completeness   float64              `json:"completeness"`
	CreatedAt      string               `json:"created_at"`
}

type ReadyResponse struct {
	ConversationID string   `json:"conversation_id"`
	ReadyForCEO    bool     `json:"ready_for_ceo"`
	Completeness   float64  `json:"completeness"`
	Missing        []string `json:"missing"`
}

type ExportResponse struct {
	ConversationID string               `json:"conversation_id"`
	Status         string               `json:"status"`
	Brief          models.Requirements  `json:"brief"`
	Messages       []models.ChatMessage `json:"messages"`
	CreatedAt      string               `json:"created_at"`
}
