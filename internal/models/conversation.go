// internal/models/conversation.go
package models

// ChatMessage is a single turn in an intake conversation.
type ChatMessage struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Conversation is the stored intake chat state.
type Conversation struct {
	Messages  []ChatMessage `json:"messages"`
	CreatedAt string        `json:"created_at"`
}

// Requirements is the six-field presence snapshot extracted from a
// conversation. A field is "mentioned" or null.
type Requirements struct {
	ProductService *string `json:"product_service"`
	TargetAudience *string `json:"target_audience"`
	Budget         *string `json:"budget"`
	Timeline       *string `json:"timeline"`
	Channels       *string `json:"channels"`
	Goals          *string `json:"goals"`
}
