// internal/store/store.go
package store

import (
	"context"
	"errors"

	"automate-agents/internal/models"
)

// ErrNotFound is returned for lookups of unknown conversation ids.
var ErrNotFound = errors.New("conversation not found")

// ConversationStore holds intake conversations. Implementations give
// last-writer-wins semantics; there is no cross-request locking.
type ConversationStore interface {
	// Create initializes an empty conversation under the given id.
	Create(ctx context.Context, conversationID string) error

	// AppendMessage adds a message, creating the conversation if it
	// does not exist yet.
	AppendMessage(ctx context.Context, conversationID, role, text string) error

	// Get returns the conversation or ErrNotFound.
	Get(ctx context.Context, conversationID string) (*models.Conversation, error)

	// Reset drops all conversations. Test lifecycle hook.
	Reset(ctx context.Context) error
}
