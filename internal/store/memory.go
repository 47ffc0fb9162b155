// internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	"automate-agents/internal/models"
)

// MemoryStore is the default in-process conversation store.
type MemoryStore struct {
	mu            sync.Mutex
	conversations map[string]*models.Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]*models.Conversation),
	}
}

func (s *MemoryStore) Create(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createLocked(conversationID)
	return nil
}

func (s *MemoryStore) createLocked(conversationID string) {
	s.conversations[conversationID] = &models.Conversation{
		Messages:  []models.ChatMessage{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *MemoryStore) AppendMessage(ctx context.Context, conversationID, role, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		s.createLocked(conversationID)
		conv = s.conversations[conversationID]
	}

	conv.Messages = append(conv.Messages, models.ChatMessage{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers never share the internal slice.
	out := &models.Conversation{
		Messages:  append([]models.ChatMessage(nil), conv.Messages...),
		CreatedAt: conv.CreatedAt,
	}
	return out, nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = make(map[string]*models.Conversation)
	return nil
}
