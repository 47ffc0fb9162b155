// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"automate-agents/internal/common/config"
	"automate-agents/internal/models"

	"github.com/redis/go-redis/v9"
)

const conversationKeyPrefix = "conversation:"

// RedisStore keeps each conversation as one JSON blob per key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisStore{client: rdb}
}

// NewRedisStoreWithClient wraps an existing client, used in tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *RedisStore) Create(ctx context.Context, conversationID string) error {
	conv := &models.Conversation{
		Messages:  []models.ChatMessage{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.save(ctx, conversationID, conv)
}

func (s *RedisStore) AppendMessage(ctx context.Context, conversationID, role, text string) error {
	conv, err := s.Get(ctx, conversationID)
	if errors.Is(err, ErrNotFound) {
		conv = &models.Conversation{
			Messages:  []models.ChatMessage{},
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
	} else if err != nil {
		return err
	}

	conv.Messages = append(conv.Messages, models.ChatMessage{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return s.save(ctx, conversationID, conv)
}

func (s *RedisStore) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	raw, err := s.client.Get(ctx, conversationKeyPrefix+conversationID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var conv models.Conversation
	if err := json.Unmarshal([]byte(raw), &conv); err != nil {
		return nil, fmt.Errorf("decode conversation %s: %w", conversationID, err)
	}
	return &conv, nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, conversationKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	return iter.Err()
}

func (s *RedisStore) save(ctx context.Context, conversationID string, conv *models.Conversation) error {
	raw, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("encode conversation %s: %w", conversationID, err)
	}
	if err := s.client.Set(ctx, conversationKeyPrefix+conversationID, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
