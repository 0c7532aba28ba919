package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"ohio-order/models"
)

// DraftStore keeps one order draft per table session.
type DraftStore interface {
	Get(ctx context.Context, sessionID string) (*models.Draft, error)
	Put(ctx context.Context, sessionID string, draft *models.Draft) error
	Delete(ctx context.Context, sessionID string) error
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("pesanan_draft_%s", sessionID)
}

type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, sessionID string) (*models.Draft, error) {
	cached, err := s.client.Get(ctx, draftKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft models.Draft
	if err := json.Unmarshal([]byte(cached), &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, sessionID string, draft *models.Draft) error {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(sessionID), string(jsonData), s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, draftKey(sessionID)).Err()
}

// MemoryDraftStore is used when Redis is not available.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string][]byte{}}
}

// Drafts are stored encoded so callers never share memory with the store.
func (s *MemoryDraftStore) Get(_ context.Context, sessionID string) (*models.Draft, error) {
	s.mu.Lock()
	raw, ok := s.drafts[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var draft models.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, sessionID string, draft *models.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	s.mu.Lock()
	s.drafts[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
	return nil
}
