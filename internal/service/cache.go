package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SuggestionCache stores assembled suggestion responses in Redis so
// repeated requests with an unchanged pantry and preferences skip the
// generator. A nil cache disables caching.
type SuggestionCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewSuggestionCache creates a Redis-backed suggestion cache.
func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{redis: client, ttl: ttl}
}

// key derives the cache key from everything that affects the response.
func (c *SuggestionCache) key(userID string, fingerprint any) (string, error) {
	data, err := json.Marshal(fingerprint)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache fingerprint: %w", err)
	}
	return fmt.Sprintf("suggest:%s:%x", userID, sha256.Sum256(data)), nil
}

// Get returns the cached suggestion, or nil on a miss or any Redis error.
func (c *SuggestionCache) Get(ctx context.Context, userID string, fingerprint any) *Suggestion {
	if c == nil {
		return nil
	}

	key, err := c.key(userID, fingerprint)
	if err != nil {
		return nil
	}

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}

	var suggestion Suggestion
	if err := json.Unmarshal(data, &suggestion); err != nil {
		return nil
	}
	return &suggestion
}

// Set stores the suggestion with the configured TTL. Best effort:
// Redis errors are swallowed, a cold cache only costs a regeneration.
func (c *SuggestionCache) Set(ctx context.Context, userID string, fingerprint any, suggestion *Suggestion) {
	if c == nil {
		return
	}

	key, err := c.key(userID, fingerprint)
	if err != nil {
		return
	}

	data, err := json.Marshal(suggestion)
	if err != nil {
		return
	}
	c.redis.Set(ctx, key, data, c.ttl)
}
