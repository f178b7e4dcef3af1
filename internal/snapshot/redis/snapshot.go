package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

// Store implements snapshot.Store using Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a Redis-backed snapshot store. Snapshots expire after ttl.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Load reads and deserializes the snapshot under key. Missing keys and
// corrupt payloads both yield the canonical empty state: the corrupt-to-empty
// fallback is the only migration safety net the snapshot format has.
func (s *Store) Load(ctx context.Context, key string) (domain.CartState, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.EmptyCart(), nil
		}
		return domain.EmptyCart(), fmt.Errorf("redis get snapshot %q: %w", key, err)
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt cart snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return domain.EmptyCart(), nil
	}

	if state.Items == nil {
		state.Items = []domain.LineItem{}
	}
	return state, nil
}

// Save serializes the snapshot and writes it with the configured TTL.
func (s *Store) Save(ctx context.Context, key string, state domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del snapshot %q: %w", key, err)
	}
	return nil
}
