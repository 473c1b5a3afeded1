package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tazaticket/models"

	"github.com/go-redis/redis/v8"
)

const statePrefix = "conv:state:"

// RedisStore keeps each user's state as a JSON value under conv:state:<user>,
// with the TTL refreshed on every write. Redis handles expiry itself.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*models.ConversationState, error) {
	data, err := s.client.Get(ctx, statePrefix+userID).Result()
	if err == redis.Nil {
		return models.NewConversationState(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation state: %w", err)
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		// A corrupt record must not wedge the user; start them fresh.
		return models.NewConversationState(userID), nil
	}
	if state.UserID == "" {
		state.UserID = userID
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, state *models.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation state: %w", err)
	}
	if err := s.client.Set(ctx, statePrefix+state.UserID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write conversation state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, statePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation state: %w", err)
	}
	return nil
}

func (s *RedisStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	iter := s.client.Scan(ctx, 0, statePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		stats.Entries++
		if len(stats.SampleKeys) < 10 {
			stats.SampleKeys = append(stats.SampleKeys, iter.Val()[len(statePrefix):])
		}
	}
	if err := iter.Err(); err != nil {
		return Stats{}, fmt.Errorf("failed to scan conversation states: %w", err)
	}
	return stats, nil
}

// Sweep is a no-op: Redis expires entries server-side.
func (s *RedisStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
