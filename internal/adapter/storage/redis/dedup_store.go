package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore implements ports.DeliveryDedup using Redis SET NX. Each inbound
// payload nonce is admitted exactly once per TTL window, which protects the
// destination mint against transport redelivery.
type DedupStore struct {
	client *redis.Client
	prefix string
}

// NewDedupStore creates a new Redis-backed delivery dedup store.
func NewDedupStore(client *redis.Client) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "bridge:seen:",
	}
}

// CheckAndSet atomically records the nonce. Returns true if the nonce is new,
// false if it was already consumed.
func (s *DedupStore) CheckAndSet(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	key := s.prefix + nonce
	result, err := s.client.SetArgs(ctx, key, 1, redis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			// Key already exists — payload was already delivered
			return false, nil
		}
		return false, fmt.Errorf("redis dedup check: %w", err)
	}
	return result == "OK", nil
}

// Forget removes a recorded nonce, re-admitting future redeliveries of the
// same payload. Called when processing failed after CheckAndSet.
func (s *DedupStore) Forget(ctx context.Context, nonce string) error {
	if err := s.client.Del(ctx, s.prefix+nonce).Err(); err != nil {
		return fmt.Errorf("redis dedup forget: %w", err)
	}
	return nil
}
