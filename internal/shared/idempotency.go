package shared

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore remembers processed request keys so that offline clients
// replaying a write receive the original result instead of a duplicate row.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore constructs the redis-backed store.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// ErrIdempotencyConflict indicates the key is reserved but its result is not
// recorded yet (a concurrent request is still in flight).
var ErrIdempotencyConflict = errors.New("idempotent request already in progress")

const pendingMarker = "__pending__"

func (s *IdempotencyStore) key(module, key string) string {
	return "idem:" + module + ":" + key
}

// Lookup returns the recorded result for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, module, key string) (string, bool, error) {
	if s == nil || s.client == nil {
		return "", false, nil
	}
	val, err := s.client.Get(ctx, s.key(module, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if val == pendingMarker {
		return "", false, ErrIdempotencyConflict
	}
	return val, true, nil
}

// Reserve claims the key before processing. Returns false when another
// request already holds it.
func (s *IdempotencyStore) Reserve(ctx context.Context, module, key string) (bool, error) {
	if s == nil || s.client == nil {
		return true, nil
	}
	return s.client.SetNX(ctx, s.key(module, key), pendingMarker, s.ttl).Result()
}

// Complete records the result for a reserved key.
func (s *IdempotencyStore) Complete(ctx context.Context, module, key, result string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Set(ctx, s.key(module, key), result, s.ttl).Err()
}

// Release frees a reserved key after failed processing so the client may retry.
func (s *IdempotencyStore) Release(ctx context.Context, module, key string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, s.key(module, key)).Err()
}
