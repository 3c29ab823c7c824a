package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockoutCache mirrors account lockout state in Redis so repeated attempts on
// a locked account are rejected without a store round-trip. Keys expire when
// the lockout window closes; the user record stays authoritative.
// Key format: lockout:<email>
type LockoutCache struct {
	client *redis.Client
}

// NewLockoutCache creates a LockoutCache wrapping the given Redis client.
func NewLockoutCache(client *redis.Client) *LockoutCache {
	return &LockoutCache{client: client}
}

// IsLocked reports whether a lockout marker exists for the account.
func (l *LockoutCache) IsLocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("lockout check: %w", err)
	}
	return n > 0, nil
}

// Lock records the lockout until the given instant. Already-expired windows
// are ignored.
func (l *LockoutCache) Lock(ctx context.Context, email string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, l.key(email), "1", ttl).Err()
}

func (l *LockoutCache) key(email string) string {
	return "lockout:" + strings.ToLower(email)
}
