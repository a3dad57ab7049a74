package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitWindow = time.Minute

// RateLimiter provides fixed-window request limiting backed by Redis.
// Key format: ratelimit:<scope>:<key>
type RateLimiter struct {
	client *redis.Client
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit requests per key per
// one-minute window.
func NewRateLimiter(client *redis.Client, limit int) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit)}
}

// Allow records one attempt for key under scope and reports whether it is
// still within the window's budget.
func (l *RateLimiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", scope, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		// first hit in this window starts the clock
		if err := l.client.Expire(ctx, k, rateLimitWindow).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}
