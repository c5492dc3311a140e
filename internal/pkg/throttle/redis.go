package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter is a fixed window counter shared across instances. The
// window TTL is set with EXPIRE NX on every attempt, so a key whose first
// EXPIRE failed still gets one on the next call. Requires Redis 7.
type RedisLimiter struct {
	store     counterStore
	namespace string
	limit     int
	window    time.Duration
}

// NewRedisLimiter allows limit events per window for each key.
func NewRedisLimiter(client redis.UniversalClient, namespace string, limit int, window time.Duration) *RedisLimiter {
	return newRedisLimiter(client, namespace, limit, window)
}

func newRedisLimiter(store counterStore, namespace string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{store: store, namespace: namespace, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := l.namespace + ":" + key

	cnt, err := l.store.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if err := l.store.ExpireNX(ctx, fullKey, l.window).Err(); err != nil {
		return false, fmt.Errorf("throttle expire: %w", err)
	}
	return cnt <= int64(l.limit), nil
}
