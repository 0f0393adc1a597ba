package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore is a fixed window counter kept in redis. The first hit of a window
// creates the counter and sets its expiry, later hits only increment it.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	max    int
	window time.Duration
}

// NewRedisStore allows max hits per key per window. A max below 1 is taken as 1.
func NewRedisStore(rdb *redis.Client, prefix string, max int, window time.Duration) *RedisStore {
	if max < 1 {
		max = 1
	}
	return &RedisStore{
		rdb:    rdb,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

func (s *RedisStore) Take(ctx context.Context, key string) (Decision, error) {
	k := s.prefix + ":" + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	}); err != nil {
		return Decision{}, fmt.Errorf("failed to count hit for %s: %w", k, err)
	}

	resetIn := ttl.Val()
	// a negative ttl means the key was just created or lost its expiry
	if resetIn < 0 {
		if err := s.rdb.PExpire(ctx, k, s.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set window for %s: %w", k, err)
		}
		resetIn = s.window
	}

	count := int(incr.Val())
	remaining := s.max - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= s.max,
		Remaining: remaining,
		ResetIn:   resetIn,
	}, nil
}
