// Package cache holds the read-through helpers shared by the repositories.
// Every helper is a no-op on a nil client and only logs cache failures, the
// database stays the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-api/sys"
	"go.uber.org/zap"
)

// Get loads key into a T. The bool is false on a miss or any failure.
func Get[T any](ctx context.Context, rdb *redis.Client, log *zap.SugaredLogger, key string) (T, bool) {
	var v T
	if rdb == nil {
		return v, false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := rdb.Get(tcCtx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Error("failure to get ", key, " from cache: ", err.Error())
		}
		return v, false
	}

	if err := json.Unmarshal([]byte(get), &v); err != nil {
		log.Errorf("error parsing cached response for key %s: %s", key, err)
		return v, false
	}
	return v, true
}

// Set stores v under key for the configured TTL
func Set(ctx context.Context, rdb *redis.Client, log *zap.SugaredLogger, key string, v any) {
	if rdb == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("error parsing data to cache for key %s: %s", key, err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := rdb.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
		log.Error("failure to set ", key, " into cache: ", err.Error())
	}
}

// Del evicts key
func Del(ctx context.Context, rdb *redis.Client, log *zap.SugaredLogger, key string) {
	if rdb == nil {
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := rdb.Del(tcCtx, key).Err(); err != nil {
		log.Error("failure to evict ", key, " from cache: ", err.Error())
	}
}
