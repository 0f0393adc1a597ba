package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-api/sys"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type entry struct {
	Id    string
	Title string
}

func TestCache(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() { _ = rdb.Close() }()

	sys.Configs.Cache.OperationTimeout = time.Second
	sys.Configs.Cache.CacheTTL = time.Hour
	log := zap.NewNop().Sugar()
	ctx := context.Background()

	_, ok := Get[entry](ctx, rdb, log, "notes.1")
	assert.False(t, ok)

	Set(ctx, rdb, log, "notes.1", entry{Id: "1", Title: "Shopping"})
	assert.True(t, s.Exists("notes.1"))
	assert.Equal(t, time.Hour, s.TTL("notes.1"))

	got, ok := Get[entry](ctx, rdb, log, "notes.1")
	assert.True(t, ok)
	assert.Equal(t, entry{Id: "1", Title: "Shopping"}, got)

	Del(ctx, rdb, log, "notes.1")
	assert.False(t, s.Exists("notes.1"))

	// corrupted entries are treated as a miss
	_ = s.Set("notes.2", "{not json")
	_, ok = Get[entry](ctx, rdb, log, "notes.2")
	assert.False(t, ok)
}

func TestCache_NilClient(t *testing.T) {
	log := zap.NewNop().Sugar()
	ctx := context.Background()

	Set(ctx, nil, log, "k", entry{Id: "1"})
	Del(ctx, nil, log, "k")
	_, ok := Get[entry](ctx, nil, log, "k")
	assert.False(t, ok)
}
