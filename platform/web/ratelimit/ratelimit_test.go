package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(store Store, events *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth", Middleware(Options{
		Name:    "login",
		Store:   store,
		Message: LoginMessage,
		Events:  events,
	}), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func login(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth?from=test", nil)
	req.RemoteAddr = ip + ":4321"
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware_FixedWindowRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() { _ = rdb.Close() }()

	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(NewRedisStore(rdb, "ratelimit:login", 5, time.Minute), zap.New(core).Sugar())

	for i := 0; i < 5; i++ {
		w := login(r, "10.0.0.1")
		require.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w := login(r, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"`+LoginMessage+`"}`, w.Body.String())
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Too Many Requests: "+LoginMessage, entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/auth?from=test", fields["url"])
	assert.Equal(t, "http://localhost:3000", fields["origin"])
	assert.NotEmpty(t, fields["id"])

	// other clients keep their own window
	assert.Equal(t, http.StatusOK, login(r, "10.0.0.2").Code)

	s.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, login(r, "10.0.0.1").Code)
}

func TestMiddleware_Memory(t *testing.T) {
	r := newEngine(NewMemoryStore(5, time.Minute), nil)

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, login(r, "10.0.0.1").Code, "attempt %d", i+1)
	}
	w := login(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, login(r, "10.0.0.2").Code)
}

type failingStore struct{}

func (failingStore) Take(context.Context, string) (Decision, error) {
	return Decision{}, errors.New("connection refused")
}

func TestMiddleware_StoreFailureLetsRequestThrough(t *testing.T) {
	r := newEngine(failingStore{}, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, login(r, "10.0.0.1").Code)
	}
}

func TestRedisStore_Decision(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer func() { _ = rdb.Close() }()

	store := NewRedisStore(rdb, "rl", 2, time.Minute)
	ctx := context.Background()

	dec, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 1, dec.Remaining)
	assert.Equal(t, time.Minute, dec.ResetIn)

	dec, err = store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 0, dec.Remaining)

	dec, err = store.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.True(t, s.Exists("rl:k"))
}

func TestMemoryStore_FixedWindow(t *testing.T) {
	const window = 500 * time.Millisecond
	store := NewMemoryStore(5, window)
	ctx := context.Background()

	allowed := 0
	start := time.Now()
	for time.Since(start) < 300*time.Millisecond {
		dec, err := store.Take(ctx, "k")
		require.NoError(t, err)
		if dec.Allowed {
			allowed++
		} else {
			assert.Greater(t, dec.ResetIn, time.Duration(0))
			assert.LessOrEqual(t, dec.ResetIn, window)
			assert.Equal(t, 0, dec.Remaining)
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 5, allowed)

	time.Sleep(window)
	dec, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, dec.Allowed, "a new window gets a fresh allowance")
	assert.Equal(t, 4, dec.Remaining)
}

func TestMemoryStore_MaxBelowOne(t *testing.T) {
	store := NewMemoryStore(0, time.Minute)
	ctx := context.Background()

	dec, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)

	dec, err = store.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
}

func TestMemoryStore_Cleanup(t *testing.T) {
	store := NewMemoryStore(1, time.Millisecond)

	dec, err := store.Take(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, dec.Allowed)

	time.Sleep(5 * time.Millisecond)
	store.Cleanup()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.entries)
}
