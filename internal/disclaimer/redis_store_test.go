package disclaimer

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocate_site/internal/services"
)

func newTestRedisStore(t *testing.T, retention time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := services.NewRedisCacheFromClient(client)
	t.Cleanup(func() { _ = cache.Close() })

	return NewRedisStore(cache, retention), mr
}

func TestRedisStoreHasSeen(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	seen, err := store.HasSeen(ctx, "visitor-a")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, store.MarkSeen(ctx, "visitor-a"))

	seen, err = store.HasSeen(ctx, "visitor-a")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestRedisStoreKeepsFirstAcknowledgement(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	first := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }
	require.NoError(t, store.MarkSeen(ctx, "visitor-a"))

	store.now = func() time.Time { return first.Add(30 * time.Minute) }
	require.NoError(t, store.MarkSeen(ctx, "visitor-a"))

	at, ok, err := store.AcknowledgedAt(ctx, "visitor-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, at.Equal(first))
}

func TestRedisStoreExpiresAfterRetention(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.MarkSeen(ctx, "visitor-a"))
	assert.Equal(t, time.Hour, mr.TTL(redisKeyPrefix+"visitor-a"))

	mr.FastForward(time.Hour + time.Second)

	seen, err := store.HasSeen(ctx, "visitor-a")
	require.NoError(t, err)
	assert.False(t, seen)
}
