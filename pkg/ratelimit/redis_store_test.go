package ratelimit_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/ratelimit"
)

// redisClient connects to REDIS_URL or skips the test.
func redisClient(t *testing.T) *goredis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" || testing.Short() {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	return client
}

func TestRedisStore_FixedWindow(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	store := ratelimit.NewRedisStore(client, ratelimit.WithKeyPrefix("formkit-test:"))
	key := uuid.NewString()
	t.Cleanup(func() { _ = store.Delete(context.Background(), key) })

	start := time.Now().Truncate(time.Millisecond)

	var got []bool
	for range 4 {
		_, admitted, err := store.CheckAndRecord(ctx, key, start, 3, time.Minute)
		require.NoError(t, err)
		got = append(got, admitted)
	}
	assert.Equal(t, []bool{true, true, true, false}, got)

	e, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, e.Count)
	assert.True(t, start.Equal(e.WindowStart))

	later := start.Add(time.Minute + time.Millisecond)
	e, admitted, err := store.CheckAndRecord(ctx, key, later, 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, admitted)
	assert.Equal(t, 1, e.Count)

	ttl, err := client.PTTL(ctx, "formkit-test:"+key).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestRedisStore_GetMissing(t *testing.T) {
	client := redisClient(t)
	store := ratelimit.NewRedisStore(client)

	_, found, err := store.Get(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, found)
}
