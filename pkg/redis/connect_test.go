package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/redis"
)

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  redis.Config
		err  error
	}{
		{
			name: "disabled",
			cfg:  redis.Config{},
			err:  redis.ErrEmptyURL,
		},
		{
			name: "bad url",
			cfg:  redis.Config{ConnectionURL: "http://localhost"},
			err:  redis.ErrInvalidURL,
		},
		{
			name: "unreachable",
			cfg: redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1/0",
				RetryAttempts:  2,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: time.Second,
			},
			err: redis.ErrNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Connect(context.Background(), tt.cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, redis.Healthcheck(client)(context.Background()))
}

func TestConfigEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	err := redis.Healthcheck(client)(context.Background())
	assert.ErrorIs(t, err, redis.ErrUnhealthy)
}
