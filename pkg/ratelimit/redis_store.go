package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript applies the admission rule atomically on the server.
// Times are milliseconds. The key expires one millisecond after its window
// has fully elapsed, which is equivalent to a reset.
var fixedWindowScript = redis.NewScript(`
local data = redis.call('HMGET', KEYS[1], 'count', 'start')
local count = tonumber(data[1])
local start = tonumber(data[2])
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

if count == nil or start == nil or now - start > window then
	redis.call('HSET', KEYS[1], 'count', 1, 'start', now)
	redis.call('PEXPIRE', KEYS[1], window + 1)
	return {1, 1, now}
end

if count >= limit then
	return {0, count, start}
end

count = redis.call('HINCRBY', KEYS[1], 'count', 1)
return {1, count, start}
`)

// RedisStore shares fixed-window entries between processes through Redis,
// so the quota holds across every instance behind a load balancer.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the prefix prepended to every key. Default "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckAndRecord implements Store.
func (s *RedisStore) CheckAndRecord(ctx context.Context, key string, now time.Time, limit int, window time.Duration) (Entry, bool, error) {
	res, err := fixedWindowScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		now.UnixMilli(), window.Milliseconds(), limit,
	).Int64Slice()
	if err != nil {
		return Entry{}, false, err
	}
	if len(res) != 3 {
		return Entry{}, false, errors.New("unexpected script reply")
	}

	return Entry{
		Count:       int(res[1]),
		WindowStart: time.UnixMilli(res[2]),
	}, res[0] == 1, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	vals, err := s.client.HMGet(ctx, s.prefix+key, "count", "start").Result()
	if err != nil {
		return Entry{}, false, err
	}
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return Entry{}, false, nil
	}

	count, err := strconv.Atoi(toString(vals[0]))
	if err != nil {
		return Entry{}, false, err
	}
	start, err := strconv.ParseInt(toString(vals[1]), 10, 64)
	if err != nil {
		return Entry{}, false, err
	}

	return Entry{Count: count, WindowStart: time.UnixMilli(start)}, true, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}
