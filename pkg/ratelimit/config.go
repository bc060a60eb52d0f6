package ratelimit

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Store kinds accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config describes the submission quota and where its state lives.
type Config struct {
	Store         string        `env:"RATE_LIMIT_STORE" envDefault:"memory" validate:"oneof=memory redis"`
	MaxRequests   int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"3" validate:"gte=1"`
	Window        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m" validate:"gt=0"`
	SweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL" envDefault:"5m" validate:"gt=0"`
}

// NewFromConfig builds a FixedWindow over the configured store. client is
// required only for the redis store; keyPrefix is passed to NewRedisStore
// when non-empty.
func NewFromConfig(cfg Config, client redis.UniversalClient, keyPrefix string, opts ...FixedWindowOption) (*FixedWindow, error) {
	var store Store
	switch cfg.Store {
	case StoreRedis:
		if client == nil {
			return nil, ErrStoreRequired
		}
		var storeOpts []RedisStoreOption
		if keyPrefix != "" {
			storeOpts = append(storeOpts, WithKeyPrefix(keyPrefix))
		}
		store = NewRedisStore(client, storeOpts...)
	default:
		store = NewMemoryStore(WithSweepInterval(cfg.SweepInterval))
	}

	limit := cfg.MaxRequests
	if limit == 0 {
		limit = DefaultLimit
	}
	window := cfg.Window
	if window == 0 {
		window = DefaultWindow
	}
	return NewFixedWindow(store, limit, window, opts...)
}
