package redis

import "time"

// Config selects and tunes the Redis connection. An empty ConnectionURL means
// Redis is not used and callers fall back to in-memory state.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                                     // ConnectionURL is in the format "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3" validate:"gte=1"`          // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s" validate:"gte=0"`         // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s" validate:"gt=0"`        // ConnectTimeout bounds the whole connect sequence.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"formkit:ratelimit:"`              // KeyPrefix namespaces rate-limit entries.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
