// Package redis connects to a Redis server for shared rate-limit state.
//
// Connect retries the connection using the supplied Config and Healthcheck
// adapts a client to a readiness probe. Config is usually populated from the
// environment via pkg/config; an empty REDIS_URL disables Redis entirely.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := ratelimit.NewRedisStore(client, ratelimit.WithKeyPrefix(cfg.KeyPrefix))
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log, redis.Healthcheck(client)))
//
// Sentinel errors (ErrNotReady and friends) wrap the underlying go-redis
// errors using errors.Join.
package redis
