// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers and structured logging via slog.
//
// Server is built with New or NewFromConfig plus Option helpers such as
// WithAddr and WithShutdownTimeout. Run binds the listener synchronously, so a
// busy port is reported as ErrStart immediately, then serves until the context
// is cancelled and drains in-flight requests within the shutdown timeout.
// Callers own signal handling:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.HealthCheckHandler(log))
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log, redisCheck))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// WithStartHook and WithStopHook run side-effects around the life-cycle.
//
// # Errors
//
// Run wraps listen errors with ErrStart, Shutdown wraps shutdown errors with
// ErrShutdown. Use errors.Is to distinguish them.
package httpserver
