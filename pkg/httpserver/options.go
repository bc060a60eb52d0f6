package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Server. Invalid arguments panic at construction, since
// they are programming errors.
type Option func(*config)

func mustPositive(opt string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver.%s: duration must be positive, got %s", opt, d))
	}
}

// WithAddr sets the listen address, e.g. ":8080" or "127.0.0.1:0".
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver.WithAddr: empty address")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	mustPositive("WithReadHeaderTimeout", d)
	return func(c *config) { c.readHeaderTimeout = d }
}

// WithWriteTimeout bounds the whole handler run. Keep it above the contact
// dispatch timeout or slow providers surface as dropped connections.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout caps how long in-flight requests may run after Run's
// context is cancelled.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer starts from srv instead of a zero http.Server. Fields already
// set on srv win over the other options; Handler is always replaced.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver.WithServer: nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the server logger. Nil discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook runs h after the listener is bound. Hooks run in order.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver.WithStartHook: nil hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook runs h once shutdown has finished.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver.WithStopHook: nil hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
