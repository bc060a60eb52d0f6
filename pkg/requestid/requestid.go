package requestid

import (
	"context"
	"log/slog"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// CorrelationHeader is accepted from upstream proxies when Header is absent.
const CorrelationHeader = "X-Correlation-ID"

// LogKey is the attribute name used by LoggerExtractor.
const LogKey = "request_id"

type ctxKey struct{}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id, or "" outside a request.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// LoggerExtractor adds request_id to every record logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String(LogKey, id), true
	}
}
