package clientip

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// WithContext returns a copy of ctx carrying the client identity.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

// FromContext returns the identity stored by Middleware, or "" when the
// request did not pass through it.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ctxKey{}).(string)
	return ip
}

// Middleware resolves the request's Identity once and stores it in the
// request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), Identity(r))))
	})
}
