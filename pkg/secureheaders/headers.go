package secureheaders

import (
	"maps"
	"net/http"
)

// Defaults is the fixed header set written on every response.
var Defaults = map[string]string{
	"X-Content-Type-Options":       "nosniff",
	"X-Frame-Options":              "DENY",
	"X-XSS-Protection":             "1; mode=block",
	"Referrer-Policy":              "strict-origin-when-cross-origin",
	"Permissions-Policy":           "camera=(), microphone=(), geolocation=(), interest-cohort=()",
	"Strict-Transport-Security":    "max-age=31536000; includeSubDomains; preload",
	"Cross-Origin-Embedder-Policy": "require-corp",
	"Cross-Origin-Opener-Policy":   "same-origin",
	"Cross-Origin-Resource-Policy": "same-origin",
}

type options struct {
	headers map[string]string
	csp     *Policy
}

// Option customizes Middleware.
type Option func(*options)

// WithHeader overrides or adds a header. An empty value removes it.
func WithHeader(name, value string) Option {
	return func(o *options) {
		if value == "" {
			delete(o.headers, name)
			return
		}
		o.headers[name] = value
	}
}

// WithCSP adds a Content-Security-Policy built from p. When p uses nonces a
// fresh one is generated per request and exposed through NonceFromContext.
func WithCSP(p Policy) Option {
	return func(o *options) { o.csp = &p }
}

// Middleware writes the security headers before calling next, so they are
// present on every status code including errors and preflight responses.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := &options{headers: maps.Clone(Defaults)}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range o.headers {
				h.Set(name, value)
			}

			if o.csp != nil {
				var nonce string
				if o.csp.UseNonce {
					n, err := NewNonce()
					if err == nil {
						nonce = n
						r = r.WithContext(withNonce(r.Context(), nonce))
					}
				}
				h.Set("Content-Security-Policy", o.csp.String(nonce))
			}

			next.ServeHTTP(w, r)
		})
	}
}
