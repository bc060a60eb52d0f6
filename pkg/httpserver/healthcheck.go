package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// CheckTimeout bounds each readiness check.
const CheckTimeout = 2 * time.Second

// HealthCheckHandler returns a HTTP handler that can be used for both
// liveness and readiness probes.
//
//   - Liveness: when no checks are supplied the handler simply returns
//     200 OK with body "ALIVE".
//   - Readiness: each check runs with CheckTimeout; if they all succeed the
//     handler returns 200 OK with body "READY", otherwise 503 Service
//     Unavailable with body "NOT_READY". Outside production the failing
//     check's error is appended to the body.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), CheckTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				body := "NOT_READY"
				if environment.FromContext(r.Context()) != "" && !environment.IsProduction(r.Context()) {
					body += ": " + err.Error()
				}
				_, _ = w.Write([]byte(body))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
