package contact

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/secureheaders"
)

// RouterOptions configures NewRouter. Handler is required.
type RouterOptions struct {
	Handler       http.Handler
	Path          string
	AllowedOrigin string
	Environment   environment.Environment
	Logger        *slog.Logger
	// ReadyChecks gate /health/ready, e.g. redis.Healthcheck.
	ReadyChecks []httpserver.Check
}

// NewRouter mounts the contact endpoint and health probes behind the request
// id, environment, client ip, security header and CORS middleware.
//
// Example:
//
//	r := contact.NewRouter(contact.RouterOptions{
//	    Handler:       contact.NewHandler(pipeline),
//	    Path:          cfg.Path,
//	    AllowedOrigin: cfg.AllowedOrigin,
//	})
func NewRouter(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	path := opts.Path
	if path == "" {
		path = "/api/send-email"
	}
	env := opts.Environment
	if env == "" {
		env = environment.Development
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(env),
		clientip.Middleware,
		requestLogger(log),
		middleware.Recoverer,
		secureheaders.Middleware(secureheaders.WithCSP(secureheaders.APIPolicy())),
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, opts.ReadyChecks...))

	r.With(secureheaders.CORS(opts.AllowedOrigin)).Handle(path, opts.Handler)

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
