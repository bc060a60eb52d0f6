package contact

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Handler is the authoritative HTTP endpoint. POST submits, OPTIONS answers
// a preflight with an empty 200, anything else is 405.
type Handler struct {
	pipeline *Pipeline
	bind     binder.Func
	identity func(*http.Request) string
	logger   *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxBodyBytes caps the request body. Default binder.DefaultMaxBodySize.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.bind = binder.Auto(n)
		}
	}
}

// WithIdentity replaces how the rate-limit identity is derived.
func WithIdentity(fn func(*http.Request) string) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.identity = fn
		}
	}
}

// WithHandlerLogger sets the logger for render failures.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates the endpoint around p.
func NewHandler(p *Pipeline, opts ...HandlerOption) *Handler {
	h := &Handler{
		pipeline: p,
		bind:     binder.Auto(binder.DefaultMaxBodySize),
		identity: requestIdentity,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// requestIdentity prefers the identity stored by clientip.Middleware.
func requestIdentity(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.Identity(r)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodPost, http.MethodOptions}, ", "))
		h.render(w, r, MethodNotAllowed())
		return
	}

	var payload map[string]any
	if err := h.bind(r, &payload); err != nil {
		h.logger.InfoContext(r.Context(), "malformed contact request", logger.Error(err))
		h.render(w, r, MalformedBody())
		return
	}
	if payload == nil {
		// A JSON null or a non-object value decodes without filling the map.
		h.render(w, r, MalformedBody())
		return
	}

	h.render(w, r, h.pipeline.Submit(r.Context(), h.identity(r), FromMap(payload)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, res Result) {
	if err := res.Render(w, r); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write contact response", logger.Error(err))
	}
}
