package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/formkit/pkg/contact"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// DefaultTimeout bounds the round trip to the endpoint.
const DefaultTimeout = 15 * time.Second

// Client is the pre-submit path. It runs the same admission, validation and
// sanitization as the endpoint, keyed by the submitter's email, and only
// then posts the submission to the endpoint.
type Client struct {
	pipeline *contact.Pipeline
}

type options struct {
	httpClient *http.Client
	limiter    ratelimit.Limiter
	logger     *slog.Logger
	timeout    time.Duration
	pipeline   []contact.PipelineOption
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the transport client. Default has DefaultTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithLimiter replaces the in-memory limiter using the default quota.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(o *options) {
		if l != nil {
			o.limiter = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTimeout bounds each submission round trip.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithPipelineOptions passes extra options to the underlying pipeline.
func WithPipelineOptions(opts ...contact.PipelineOption) Option {
	return func(o *options) { o.pipeline = append(o.pipeline, opts...) }
}

// New creates a client posting to endpoint.
func New(endpoint string, opts ...Option) (*Client, error) {
	o := &options{
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}
	if o.limiter == nil {
		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), ratelimit.DefaultLimit, ratelimit.DefaultWindow)
		if err != nil {
			return nil, err
		}
		o.limiter = fw
	}

	d, err := NewHTTPDispatcher(endpoint, o.httpClient)
	if err != nil {
		return nil, err
	}

	popts := append([]contact.PipelineOption{
		contact.WithDispatchTimeout(o.timeout),
		contact.WithLogger(o.logger),
	}, o.pipeline...)

	p, err := contact.NewPipeline(o.limiter, d, popts...)
	if err != nil {
		return nil, err
	}
	return &Client{pipeline: p}, nil
}

// Submit checks s locally and forwards it. A local rejection never reaches
// the network. When the endpoint answers with a failure, its own Result is
// returned.
func (c *Client) Submit(ctx context.Context, s contact.Submission) contact.Result {
	slot := &remoteSlot{}
	ctx = withRemoteSlot(ctx, slot)

	res := c.pipeline.Submit(ctx, Identity(s.Email), s)
	if res.Outcome == contact.OutcomeDispatchFailed {
		if remote, ok := slot.get(); ok {
			return remote
		}
	}
	return res
}

// Identity is the rate-limit key of the pre-submit path: the normalized email.
func Identity(email string) string {
	if id := sanitizer.NormalizeEmail(email); id != "" {
		return id
	}
	return unknownIdentity
}

const unknownIdentity = "unknown"
