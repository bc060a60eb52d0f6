package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultDispatchTimeout bounds a single provider call.
const DefaultDispatchTimeout = 10 * time.Second

const tracerName = "github.com/dmitrymomot/formkit/pkg/contact"

// Pipeline processes submissions in a fixed order: admission, validation,
// sanitization, dispatch, normalization. Submit never returns an error or
// panics; every failure becomes a Result.
type Pipeline struct {
	limiter    ratelimit.Limiter
	dispatcher Dispatcher
	domains    *validator.DomainRegistry
	timeout    time.Duration
	throttle   *rate.Limiter
	logger     *slog.Logger
	tracer     trace.Tracer
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDomains sets the disposable-domain and typo registry. Default
// validator.DefaultDomains(); nil disables both checks.
func WithDomains(r *validator.DomainRegistry) PipelineOption {
	return func(p *Pipeline) { p.domains = r }
}

// WithDispatchTimeout bounds each dispatch.
func WithDispatchTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithDispatchRate caps dispatches per second across all identities. Waiting
// for a token counts against the dispatch timeout. r <= 0 disables it.
func WithDispatchRate(r float64, burst int) PipelineOption {
	return func(p *Pipeline) {
		if r <= 0 {
			p.throttle = nil
			return
		}
		p.throttle = rate.NewLimiter(rate.Limit(r), max(burst, 1))
	}
}

// WithLogger sets the logger. Default discards.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) PipelineOption {
	return func(p *Pipeline) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewPipeline creates a pipeline admitting through limiter and delivering
// through dispatcher.
func NewPipeline(limiter ratelimit.Limiter, dispatcher Dispatcher, opts ...PipelineOption) (*Pipeline, error) {
	if limiter == nil {
		return nil, ErrLimiterRequired
	}
	if dispatcher == nil {
		return nil, ErrDispatcherNeeded
	}

	p := &Pipeline{
		limiter:    limiter,
		dispatcher: dispatcher,
		domains:    validator.DefaultDomains(),
		timeout:    DefaultDispatchTimeout,
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("contact"))

	return p, nil
}

// Submit runs one submission for identity. Exactly one dispatch happens on
// success and none on any earlier rejection.
func (p *Pipeline) Submit(ctx context.Context, identity string, raw Submission) (res Result) {
	ctx, span := p.tracer.Start(ctx, "contact.Submit", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	log := p.logger.With(logger.Identity(identity))

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%w: %v", ErrPanic, rec)
			log.ErrorContext(ctx, "contact submission panicked",
				logger.Error(err),
				slog.String("stack", string(debug.Stack())),
			)
			span.RecordError(err)
			res = InternalError()
		}
		span.SetAttributes(attribute.String("contact.outcome", res.Outcome.String()))
		if res.Outcome == OutcomeSuccess {
			span.SetStatus(codes.Ok, "")
		} else {
			span.SetStatus(codes.Error, res.Outcome.String())
		}
	}()

	admission, err := p.limiter.Allow(ctx, identity)
	if err != nil {
		log.ErrorContext(ctx, "rate limiter unavailable", logger.Error(err))
		span.RecordError(err)
		return InternalError()
	}
	if !admission.Allowed {
		log.WarnContext(ctx, "contact submission rate limited",
			slog.Int("limit", admission.Limit),
			slog.Time("reset_at", admission.ResetAt),
		)
		return RateLimited(admission.RetryAfter())
	}

	if err := raw.Validate(p.domains); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			log.ErrorContext(ctx, "contact validation failed unexpectedly", logger.Error(err))
			span.RecordError(err)
			return InternalError()
		}
		log.InfoContext(ctx, "contact submission rejected", logger.Fields(verrs.Fields()))
		return Invalid(verrs)
	}

	clean := raw.Sanitized()

	id, err := p.dispatch(ctx, clean)
	if errors.Is(err, ErrPanic) {
		log.ErrorContext(ctx, "contact dispatcher panicked", logger.Error(err))
		span.RecordError(err)
		return InternalError()
	}
	if err != nil {
		log.ErrorContext(ctx, "contact dispatch failed", logger.Error(err))
		span.RecordError(err)
		return DispatchFailed()
	}

	log.InfoContext(ctx, "contact submission sent", logger.MessageID(id))
	return Succeeded(id)
}

// dispatch makes the single provider attempt under the dispatch timeout.
func (p *Pipeline) dispatch(ctx context.Context, s Submission) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ctx, span := p.tracer.Start(ctx, "contact.Dispatch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	defer func() {
		span.SetAttributes(attribute.Int64("contact.dispatch_ms", time.Since(start).Milliseconds()))
	}()

	if p.throttle != nil {
		if err := p.throttle.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: throttled: %w", ErrDispatchTimeout, err)
		}
	}

	type outcome struct {
		id  string
		err error
	}
	// Buffered so a dispatcher that ignores ctx can still finish after the
	// deadline without blocking forever.
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: fmt.Errorf("%w: %v\n%s", ErrPanic, rec, debug.Stack())}
			}
		}()
		id, err := p.dispatcher.Dispatch(ctx, s)
		done <- outcome{id: id, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Join(ErrDispatchTimeout, o.err)
		}
		return o.id, o.err
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrDispatchTimeout, ctx.Err())
	}
}
