// Package contact processes contact form submissions.
//
// A Pipeline runs each submission through a fixed sequence: rate-limit
// admission for the submitter's identity, field validation, sanitization,
// a single bounded dispatch and normalization into a Result. Submit never
// returns an error and never panics; every failure class maps to a Result
// with a user-facing message, a machine tag and an HTTP status:
//
//	limiter, _ := ratelimit.NewFromConfig(rlCfg, nil, "")
//	dispatcher := contact.NewEmailDispatcher(sender, cfg.From, cfg.To)
//	pipeline, err := contact.NewPipeline(limiter, dispatcher,
//	    contact.WithDispatchTimeout(cfg.DispatchTimeout),
//	    contact.WithLogger(log),
//	)
//
//	res := pipeline.Submit(ctx, identity, contact.FromMap(payload))
//
// Nothing is dispatched unless admission and validation both pass. Values
// handed to the Dispatcher are XSS-sanitized (the email is lowercased
// instead), so dispatchers that render HTML may embed them directly.
//
// # HTTP
//
// Handler exposes the pipeline as a JSON endpoint keyed by client IP, and
// NewRouter mounts it with security headers, single-origin CORS and health
// probes:
//
//	Result       Status
//	success      200
//	invalid      400 (also for malformed bodies, which use no quota)
//	rate limited 429 with Retry-After
//	other method 405
//	failure      500
//
// The client subpackage runs the same pipeline in front of a remote endpoint,
// keyed by the submitter's email.
package contact
