// Package requestid tags every HTTP request with a correlation id.
//
// Middleware takes the id from X-Request-ID or X-Correlation-ID when it is at
// most 128 characters of letters, digits, '-' and '_'; anything else is
// replaced by a fresh UUIDv7. The id is stored in the request context and
// echoed in the X-Request-ID response header.
//
// LoggerExtractor plugs into the logger package so every record logged with
// a request context carries request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
