// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package aims to standardise structured logging across services by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and, when extractors are registered, wraps it in a handler that runs
// every ContextExtractor on each record before delegating.
//
// Attribute helpers (Error, Identity, Fields, MessageID, Duration, Component)
// keep key names consistent. Identity masks email addresses.
//
// # Usage
//
//	import "github.com/dmitrymomot/formkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("formkit"),
//	        logger.WithContextExtractors(requestid.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "contact submission sent",
//	        logger.Identity(identity),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
//   - WithEnvironment, WithDevelopment, WithProduction: per-environment presets.
//   - WithFormat, WithTextFormatter, WithJSONFormatter: output format.
//   - WithLevel and WithAttr: minimum level and static attributes.
//   - WithContextExtractors and WithContextValue: attributes read from context.
//   - WithFile: size-rotated file output via lumberjack, optionally teed.
//
// # Error Handling
//
// Error and MessageID return an empty attribute, which slog drops, for zero
// input, allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
