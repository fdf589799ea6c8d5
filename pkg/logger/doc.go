// Package logger builds *slog.Logger instances for liquidkit binaries.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the chosen slog handler in a decorator that pulls request-scoped
// attributes, such as the request id, out of context.Context on every record.
// NewFromConfig does the same from environment-driven Config.
//
// # Usage
//
//	import "github.com/dmitrymomot/liquidkit/pkg/logger"
//
//	log := logger.New(
//		logger.WithEnvironment("production", "liquidkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "filter applied", logger.Filter("truncate"))
//
// Production and staging environments log JSON at INFO; anything else logs
// text at DEBUG.
package logger
