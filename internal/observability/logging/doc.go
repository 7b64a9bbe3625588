// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats (LOG_FORMAT)
//   - Configurable log levels (LOG_LEVEL)
//   - Correlation and trace ID propagation per chat message
//   - Context-aware logging
//
// Example usage:
//
//	import "notion-inbox/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New()
//	    logger.Info("bot started", slog.String("bot", "notion-inbox"))
//	}
//
//	func handle(ctx context.Context) {
//	    logger := logging.FromContext(ctx)
//	    logger.Info("processing message")
//	}
package logging
