// Package observability groups the logging and tracing helpers used by the bot.
//
// Subpackages:
//   - logging: slog construction and context propagation of per-message loggers
//   - tracing: OpenTelemetry tracer provider and span helpers
//
// Prometheus metrics live next to the code they measure
// (usecase/capture, infra/worker, internal/pkg/config).
package observability
