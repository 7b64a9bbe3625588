// Package tracing provides OpenTelemetry tracing integration.
//
// Spans cover the handling of a single chat message and the remote write it
// triggers. The trace ID is attached to log records so all lines for one
// message can be grouped.
//
// Example usage:
//
//	import "notion-inbox/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitTracer("notion-inbox")
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func handle(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "capture.Handle")
//	    defer span.End()
//	}
package tracing
