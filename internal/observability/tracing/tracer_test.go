package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsNameAndAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	ctx, span := StartSpan(context.Background(), "capture.Handle", attribute.String("outcome", "saved"))
	if TraceID(ctx) == "" {
		t.Error("expected trace ID in span context")
	}
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "capture.Handle" {
		t.Errorf("expected span name 'capture.Handle', got '%s'", spans[0].Name)
	}

	found := false
	for _, attr := range spans[0].Attributes {
		if attr.Key == "outcome" && attr.Value.AsString() == "saved" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected outcome attribute, got %v", spans[0].Attributes)
	}
}

func TestTraceID_NoSpan(t *testing.T) {
	if got := TraceID(context.Background()); got != "" {
		t.Errorf("expected empty trace ID, got %q", got)
	}
}

func TestInitTracer_InstallsProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	shutdown := InitTracer("notion-inbox-test", sdktrace.WithSyncer(exporter))
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	ctx, span := StartSpan(context.Background(), "probe")
	if TraceID(ctx) == "" {
		t.Error("expected sampled span with trace ID")
	}
	span.End()

	if n := len(exporter.GetSpans()); n != 1 {
		t.Errorf("expected 1 exported span, got %d", n)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}
