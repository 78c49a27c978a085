package telemetry

import (
	"bytes"
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/kiln/internal/core/ports"
)

// InstrumentationName identifies kiln's tracer.
const InstrumentationName = "go.trai.ch/kiln"

// NewProvider creates a TracerProvider whose spans are reported to renderer.
// Span processing is synchronous, so start and end events reach the renderer
// in the order they happen.
func NewProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
}

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
	shutdown func(context.Context) error
}

// NewOTelTracer creates an OTelTracer. Output written to its spans is
// forwarded to renderer; with a nil renderer it is recorded as span events.
func NewOTelTracer(tracer trace.Tracer, renderer ports.Renderer) *OTelTracer {
	return &OTelTracer{
		tracer:   tracer,
		renderer: renderer,
	}
}

// Setup registers a renderer-backed provider as the global OTel provider and
// returns a tracer bound to it.
func Setup(renderer ports.Renderer) *OTelTracer {
	tp := NewProvider(renderer)
	otel.SetTracerProvider(tp)

	t := NewOTelTracer(otel.Tracer(InstrumentationName), renderer)
	t.shutdown = tp.Shutdown
	return t
}

// Shutdown flushes and stops the underlying provider, if the tracer owns one.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	// Apply internal options to SpanConfig (currently placeholder)
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)

	return ctx, &OTelSpan{
		span:     span,
		renderer: t.renderer,
		spanID:   span.SpanContext().SpanID().String(),
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span     trace.Span
	renderer ports.Renderer
	spanID   string
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span and marks it failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by forwarding output to the renderer.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	if s.renderer != nil {
		s.renderer.OnAttemptLog(s.spanID, bytes.Clone(p))
		return len(p), nil
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
