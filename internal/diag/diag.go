// Package diag optionally exports session lifecycle events (connects,
// disconnects, sends, layout changes) as OTLP spans for debugging long
// monitoring runs.
package diag

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Recorder turns lifecycle events into spans. A nil *Recorder is valid
// and records nothing, so callers never branch on whether tracing is on.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewRecorder creates a recorder if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func NewRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "serimux"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("serimux"),
	}, nil
}

func (r *Recorder) event(name string, attrs ...attribute.KeyValue) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(context.Background(), name)
	span.SetAttributes(attrs...)
	span.End()
}

// Connect records a successful port open.
func (r *Recorder) Connect(port string, baud int) {
	r.event("serial.connect",
		attribute.String("serimux.port", port),
		attribute.Int("serimux.baud", baud),
	)
}

// ConnectFailed records a refused or failed open.
func (r *Recorder) ConnectFailed(port string, reason string) {
	r.event("serial.connect.failed",
		attribute.String("serimux.port", port),
		attribute.String("serimux.reason", reason),
	)
}

// Disconnect records a port close with the session's traffic counters.
func (r *Recorder) Disconnect(port string, rx, tx uint64) {
	r.event("serial.disconnect",
		attribute.String("serimux.port", port),
		attribute.Int64("serimux.rx_messages", int64(rx)),
		attribute.Int64("serimux.tx_messages", int64(tx)),
	)
}

// Send records one transmit.
func (r *Recorder) Send(port string, size int) {
	r.event("serial.send",
		attribute.String("serimux.port", port),
		attribute.Int("serimux.bytes", size),
	)
}

// LayoutChange records a layout switch.
func (r *Recorder) LayoutChange(mode string, panes int) {
	r.event("ui.layout",
		attribute.String("serimux.layout", mode),
		attribute.Int("serimux.panes", panes),
	)
}

// Shutdown flushes and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
