// Package telemetry sets up OpenTelemetry tracing for UI activations.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope for UI spans.
const TracerName = "gridclock/ui"

// Options configures New.
type Options struct {
	Endpoint    string // host:port of an OTLP/HTTP collector; empty disables export
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider. A nil or disabled Provider hands out a
// no-op tracer.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Provider exporting over OTLP/HTTP when opts.Endpoint is set.
func New(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{}, nil // Disabled
	}

	httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return newProvider(opts.ServiceName, sdktrace.WithBatcher(exporter)), nil
}

// NewWithProcessor creates a Provider that sends spans to sp, for in-process
// consumers such as tracetest.SpanRecorder.
func NewWithProcessor(serviceName string, sp sdktrace.SpanProcessor) *Provider {
	return newProvider(serviceName, sdktrace.WithSpanProcessor(sp))
}

func newProvider(serviceName string, opt sdktrace.TracerProviderOption) *Provider {
	if serviceName == "" {
		serviceName = "gridclock"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	tp := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{provider: tp, tracer: tp.Tracer(TracerName)}
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the UI tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if !p.Enabled() {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.tracer
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
