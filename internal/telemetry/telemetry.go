// Package telemetry traces snake rounds with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Version is reported as service.version on every exported span.
const Version = "0.1.0"

const instrumentation = "github.com/vovakirdan/tui-snake"

// Options configure the round exporter.
type Options struct {
	// Endpoint is the collector URL, e.g. http://localhost:4318.
	// Empty falls back to OTEL_EXPORTER_OTLP_ENDPOINT.
	Endpoint string

	// Mode tells local and SSH sessions apart ("local" or "ssh").
	Mode string

	// SampleRatio is the share of rounds exported. Values outside (0, 1)
	// export every round.
	SampleRatio float64
}

// Provider exports round spans over OTLP/HTTP.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Start builds the exporter and installs it as the global tracer provider.
// Call Shutdown before exit to flush pending spans.
func Start(ctx context.Context, opts Options) (*Provider, error) {
	var exporterOpts []otlptracehttp.Option
	if opts.Endpoint != "" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: exporter: %w", err)
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	res := resource.NewSchemaless(
		attribute.String("service.name", "tui-snake"),
		attribute.String("service.version", Version),
		attribute.String("host.name", host),
		attribute.String("snake.mode", opts.Mode),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(opts.SampleRatio)),
	)
	otel.SetTracerProvider(tp)

	return &Provider{tp: tp}, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// Tracer returns the tracer rounds are started from.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(instrumentation)
}

// Shutdown flushes buffered spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// NoopTracer returns a tracer that records nothing, for untraced sessions.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(instrumentation)
}
