// Package telemetry wires OpenTelemetry tracing for the CLI. Library
// packages only use the otel API; this package installs the SDK.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Tracing is an installed tracer provider. A nil *Tracing is valid and
// does nothing.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider as the global provider
// when OTEL_EXPORTER_OTLP_ENDPOINT is set. It returns nil when tracing is
// not configured.
func Setup(ctx context.Context) (*Tracing, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil
	}

	// The exporter reads the endpoint URL and headers from the standard
	// OTEL_EXPORTER_OTLP_* variables.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	t := Install(sdktrace.WithBatcher(exporter))
	return t, nil
}

// Install sets a tracer provider built from opts as the global provider.
func Install(opts ...sdktrace.TracerProviderOption) *Tracing {
	service := os.Getenv("OTEL_SERVICE_NAME")
	if service == "" {
		service = "faceplate"
	}
	opts = append(opts, sdktrace.WithResource(resource.NewSchemaless(
		attribute.String("service.name", service),
	)))
	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	return &Tracing{provider: provider}
}

// Enabled reports whether spans are exported.
func (t *Tracing) Enabled() bool { return t != nil }

// Shutdown flushes and closes the exporter.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
