// Package exporters builds OpenTelemetry exporters for the observe package
// from short names (stdout, otlp, prometheus, none).
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names.
const (
	Stdout     = "stdout"
	OTLP       = "otlp"
	Prometheus = "prometheus"
	None       = "none"
)

var (
	// ErrUnknownExporter is returned for names the factory does not support.
	ErrUnknownExporter = errors.New("exporters: unknown exporter")

	// ErrEndpointNotConfigured is returned when OTLP is requested without an endpoint.
	ErrEndpointNotConfigured = errors.New("exporters: OTLP endpoint not configured")
)

// Writer is where stdout exporters write. Tests may redirect it.
var Writer io.Writer = os.Stdout

// otlpEndpoint returns the first non-empty endpoint variable.
func otlpEndpoint(signal string) string {
	for _, name := range []string{"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_" + signal + "_ENDPOINT"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// NewTracingExporter creates a span exporter by name.
// Supported: stdout, otlp, none (and empty).
func NewTracingExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch name {
	case Stdout:
		return stdouttrace.New(stdouttrace.WithWriter(Writer))

	case OTLP:
		if otlpEndpoint("TRACES") == "" {
			return nil, fmt.Errorf("%w: set OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ErrEndpointNotConfigured)
		}
		return otlptracegrpc.New(ctx)

	case None, "":
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}

// NewMetricsReader creates a metrics reader by name.
// Supported: stdout, otlp, prometheus, none (and empty).
func NewMetricsReader(ctx context.Context, name string) (sdkmetric.Reader, error) {
	switch name {
	case Stdout:
		return periodic(stdoutmetric.New(stdoutmetric.WithWriter(Writer)))

	case OTLP:
		if otlpEndpoint("METRICS") == "" {
			return nil, fmt.Errorf("%w: set OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", ErrEndpointNotConfigured)
		}
		return periodic(otlpmetricgrpc.New(ctx))

	case Prometheus:
		exp, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		return exp, nil

	case None, "":
		return periodic(stdoutmetric.New(stdoutmetric.WithWriter(io.Discard)))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}

func periodic(exp sdkmetric.Exporter, err error) (sdkmetric.Reader, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics exporter: %w", err)
	}
	return sdkmetric.NewPeriodicReader(exp), nil
}
