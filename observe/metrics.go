package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records style registration and compilation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCompile records one native compile with duration and error status.
	RecordCompile(ctx context.Context, meta StyleMeta, duration time.Duration, err error)

	// RecordRegistration records a registration lookup. hit reports whether
	// an existing identifier was reused.
	RecordRegistration(ctx context.Context, meta StyleMeta, hit bool)
}

// metricsImpl is the OpenTelemetry implementation of Metrics.
type metricsImpl struct {
	compileTotal  metric.Int64Counter
	compileErrors metric.Int64Counter
	compileHist   metric.Float64Histogram
	hits          metric.Int64Counter
	misses        metric.Int64Counter
}

// NewMetrics creates Metrics backed by the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	compileTotal, err := meter.Int64Counter(
		"style.compile.total",
		metric.WithDescription("Total number of native style compiles"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter(
		"style.compile.errors",
		metric.WithDescription("Native style compiles that produced no handle"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	compileHist, err := meter.Float64Histogram(
		"style.compile.duration_ms",
		metric.WithDescription("Native style compile duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	hits, err := meter.Int64Counter(
		"style.registration.hits",
		metric.WithDescription("Registrations that reused an existing identifier"),
		metric.WithUnit("{registration}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"style.registration.misses",
		metric.WithDescription("Registrations that minted a new identifier"),
		metric.WithUnit("{registration}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		compileTotal:  compileTotal,
		compileErrors: compileErrors,
		compileHist:   compileHist,
		hits:          hits,
		misses:        misses,
	}, nil
}

// RecordCompile records metrics for a native compile.
func (m *metricsImpl) RecordCompile(ctx context.Context, meta StyleMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.compileTotal.Add(ctx, 1, opt)
	if err != nil {
		m.compileErrors.Add(ctx, 1, opt)
	}

	m.compileHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

// RecordRegistration records a cache hit or miss in the registry.
func (m *metricsImpl) RecordRegistration(ctx context.Context, meta StyleMeta, hit bool) {
	opt := metric.WithAttributes(append(meta.attributes(),
		attribute.Int("style.properties", meta.Properties))...)

	if hit {
		m.hits.Add(ctx, 1, opt)
		return
	}
	m.misses.Add(ctx, 1, opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NoopMetrics returns Metrics that record nothing.
func NoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) RecordCompile(ctx context.Context, meta StyleMeta, duration time.Duration, err error) {
}

func (noopMetrics) RecordRegistration(ctx context.Context, meta StyleMeta, hit bool) {}
