package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/styleops/style"
)

// CompileFunc is the signature Middleware wraps: one native compile of a
// resolved rule set.
type CompileFunc func(ctx context.Context, meta StyleMeta, rules *style.RuleSet) (any, error)

// Middleware wraps native compiles with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe CompileFunc.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given components.
// Nil components are replaced with no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NoopTracer()
	}
	if metrics == nil {
		metrics = NoopMetrics()
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps fn with a span, compile metrics and a log line.
func (m *Middleware) Wrap(fn CompileFunc) CompileFunc {
	return func(ctx context.Context, meta StyleMeta, rules *style.RuleSet) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		handle, err := fn(ctx, meta, rules)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordCompile(ctx, meta, duration, err)

		logger := m.logger.WithStyle(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
			{Key: "properties", Value: rules.Len()},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Warn(ctx, "native style compile failed", fields...)
		} else {
			logger.Debug(ctx, "native style compiled", fields...)
		}

		return handle, err
	}
}

// Metrics returns the metrics recorder used by the middleware.
func (m *Middleware) Metrics() Metrics {
	return m.metrics
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
