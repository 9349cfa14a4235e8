package observe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: Config{
				ServiceName: "styleops",
				Version:     "1.0.0",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "stdout"},
				Logging:     LoggingConfig{Enabled: true, Level: "info"},
			},
		},
		{
			name:    "missing service name",
			cfg:     Config{},
			wantErr: ErrMissingServiceName,
		},
		{
			name:    "unknown tracing exporter",
			cfg:     Config{ServiceName: "s", Tracing: TracingConfig{Enabled: true, Exporter: "zipkin"}},
			wantErr: ErrInvalidTracingExporter,
		},
		{
			name:    "sample pct out of range",
			cfg:     Config{ServiceName: "s", Tracing: TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.5}},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "unknown metrics exporter",
			cfg:     Config{ServiceName: "s", Metrics: MetricsConfig{Enabled: true, Exporter: "statsd"}},
			wantErr: ErrInvalidMetricsExporter,
		},
		{
			name:    "unknown log level",
			cfg:     Config{ServiceName: "s", Logging: LoggingConfig{Enabled: true, Level: "trace"}},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "disabled subsystems are not validated",
			cfg: Config{
				ServiceName: "s",
				Tracing:     TracingConfig{Exporter: "zipkin"},
				Metrics:     MetricsConfig{Exporter: "statsd"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewObserver_Noops(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "styleops-test"})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Fatal("expected non-nil tracer, meter and logger")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestNewObserver_Enabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "styleops-test",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 0.5},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     LoggingConfig{Enabled: true, Level: "error"},
	})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := obs.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestNewObserver_InvalidConfig(t *testing.T) {
	if _, err := NewObserver(context.Background(), Config{}); !errors.Is(err, ErrMissingServiceName) {
		t.Fatalf("expected ErrMissingServiceName, got %v", err)
	}
}

func TestNoopContracts(t *testing.T) {
	ctx := context.Background()
	meta := StyleMeta{Prefix: "noop"}

	if NopLogger().WithStyle(meta) == nil {
		t.Fatal("WithStyle should return non-nil logger")
	}
	NoopMetrics().RecordCompile(ctx, meta, time.Millisecond, nil)
	NoopMetrics().RecordRegistration(ctx, meta, true)

	tr := NoopTracer()
	_, span := tr.StartSpan(ctx, meta)
	tr.EndSpan(span, nil)
}
