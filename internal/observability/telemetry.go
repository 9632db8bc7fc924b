package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Config selects where gallery traces and OTLP metrics are exported.
// Nothing is exported unless Enabled is set.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	StoreDriver    string

	Enabled      bool
	OTLPEndpoint string
	Insecure     bool
	// SampleRatio is the fraction of new traces recorded; child spans follow
	// their parent's decision
	SampleRatio float64
}

const (
	exportTimeout  = 10 * time.Second
	batchTimeout   = 5 * time.Second
	metricInterval = 30 * time.Second
)

// Telemetry owns the OpenTelemetry providers installed by Initialize
type Telemetry struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

func (c Config) validate() error {
	if c.OTLPEndpoint == "" {
		return errors.New("OTLP endpoint is required when telemetry is enabled")
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be within [0, 1], got %v", c.SampleRatio)
	}
	return nil
}

func (c Config) sampler() sdktrace.Sampler {
	switch {
	case c.SampleRatio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case c.SampleRatio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
	}
}

func (c Config) resource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(c.ServiceName),
			semconv.ServiceVersion(c.ServiceVersion),
			attribute.String("deployment.environment", c.Environment),
			attribute.String("gallery.store.driver", c.StoreDriver),
		),
		resource.WithHost(),
	)
}

// Initialize installs the trace and meter providers and the W3C propagators.
// A provider whose exporter cannot be built is skipped with a warning, so the
// server still starts without a collector.
func Initialize(ctx context.Context, cfg Config) (*Telemetry, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		Info("Telemetry disabled (set OTEL_ENABLED=true to enable)")
		return &Telemetry{}, nil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	res, err := cfg.resource(ctx)
	if err != nil {
		return nil, fmt.Errorf("build telemetry resource: %w", err)
	}

	t := &Telemetry{}

	traceOpts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithTimeout(exportTimeout),
	}
	if cfg.Insecure {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
	}
	if exporter, err := otlptracegrpc.New(ctx, traceOpts...); err != nil {
		Warnf("Tracing disabled, OTLP trace exporter failed: %v", err)
	} else {
		t.tracer = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(batchTimeout)),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(cfg.sampler()),
		)
		otel.SetTracerProvider(t.tracer)
	}

	metricOpts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithTimeout(exportTimeout),
	}
	if cfg.Insecure {
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
	}
	if exporter, err := otlpmetricgrpc.New(ctx, metricOpts...); err != nil {
		Warnf("OTLP metrics disabled, exporter failed: %v", err)
	} else {
		t.meter = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricInterval))),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(t.meter)
	}

	WithFields(map[string]interface{}{
		"endpoint":     cfg.OTLPEndpoint,
		"sample_ratio": cfg.SampleRatio,
		"tracing":      t.tracer != nil,
		"metrics":      t.meter != nil,
	}).Info("Telemetry initialized")

	return t, nil
}

// Enabled reports whether any provider was installed
func (t *Telemetry) Enabled() bool {
	return t.tracer != nil || t.meter != nil
}

// Shutdown flushes and stops the installed providers
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}

	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter: %w", err))
		}
	}
	return errors.Join(errs...)
}
