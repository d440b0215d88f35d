package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// StreamMetrics holds OpenTelemetry metric instruments for stream consumption.
type StreamMetrics struct {
	itemsTotal    metric.Int64Counter
	errorsTotal   metric.Int64Counter
	sourcesActive metric.Int64UpDownCounter
	readDuration  metric.Float64Histogram
}

// NewStreamMetrics creates stream metric instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	itemsTotal, err := meter.Int64Counter("stream.items.total",
		metric.WithDescription("Total number of items read from streams"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.items.total counter: %w", err)
	}

	errorsTotal, err := meter.Int64Counter("stream.errors.total",
		metric.WithDescription("Total errors surfaced by stream reads"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.errors.total counter: %w", err)
	}

	sourcesActive, err := meter.Int64UpDownCounter("stream.sources.active",
		metric.WithDescription("Number of streams currently open"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.sources.active gauge: %w", err)
	}

	readDuration, err := meter.Float64Histogram("stream.read.duration",
		metric.WithDescription("Duration of individual stream reads in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.read.duration histogram: %w", err)
	}

	return &StreamMetrics{
		itemsTotal:    itemsTotal,
		errorsTotal:   errorsTotal,
		sourcesActive: sourcesActive,
		readDuration:  readDuration,
	}, nil
}

// RecordStreamOpen increments the active stream count.
func (m *StreamMetrics) RecordStreamOpen(ctx context.Context, name string) {
	m.sourcesActive.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", name),
	))
}

// RecordStreamClose decrements the active stream count.
func (m *StreamMetrics) RecordStreamClose(ctx context.Context, name string) {
	m.sourcesActive.Add(ctx, -1, metric.WithAttributes(
		attribute.String("stream", name),
	))
}

// RecordItem records one successful read.
func (m *StreamMetrics) RecordItem(ctx context.Context, name string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("stream", name),
	)
	m.itemsTotal.Add(ctx, 1, attrs)
	m.readDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordError records an error surfaced by a read.
func (m *StreamMetrics) RecordError(ctx context.Context, name, errType string) {
	m.errorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", name),
		attribute.String("type", errType),
	))
}
