package ident

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// otelMetrics holds the OpenTelemetry instruments for identifier
// generation. They are created once when a meter is configured and reused
// for every call.
type otelMetrics struct {
	// generatedCounter increments for each identifier produced
	generatedCounter metric.Int64Counter

	// collisionCounter increments when a produced identifier was already
	// in the registry
	collisionCounter metric.Int64Counter

	// lengthHistogram records the rune length of produced identifiers
	lengthHistogram metric.Int64Histogram
}

// initOTelMetrics creates the metric instruments from the given meter.
// Returns nil when no meter is configured.
func initOTelMetrics(meter metric.Meter) (*otelMetrics, error) {
	if meter == nil {
		return nil, nil
	}

	metrics := &otelMetrics{}
	var err error

	metrics.generatedCounter, err = meter.Int64Counter(
		"autoid.generated",
		metric.WithDescription("Number of identifiers generated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create generated counter: %w", err)
	}

	metrics.collisionCounter, err = meter.Int64Counter(
		"autoid.collisions",
		metric.WithDescription("Number of identifier collisions detected"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create collision counter: %w", err)
	}

	metrics.lengthHistogram, err = meter.Int64Histogram(
		"autoid.length",
		metric.WithDescription("Rune length of generated identifiers"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create length histogram: %w", err)
	}

	return metrics, nil
}

// record captures one generation event. Skips silently when OTel is not
// configured so instrumentation never affects the generation flow.
func (m *otelMetrics) record(ctx context.Context, role, id string, collision bool) {
	if m == nil {
		return
	}

	opts := metric.WithAttributes(attribute.String("role", role))

	if m.generatedCounter != nil {
		m.generatedCounter.Add(ctx, 1, opts)
	}
	if m.lengthHistogram != nil {
		m.lengthHistogram.Record(ctx, int64(len([]rune(id))), opts)
	}
	if collision && m.collisionCounter != nil {
		m.collisionCounter.Add(ctx, 1, opts)
	}
}
