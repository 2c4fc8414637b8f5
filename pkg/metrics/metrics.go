// Package metrics holds the OpenTelemetry instruments of the service and the
// wiring that exports them through the Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Setup creates a meter provider whose readings are exported to the given
// Prometheus registerer and installs it as the global provider. Instruments
// created from otel.Meter before Setup are delegated to it.
func Setup(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Orders counts borrow and return orders and measures how long they take,
// broken down by order type and outcome.
type Orders struct {
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOrders creates the order instruments on the given meter.
func NewOrders(meter metric.Meter) (*Orders, error) {
	count, err := meter.Int64Counter("library.orders",
		metric.WithDescription("Number of borrow and return orders by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create orders counter: %w", err)
	}

	duration, err := meter.Float64Histogram("library.order.duration",
		metric.WithDescription("Time spent validating and recording an order"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create order duration histogram: %w", err)
	}

	return &Orders{count: count, duration: duration}, nil
}

// Record adds one order with the given type and outcome.
func (o *Orders) Record(ctx context.Context, orderType, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("type", orderType),
		attribute.String("outcome", outcome),
	)
	o.count.Add(ctx, 1, attrs)
	o.duration.Record(ctx, elapsed.Seconds(), attrs)
}
