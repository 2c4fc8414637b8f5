package metrics_test

import (
	"context"
	"library/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestOrders_ExportedThroughPrometheus(t *testing.T) {
	registry := prometheus.NewRegistry()
	mp, err := metrics.Setup(registry)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	orders, err := metrics.NewOrders(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	orders.Record(ctx, "BORROW", "success", 20*time.Millisecond)
	orders.Record(ctx, "BORROW", "ITEMS_UNAVAILABLE", time.Millisecond)

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.True(t, strings.Contains(body, "library_orders"), "orders counter should be exported")
	require.True(t, strings.Contains(body, `outcome="ITEMS_UNAVAILABLE"`), "outcome attribute should be exported")
	require.True(t, strings.Contains(body, "library_order_duration"), "duration histogram should be exported")
}

func TestOrders_NoopMeter(t *testing.T) {
	orders, err := metrics.NewOrders(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	require.NotPanics(t, func() {
		orders.Record(context.Background(), "RETURN", "success", time.Second)
	})
}
