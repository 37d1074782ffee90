package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInitMetrics_RecordsThroughInstalledProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	metrics, err := InitMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	RecordRequestMetric(ctx, metrics, "GET", "/api/poli", 200, 25*time.Millisecond)
	RecordCacheHit(ctx, metrics, "embedding")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	names := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["http.server.request.count"])
	assert.True(t, names["http.server.request.duration"])
	assert.True(t, names["cache.hit.count"])
}
