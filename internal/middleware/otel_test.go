package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOpenTelemetryMiddleware_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	require.NoError(t, Init(provider.Meter("test")))
	t.Cleanup(func() { _ = InitMetrics(noop.NewMeterProvider().Meter("")) })

	h := server.New()
	h.Use(OpenTelemetryMiddleware())
	h.GET("/persons", ok)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, ut.PerformRequest(h.Engine, http.MethodGet, "/persons", nil).Result().StatusCode())
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var total int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "http.server.requests.total" {
			continue
		}
		sum, isSum := m.Data.(metricdata.Sum[int64])
		require.True(t, isSum)
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
	}
	require.Equal(t, int64(3), total)
}

func TestToValidUTF8(t *testing.T) {
	require.Equal(t, "ab", toValidUTF8("a\xffb"))
}
