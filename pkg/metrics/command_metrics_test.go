package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordCommand_ExportsCounterAndHistogram(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	om, err := newOTelMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	om.RecordCommand(ctx, "toggleprivacy", "success", 0.01)
	om.RecordCommand(ctx, "toggleprivacy", "failed", 0.02)
	om.RecordPrivacyChange(ctx, "phone", true)
	om.AddPersons(ctx, 3)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := make(map[string]metricdata.Metrics)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	executions, ok := byName["addressbook.command.executions"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, executions.DataPoints, 2)

	persons, ok := byName["addressbook.persons"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Equal(t, int64(3), persons.DataPoints[0].Value)

	_, ok = byName["addressbook.command.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
}

func TestGetMetrics_NeverNil(t *testing.T) {
	om := GetMetrics()
	require.NotNil(t, om)
	om.RecordCommand(context.Background(), "toggleprivacy", "success", 0)
}
