package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// OTelMetrics 通讯录命令相关指标
type OTelMetrics struct {
	CommandExecutionsTotal   metric.Int64Counter
	CommandDuration          metric.Float64Histogram
	PrivacyFieldChangesTotal metric.Int64Counter
	PersonsTotal             metric.Int64UpDownCounter
}

var (
	// 全局指标实例
	metrics     *OTelMetrics
	metricsOnce sync.Once
	// meter 用于创建指标，SetMeterProvider 之前创建的指标会自动委托给之后设置的 provider
	meter = otel.Meter("addressbook")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error
	metricsOnce.Do(func() {
		metrics, err = newOTelMetrics(meter)
	})
	return err
}

func newOTelMetrics(m metric.Meter) (*OTelMetrics, error) {
	var err error
	om := &OTelMetrics{}

	om.CommandExecutionsTotal, err = m.Int64Counter(
		"addressbook.command.executions",
		metric.WithDescription("Total number of executed commands"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, err
	}

	om.CommandDuration, err = m.Float64Histogram(
		"addressbook.command.duration",
		metric.WithDescription("Time spent executing a command in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	om.PrivacyFieldChangesTotal, err = m.Int64Counter(
		"addressbook.privacy.field_changes",
		metric.WithDescription("Number of field privacy flags requested by privacy edits"),
		metric.WithUnit("{field}"),
	)
	if err != nil {
		return nil, err
	}

	om.PersonsTotal, err = m.Int64UpDownCounter(
		"addressbook.persons",
		metric.WithDescription("Number of persons stored in the address book"),
		metric.WithUnit("{person}"),
	)
	if err != nil {
		return nil, err
	}

	return om, nil
}

// GetMetrics 获取全局指标实例，初始化失败时退化为 noop 指标
func GetMetrics() *OTelMetrics {
	if err := InitMetrics(); err != nil || metrics == nil {
		om, _ := newOTelMetrics(noop.NewMeterProvider().Meter("addressbook"))
		return om
	}
	return metrics
}

// RecordCommand 记录一次命令执行，status 为 success / failed
func (m *OTelMetrics) RecordCommand(ctx context.Context, word, status string, duration float64) {
	attrs := metric.WithAttributes(
		attribute.String("command", word),
		attribute.String("status", status),
	)
	m.CommandExecutionsTotal.Add(ctx, 1, attrs)
	m.CommandDuration.Record(ctx, duration, attrs)
}

// RecordPrivacyChange 记录某个字段被请求设为 private / public
func (m *OTelMetrics) RecordPrivacyChange(ctx context.Context, field string, private bool) {
	m.PrivacyFieldChangesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.Bool("private", private),
	))
}

func (m *OTelMetrics) AddPersons(ctx context.Context, delta int64) {
	m.PersonsTotal.Add(ctx, delta)
}
