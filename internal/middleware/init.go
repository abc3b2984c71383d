package middleware

import (
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"addressbook/pkg/logger"
)

// Init 初始化中间件依赖，meter 为 nil 时保留 noop 指标
func Init(meter metric.Meter) error {
	if meter != nil {
		if err := InitMetrics(meter); err != nil {
			logger.Logger.Error("Failed to initialize http metrics", zap.Error(err))
			return err
		}
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
