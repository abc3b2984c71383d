package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"addressbook/config"
	"addressbook/internal/handler"
	"addressbook/internal/middleware"
	"addressbook/internal/router"
	"addressbook/internal/service"
	"addressbook/pkg/logger"
	"addressbook/pkg/metrics"
	pkgotel "addressbook/pkg/otel"
	"addressbook/pkg/snowflake"
	"addressbook/storage"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 限流依赖 redis，连接失败时关闭限流继续提供服务
	if err := storage.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize storage, rate limiting disabled", zap.Error(err))
		config.Cfg.RateLimitEnabled = false
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	var opts []hertzconfig.Option
	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)
	opts = append(opts, server.WithHostPorts(addr))

	var tracerMiddleware app.HandlerFunc
	if config.Cfg.OTelEnabled {
		shutdown, err := pkgotel.InitOpenTelemetry(ctx, pkgotel.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.OTelEndpoint,
			SampleRatio:    config.Cfg.OTelSampleRatio,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()

			var tracerOpt hertzconfig.Option
			tracerOpt, tracerMiddleware = middleware.NewServerTracerConfig()
			opts = append(opts, tracerOpt)
		}
	}

	if err := metrics.InitMetrics(); err != nil {
		logger.Logger.Warn("Failed to initialize command metrics", zap.Error(err))
	}

	// 初始化中间件
	if err := middleware.Init(otel.Meter("addressbook/http")); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
		zap.Bool("rate_limit", config.Cfg.RateLimitEnabled),
		zap.Bool("otel", config.Cfg.OTelEnabled),
	)

	h := server.New(opts...)

	// tracing 中间件需要在其它中间件之前注册
	if tracerMiddleware != nil {
		h.Use(tracerMiddleware)
	}
	router.Register(h, handler.NewPersonHandler(service.AddressBook()))

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
