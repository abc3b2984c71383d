package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8888"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"addressbook"`

	// 启动时是否载入示例联系人
	SampleDataEnabled bool `env:"SAMPLE_DATA_ENABLED" envDefault:"true"`

	// Redis 配置，只用于隐私修改的限流
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"abook"`

	// Snowflake ID 生成器配置，用于命令执行 ID
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 链路追踪与指标
	OTelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint    string  `env:"OTEL_ENDPOINT" envDefault:"localhost:4317"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"0.1"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled  bool `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	PrivacyRateWindow int  `env:"PRIVACY_RATE_WINDOW" envDefault:"60"` // 秒
	PrivacyRateMax    int  `env:"PRIVACY_RATE_MAX" envDefault:"30"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}
	Cfg = *cfg
}

// Load 从环境变量解析一份新的配置，不修改全局 Cfg
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	validateConfig(cfg)
	return cfg, nil
}

func validateConfig(cfg *Config) {
	if cfg.RateLimitEnabled && cfg.RedisAddr == "" {
		log.Printf("WARN: RATE_LIMIT_ENABLED is set but REDIS_ADDR is empty, rate limiting will fail")
	}

	if cfg.PrivacyRateMax <= 0 {
		log.Printf("WARN: PRIVACY_RATE_MAX=%d, falling back to 30", cfg.PrivacyRateMax)
		cfg.PrivacyRateMax = 30
	}

	if cfg.PrivacyRateWindow <= 0 {
		log.Printf("WARN: PRIVACY_RATE_WINDOW=%d, falling back to 60", cfg.PrivacyRateWindow)
		cfg.PrivacyRateWindow = 60
	}

	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		log.Printf("WARN: OTEL_SAMPLE_RATIO=%v out of range, falling back to 0.1", cfg.OTelSampleRatio)
		cfg.OTelSampleRatio = 0.1
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
