package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"addressbook/config"
	"addressbook/pkg/breaker"
	"addressbook/pkg/errors"
	"addressbook/pkg/logger"
	"addressbook/pkg/response"
	"addressbook/storage/redis"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 时间窗口（秒）
	Window int
	// 时间窗口内最大请求数
	MaxRequests int
	// 限流键前缀
	KeyPrefix string
	// 阻塞时长（秒），为 0 时超限只拒绝当前请求
	BlockDuration int
}

// PrivacyRateLimitConfig 隐私修改接口的限流配置，窗口与次数来自环境变量
func PrivacyRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Window:        config.Cfg.PrivacyRateWindow,
		MaxRequests:   config.Cfg.PrivacyRateMax,
		KeyPrefix:     "privacy:rate",
		BlockDuration: 0,
	}
}

// RateLimiter 基于 redis zset 的滑动窗口限流器，按客户端 IP 计数
type RateLimiter struct {
	config  RateLimitConfig
	breaker *breaker.CircuitBreaker
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config: config,
		// redis 连续失败 5 次后熔断 30 秒，期间直接放行
		breaker: breaker.NewCircuitBreaker("ratelimit:"+config.KeyPrefix, 5, 30*time.Second),
	}
}

func (rl *RateLimiter) key(c *app.RequestContext) string {
	return redis.Key(rl.config.KeyPrefix, "ip:"+c.ClientIP())
}

func (rl *RateLimiter) blockKey(c *app.RequestContext) string {
	return redis.Key(rl.config.KeyPrefix, "block", "ip:"+c.ClientIP())
}

// Allow 检查是否允许请求，返回当前窗口内的请求数
func (rl *RateLimiter) Allow(ctx context.Context, c *app.RequestContext) (bool, int, error) {
	key := rl.key(c)
	now := time.Now()
	windowStart := now.Add(-time.Duration(rl.config.Window) * time.Second)

	pipe := redis.Client().Pipeline()

	// 先清掉窗口外的记录
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	// member 带上随机后缀，同一纳秒内的并发请求也分别计数
	pipe.ZAdd(ctx, key, redislib.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + ":" + uuid.NewString(),
	})
	zcardCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, time.Duration(rl.config.Window+10)*time.Second)

	err := rl.breaker.Call(func() error {
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return false, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcardCmd.Val())
	return count <= rl.config.MaxRequests, count, nil
}

func (rl *RateLimiter) Block(ctx context.Context, c *app.RequestContext) error {
	if rl.config.BlockDuration <= 0 {
		return nil
	}
	return redis.Client().Set(ctx, rl.blockKey(c), "1", time.Duration(rl.config.BlockDuration)*time.Second).Err()
}

func (rl *RateLimiter) IsBlocked(ctx context.Context, c *app.RequestContext) (bool, error) {
	if rl.config.BlockDuration <= 0 {
		return false, nil
	}
	var result int64
	err := rl.breaker.Call(func() error {
		var err error
		result, err = redis.Client().Exists(ctx, rl.blockKey(c)).Result()
		return err
	})
	return result > 0, err
}

// RateLimitMiddleware 创建限流中间件。
// redis 未初始化或不可用时放行，限流只是保护，不影响命令本身。
func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		if !redis.Ready() {
			c.Next(ctx)
			return
		}

		blocked, err := limiter.IsBlocked(ctx, c)
		if err != nil {
			logger.Logger.Warn("Failed to check block status", zap.Error(err))
			c.Next(ctx)
			return
		}
		if blocked {
			response.Error(ctx, c, errors.TooManyRequests)
			c.Abort()
			return
		}

		allowed, count, err := limiter.Allow(ctx, c)
		if err != nil {
			logger.Logger.Warn("Failed to check rate limit", zap.Error(err))
			c.Next(ctx)
			return
		}

		remaining := config.MaxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Response.Header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(config.Window)*time.Second).Unix(), 10))

		if !allowed {
			if err := limiter.Block(ctx, c); err != nil {
				logger.Logger.Warn("Failed to block client", zap.Error(err))
			}

			logger.Logger.Info("Rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", string(c.Path())),
				zap.Int("count", count),
			)
			response.Error(ctx, c, errors.TooManyRequests)
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}

// PrivacyRateLimitMiddleware 隐私修改接口限流
func PrivacyRateLimitMiddleware() app.HandlerFunc {
	return RateLimitMiddleware(PrivacyRateLimitConfig())
}
