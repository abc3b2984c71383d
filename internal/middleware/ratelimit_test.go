package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"addressbook/pkg/response"
	"addressbook/storage/redis"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		_ = redis.Close(context.Background())
		redis.SetClient(nil)
	})
	return mr
}

func ok(ctx context.Context, c *app.RequestContext) {
	c.String(http.StatusOK, "ok")
}

func TestRateLimitMiddleware_RejectsOverLimit(t *testing.T) {
	useMiniredis(t)

	h := server.New()
	h.POST("/limited", RateLimitMiddleware(RateLimitConfig{Window: 60, MaxRequests: 2, KeyPrefix: "test:rate"}), ok)

	for i := 0; i < 2; i++ {
		w := ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil)
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
	}

	w := ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil)
	resp := w.Result()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
	require.Equal(t, "0", string(resp.Header.Peek("X-RateLimit-Remaining")))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &body))
	require.Equal(t, "TOO_MANY_REQUESTS", body.Error.Code)
}

func TestRateLimitMiddleware_Block(t *testing.T) {
	mr := useMiniredis(t)

	cfg := RateLimitConfig{Window: 60, MaxRequests: 1, KeyPrefix: "test:block", BlockDuration: 30}
	h := server.New()
	h.POST("/limited", RateLimitMiddleware(cfg), ok)

	require.Equal(t, http.StatusOK, ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil).Result().StatusCode())
	require.Equal(t, http.StatusTooManyRequests, ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil).Result().StatusCode())

	// 超限后写入带过期时间的阻塞键
	var blockKeys int
	for _, key := range mr.Keys() {
		if mr.Type(key) == "string" {
			blockKeys++
			require.Positive(t, mr.TTL(key))
		}
	}
	require.Equal(t, 1, blockKeys)

	require.Equal(t, http.StatusTooManyRequests, ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil).Result().StatusCode())
}

func TestRateLimitMiddleware_PassThroughWithoutRedis(t *testing.T) {
	redis.SetClient(nil)

	h := server.New()
	h.POST("/limited", RateLimitMiddleware(RateLimitConfig{Window: 60, MaxRequests: 0, KeyPrefix: "test:rate"}), ok)

	w := ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
}

func TestRateLimitMiddleware_FailsOpenWhenRedisDown(t *testing.T) {
	mr := useMiniredis(t)
	mr.SetError("ERR redis is down")

	h := server.New()
	h.POST("/limited", RateLimitMiddleware(RateLimitConfig{Window: 60, MaxRequests: 0, KeyPrefix: "test:down"}), ok)

	// redis 不可用时放行，熔断后也一样
	for i := 0; i < 7; i++ {
		w := ut.PerformRequest(h.Engine, http.MethodPost, "/limited", nil)
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
	}
}
