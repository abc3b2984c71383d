package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware 透传或生成 X-Request-ID，并写回响应头
func RequestIDMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Response.Header.Set(RequestIDHeader, requestID)

		c.Next(ctx)
	}
}

// GetRequestID 获取当前请求的 ID
func GetRequestID(c *app.RequestContext) string {
	return c.GetString(requestIDKey)
}
