package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID 沿用客户端传入的请求 ID，没有则生成 UUIDv7
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = newRequestID()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom 读取当前请求 ID
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
