package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/utils"
)

// Logger 请求日志中间件，同时为请求绑定带 request_id 的日志
func Logger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		reqLogger := base.With(zap.String("request_id", RequestIDFrom(c)))
		utils.SetLogger(c, reqLogger)

		// 处理请求
		c.Next()

		// 记录日志
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("bytes", c.Writer.Size()),
		}

		switch {
		case status >= 500:
			reqLogger.Error("http request", fields...)
		case status >= 400:
			reqLogger.Warn("http request", fields...)
		default:
			reqLogger.Info("http request", fields...)
		}
	}
}
