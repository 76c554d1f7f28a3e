package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/apperr"
)

// JSON 返回成功响应
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message 返回 {"message": msg}
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Fail 返回错误响应 {"error": ...}；非业务错误按 500 处理并记录日志
func Fail(c *gin.Context, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}

	if ae.HTTPStatus >= http.StatusInternalServerError {
		Logger(c).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(ae.HTTPStatus, ae)
}
