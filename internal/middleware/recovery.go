package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

// Recovery 捕获 panic，记录堆栈并返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				utils.Logger(c).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, apperr.Internal(fmt.Errorf("panic: %v", rec)))
			}
		}()
		c.Next()
	}
}
