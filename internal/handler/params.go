package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Forfeit-15/INF2003/internal/apperr"
)

func init() {
	// 校验错误里使用 json 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// pathUserID 解析路径中的数字用户 ID
func pathUserID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid user id")
	}
	return id, nil
}

// queryInt 读取整数查询参数，缺失或非法时使用默认值
func queryInt(c *gin.Context, key string, def int) int {
	if v := queryIntPtr(c, key); v != nil {
		return *v
	}
	return def
}

// queryIntPtr 读取可选整数查询参数，非法值视为未提供
func queryIntPtr(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryFloatPtr 读取可选浮点查询参数，非法值视为未提供
func queryFloatPtr(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// bindJSON 解析请求体；空请求体按空对象处理，交给业务层校验
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperr.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperr.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return apperr.Validation("invalid request body", details...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.Validation("invalid request body", apperr.FieldError{
			Field:   typeErr.Field,
			Message: "must be a " + typeErr.Type.String(),
		})
	}
	return apperr.Validation("invalid JSON body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
