// Package apperr 定义业务错误类型，handler 层据此映射 HTTP 状态码。
package apperr

import (
	"errors"
	"net/http"
)

// AppError 业务错误
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"` // 仅用于服务端日志，不返回给客户端
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

// Validation 400
func Validation(msg string, details ...FieldError) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, HTTPStatus: http.StatusBadRequest, Details: details}
}

// Unauthorized 401
func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// Forbidden 403
func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, HTTPStatus: http.StatusForbidden}
}

// NotFound 404，msg 为完整提示，例如 "Title not found"
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, HTTPStatus: http.StatusNotFound}
}

// Conflict 409
func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, HTTPStatus: http.StatusConflict}
}

// TooManyRequests 429
func TooManyRequests(msg string) *AppError {
	return &AppError{Code: "RATE_LIMITED", Message: msg, HTTPStatus: http.StatusTooManyRequests}
}

// Internal 500，cause 只写日志
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As 从错误链中取出 *AppError，没有则返回 nil
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
