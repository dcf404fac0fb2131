// Package errors 提供统一的应用错误类型与错误响应处理
package errors

import (
	"errors"

	"github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AppError 统一应用错误结构体，携带业务码与原始错误
type AppError struct {
	// Code 业务状态码
	Code *code.Code
	// Details 错误详情（可选）
	Details []string
	// Cause 原始错误
	Cause error
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Code.Msg()
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 从 Code 对象创建 AppError
func New(c *code.Code, cause error) *AppError {
	return &AppError{Code: c, Cause: cause}
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// ErrorResponse resolves an error to the unified error body with its real
// HTTP status. Store-layer failures that carry no business code surface as
// a generic 500 with no internal detail.
// ErrorResponse 将错误解析为统一错误响应体并使用真实 HTTP 状态码。
// 未携带业务码的存储层错误以通用 500 返回，不泄露内部细节。
func ErrorResponse(c *gin.Context, err error) {
	response := app.NewResponse(c)

	var appErr *AppError
	if errors.As(err, &appErr) {
		if len(appErr.Details) > 0 {
			response.ToError(appErr.Code.WithDetails(appErr.Details...))
		} else {
			response.ToError(appErr.Code)
		}
		return
	}

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		response.ToError(codeErr)
		return
	}

	response.ToError(code.ErrorServerInternal)
}

// IsCode 判断错误链中是否包含指定业务码
func IsCode(err error, c *code.Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code.Code() == c.Code()
	}
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		return codeErr.Code() == c.Code()
	}
	return false
}
