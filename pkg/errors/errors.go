package errors

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noteful-labs/noteful-service/pkg/code"
)

// AppError 统一应用错误结构体
// The JSON shape is what clients see: message plus an optional field
// location. Everything else is kept for logging only.
type AppError struct {
	// Message 错误消息
	Message string `json:"message"`
	// Location 出错字段位置（可选）
	Location string `json:"location,omitempty"`
	// StatusCode HTTP 状态码（不序列化）
	StatusCode int `json:"-"`
	// Code 错误码（不序列化）
	Code int `json:"-"`
	// Details 错误详情（不序列化，仅日志）
	Details []string `json:"-"`
	// TraceID 请求追踪ID（不序列化）
	TraceID string `json:"-"`
	// Cause 原始错误（不序列化）
	Cause error `json:"-"`
	// Timestamp 错误发生时间（不序列化）
	Timestamp time.Time `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Message:    c.Msg(),
		Location:   c.Location(),
		StatusCode: c.StatusCode(),
		Code:       c.Code(),
		Details:    c.Details(),
		Cause:      cause,
		Timestamp:  time.Now(),
	}
}

// WithTraceID 设置 TraceID 并返回自身（链式调用）
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// ErrorResponse 统一错误响应处理
// 将错误映射为对应的 HTTP 状态码和 {message, location} 响应体，
// 未识别的错误一律按 500 处理。
func ErrorResponse(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	var appErr *AppError
	if errors.As(err, &appErr) {
		appErr.TraceID = traceID
		c.JSON(appErr.StatusCode, appErr)
		return
	}

	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		c.JSON(codeErr.StatusCode(), NewAppError(codeErr, nil).WithTraceID(traceID))
		return
	}

	c.JSON(http.StatusInternalServerError, &AppError{
		Message:    "Internal Server Error",
		StatusCode: http.StatusInternalServerError,
		TraceID:    traceID,
		Cause:      err,
		Timestamp:  time.Now(),
	})
}
