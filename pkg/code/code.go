package code

import (
	"fmt"
)

// Code 应用错误码
// Carries the app-level code, the HTTP status to respond with, the
// localized message and an optional field location.
// 携带应用错误码、对应的 HTTP 状态码、多语言消息和可选的字段位置。
type Code struct {
	// 错误码
	code int
	// HTTP 状态码
	statusCode int
	// 错误消息
	Lang lang
	// 消息格式化参数
	args []any
	// 字段位置（如 "username" / "password"）
	location string
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError 注册一个错误码
// Registering the same code twice is a programming error and panics at init.
// 重复注册同一错误码属于编程错误，init 阶段直接 panic。
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()

	return &Code{code: code, statusCode: statusCode, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	// 创建一个新的副本,而不是修改原对象
	c := &Code{
		code:       e.code,
		statusCode: e.statusCode,
		Lang:       e.Lang,
		location:   e.location,
	}
	if len(e.args) > 0 {
		c.args = append([]any{}, e.args...)
	}
	if e.haveDetails {
		c.haveDetails = true
		c.details = append([]string{}, e.details...)
	}
	return c
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) StatusCode() int {
	return e.statusCode
}

// Msg 返回格式化后的错误消息
func (e *Code) Msg() string {
	msg := e.Lang.GetMessage()
	if len(e.args) > 0 {
		return fmt.Sprintf(msg, e.args...)
	}
	return msg
}

func (e *Code) Location() string {
	return e.location
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// WithArgs 返回带消息格式化参数的副本
func (e *Code) WithArgs(args ...any) *Code {
	c := e.Clone()
	c.args = args
	return c
}

// WithLocation 返回带字段位置的副本
func (e *Code) WithLocation(location string) *Code {
	c := e.Clone()
	c.location = location
	return c
}

// WithDetails 返回带详情的副本，详情只进日志，不返回给客户端
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// Is 支持 errors.Is 按错误码比较
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return t.code == e.code
}
