// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/noteful-labs/noteful-service/pkg/timex"

// UserCreateRequest 用户注册请求参数
// Fields are typed any so the service can tell a missing field apart
// from a wrong-typed one and report each with its own message.
// 字段用 any 承接，便于区分缺失字段和类型错误并逐一报错。
type UserCreateRequest struct {
	Fullname any `json:"fullname"`
	Username any `json:"username"`
	Password any `json:"password"`
}

// UserLoginRequest 用户登录请求参数
type UserLoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserDTO 用户数据传输对象
type UserDTO struct {
	ID        int64      `json:"id"`
	Fullname  string     `json:"fullname"`
	Username  string     `json:"username"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// AuthTokenDTO 登录与刷新接口的响应
type AuthTokenDTO struct {
	AuthToken string `json:"authToken"`
}
