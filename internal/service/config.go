// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User UserServiceConfig // User related config // 用户相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool   // Whether registration is enabled // 注册是否启用
	TokenExpiry      string // Token expiry (e.g., 7d, 24h) // Token 过期时间
}

// 注册字段长度限制，与 bcrypt 的 72 字节输入上限保持一致
const (
	UsernameMinLength = 1
	PasswordMinLength = 8
	PasswordMaxLength = 72
)
