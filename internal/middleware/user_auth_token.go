package middleware

import (
	"strings"

	"github.com/noteful-labs/noteful-service/pkg/app"
	"github.com/noteful-labs/noteful-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthTokenWithConfig 用户 Token 认证中间件（使用注入的密钥）
// 只接受 "Authorization: Bearer <jwt>"，三种失败各有独立的 401 消息。
func UserAuthTokenWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		header := c.GetHeader("Authorization")
		if header == "" {
			response.ToErrorResponse(code.ErrorNoAuthHeader)
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.ToErrorResponse(code.ErrorNoBearerToken)
			c.Abort()
			return
		}
		token := header[len(prefix):]
		if token == "" {
			response.ToErrorResponse(code.ErrorNoBearerToken)
			c.Abort()
			return
		}

		user, err := app.ParseTokenWithKey(token, secretKey)
		if err != nil {
			response.ToErrorResponse(code.ErrorInvalidJWT)
			c.Abort()
			return
		}
		c.Set("user_token", user)

		c.Next()
	}
}
