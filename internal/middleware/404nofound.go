package middleware

import (
	"github.com/noteful-labs/noteful-service/pkg/app"
	"github.com/noteful-labs/noteful-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToErrorResponse(code.ErrorNotFound)
		c.Abort()
	}
}
