package middleware

import (
	"github.com/noteful-labs/noteful-service/global"

	"github.com/gin-gonic/gin"
)

func AppInfo(version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", global.Name)
		c.Set("app_version", version)

		c.Next()
	}
}
