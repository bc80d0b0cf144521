package routers

import (
	"time"

	"github.com/noteful-labs/noteful-service/internal/app"
	"github.com/noteful-labs/noteful-service/internal/middleware"
	"github.com/noteful-labs/noteful-service/internal/routers/api_router"
	"github.com/noteful-labs/noteful-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// 登录与注册接口限流，防止凭据暴力破解
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/users",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建公共 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(appContainer.Version().Version))
		if cfg.Tracer.Enabled {
			api.Use(middleware.TraceMiddleware(cfg.Tracer.Header)) // Trace ID 中间件
		}
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		tagHandler := api_router.NewTagHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 公开接口
		api.POST("/users", userHandler.Register)
		api.POST("/login", userHandler.Login)
		api.GET("/health", healthHandler.Check)

		// 认证接口
		authed := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))

		authed.POST("/refresh", userHandler.Refresh)

		authed.GET("/folders", folderHandler.List)
		authed.POST("/folders", folderHandler.Create)
		authed.GET("/folders/:id", folderHandler.Get)
		authed.PUT("/folders/:id", folderHandler.Update)
		authed.DELETE("/folders/:id", folderHandler.Delete)

		authed.GET("/tags", tagHandler.List)
		authed.POST("/tags", tagHandler.Create)
		authed.GET("/tags/:id", tagHandler.Get)
		authed.PUT("/tags/:id", tagHandler.Update)
		authed.DELETE("/tags/:id", tagHandler.Delete)

		authed.GET("/notes", noteHandler.List)
		authed.POST("/notes", noteHandler.Create)
		authed.GET("/notes/:id", noteHandler.Get)
		authed.PUT("/notes/:id", noteHandler.Update)
		authed.DELETE("/notes/:id", noteHandler.Delete)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
