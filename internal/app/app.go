// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"fmt"
	"time"

	"github.com/noteful-labs/noteful-service/internal/dao"
	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/service"
	pkgapp "github.com/noteful-labs/noteful-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo    domain.UserRepository
	FolderRepo  domain.FolderRepository
	TagRepo     domain.TagRepository
	NoteRepo    domain.NoteRepository
	NoteTagRepo domain.NoteTagRepository

	// Service 层
	UserService    service.UserService
	FolderService  service.FolderService
	TagService     service.TagService
	NoteService    service.NoteService
	CleanupService service.CleanupService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// StartTime 服务启动时间，供健康检查上报 uptime
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, logger)

	// 初始化 TokenManager
	tokenConfig := pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "noteful-service",
		Expiry:    cfg.GetTokenExpiry(),
	}
	a.TokenManager = pkgapp.NewTokenManager(tokenConfig)

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.FolderRepo = dao.NewFolderRepository(a.Dao)
	a.TagRepo = dao.NewTagRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.NoteTagRepo = dao.NewNoteTagRepository(a.Dao)

	// 初始化 Service 层（依赖注入）
	a.CleanupService = service.NewCleanupService(a.NoteRepo, a.NoteTagRepo, logger)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, service.UserServiceConfig{
		RegisterIsEnable: cfg.User.RegisterIsEnable,
		TokenExpiry:      cfg.Security.TokenExpiry,
	})
	a.FolderService = service.NewFolderService(a.FolderRepo, a.CleanupService)
	a.TagService = service.NewTagService(a.TagRepo, a.CleanupService)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.FolderRepo, a.TagRepo, a.NoteTagRepo)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// GetAuthTokenKey 获取 Token 密钥
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// GetDatabaseConfig 构造 DAO 层数据库配置
func (a *AppConfig) GetDatabaseConfig() dao.DatabaseConfig {
	return dao.DatabaseConfig{
		Type:            a.Database.Type,
		Path:            a.Database.Path,
		UserName:        a.Database.UserName,
		Password:        a.Database.Password,
		Host:            a.Database.Host,
		Name:            a.Database.Name,
		TablePrefix:     a.Database.TablePrefix,
		AutoMigrate:     a.Database.AutoMigrate,
		Charset:         a.Database.Charset,
		ParseTime:       a.Database.ParseTime,
		MaxIdleConns:    a.Database.MaxIdleConns,
		MaxOpenConns:    a.Database.MaxOpenConns,
		ConnMaxLifetime: a.Database.GetConnMaxLifetime(),
		ConnMaxIdleTime: a.Database.GetConnMaxIdleTime(),
		RunMode:         a.Server.RunMode,
	}
}
