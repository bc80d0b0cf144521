package api_router

import (
	"fmt"

	"github.com/noteful-labs/noteful-service/internal/app"
	"github.com/noteful-labs/noteful-service/internal/dto"
	pkgapp "github.com/noteful-labs/noteful-service/pkg/app"
	"github.com/noteful-labs/noteful-service/pkg/code"
	apperrors "github.com/noteful-labs/noteful-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Register user registration
// @Summary User registration
// @Description Handle user signup HTTP request, validate fields and call UserService. Registration may be disabled in server settings.
// @Description 处理用户注册 HTTP 请求，验证字段并调用 UserService。注册功能可能在服务器设置中被禁用。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.UserCreateRequest true "Signup Parameters"
// @Success 201 {object} dto.UserDTO "Created"
// @Failure 400 {object} apperrors.AppError "The username already exists"
// @Failure 422 {object} apperrors.AppError "Field Validation Failed"
// @Router /api/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserCreateRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Register.BindAndValid errs", zap.Error(errs))
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	// Get request context (including Trace ID)
	// 获取请求上下文（包含 Trace ID）
	ctx := c.Request.Context()

	// Call UserService to perform registration
	// 调用 UserService 执行注册
	userDTO, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Register", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(fmt.Sprintf("/api/users/%d", userDTO.ID), userDTO)
}

// Login user login
// @Summary User login
// @Description Handle user login HTTP request, validate credentials and return auth token.
// @Description 处理用户登录 HTTP 请求，验证凭据并返回认证 Token。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.UserLoginRequest true "Login Parameters"
// @Success 200 {object} dto.AuthTokenDTO "Success"
// @Failure 400 {object} apperrors.AppError "No credentials provided"
// @Failure 401 {object} apperrors.AppError "Invalid credentials"
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	// Parameter binding and validation
	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToErrorResponse(code.ErrorNoCredentials)
		return
	}

	ctx := c.Request.Context()

	// Call UserService to perform login
	// 调用 UserService 执行登录
	tokenDTO, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(tokenDTO)
}

// Refresh issues a fresh auth token for the authenticated user
// @Summary Refresh auth token
// @Description 为已认证用户签发新的认证 Token，旧 Token 在过期前依然有效。
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AuthTokenDTO "Success"
// @Failure 401 {object} apperrors.AppError "Invalid JWT"
// @Router /api/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	user := pkgapp.GetUser(c)
	if user == nil {
		response.ToErrorResponse(code.ErrorInvalidJWT)
		return
	}

	ctx := c.Request.Context()

	tokenDTO, err := h.App.UserService.Refresh(ctx, user)
	if err != nil {
		h.logError(ctx, "UserHandler.Refresh", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(tokenDTO)
}
