package api_router

import (
	"fmt"

	"github.com/noteful-labs/noteful-service/internal/app"
	"github.com/noteful-labs/noteful-service/internal/dto"
	pkgapp "github.com/noteful-labs/noteful-service/pkg/app"
	"github.com/noteful-labs/noteful-service/pkg/code"
	apperrors "github.com/noteful-labs/noteful-service/pkg/errors"
	"github.com/noteful-labs/noteful-service/pkg/util"

	"github.com/gin-gonic/gin"
)

// FolderHandler folder API router handler
// FolderHandler 文件夹 API 路由处理器
type FolderHandler struct {
	*Handler
}

// NewFolderHandler creates FolderHandler instance
// NewFolderHandler 创建 FolderHandler 实例
func NewFolderHandler(a *app.App) *FolderHandler {
	return &FolderHandler{
		Handler: NewHandler(a),
	}
}

// List lists all folders owned by the authenticated user, sorted by name
// List 列出当前用户的全部文件夹，按名称排序
// @Router /api/folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	folders, err := h.App.FolderService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "FolderHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(folders)
}

// Get returns a single folder by id
// @Router /api/folders/{id} [get]
func (h *FolderHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "FolderHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(folder)
}

// Create creates a folder, returns 201 with a Location header
// Create 创建文件夹，返回 201 和 Location 响应头
// @Router /api/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	params := &dto.FolderCreateRequest{}

	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(fmt.Sprintf("/api/folders/%d", folder.ID), folder)
}

// Update renames a folder
// @Router /api/folders/{id} [put]
func (h *FolderHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	params := &dto.FolderUpdateRequest{}
	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	folder, err := h.App.FolderService.Update(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "FolderHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(folder)
}

// Delete removes a folder and detaches its notes, idempotent
// Delete 删除文件夹并解除笔记关联，幂等
// @Router /api/folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.FolderService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "FolderHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}
