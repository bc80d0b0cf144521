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

// TagHandler tag API router handler
// TagHandler 标签 API 路由处理器
type TagHandler struct {
	*Handler
}

// NewTagHandler creates TagHandler instance
// NewTagHandler 创建 TagHandler 实例
func NewTagHandler(a *app.App) *TagHandler {
	return &TagHandler{
		Handler: NewHandler(a),
	}
}

// List lists all tags owned by the authenticated user, sorted by name
// List 列出当前用户的全部标签，按名称排序
// @Router /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	tags, err := h.App.TagService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "TagHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(tags)
}

// Get returns a single tag by id
// @Router /api/tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "TagHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(tag)
}

// Create creates a tag, returns 201 with a Location header
// Create 创建标签，返回 201 和 Location 响应头
// @Router /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	params := &dto.TagCreateRequest{}

	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(fmt.Sprintf("/api/tags/%d", tag.ID), tag)
}

// Update renames a tag
// @Router /api/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	params := &dto.TagUpdateRequest{}
	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.Update(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "TagHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(tag)
}

// Delete removes a tag and its note associations, idempotent
// Delete 删除标签及其与笔记的关联，幂等
// @Router /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.TagService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "TagHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}
