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

// NoteHandler note API router handler
// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates NoteHandler instance
// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List lists notes owned by the authenticated user, newest first
// List 列出当前用户的笔记，按更新时间倒序
// Supports searchTerm / folderId / tagId query filters
// 支持 searchTerm / folderId / tagId 查询过滤
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	params := &dto.NoteListRequest{}

	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(notes)
}

// Get returns a single note with its tags
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(note)
}

// Create creates a note, returns 201 with a Location header
// Create 创建笔记，返回 201 和 Location 响应头
// 引用的文件夹和标签必须属于当前用户
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)
	params := &dto.NoteCreateRequest{}

	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(fmt.Sprintf("/api/notes/%d", note.ID), note)
}

// Update partially updates a note, absent fields stay unchanged
// Update 部分更新笔记，未携带的字段保持原值
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, _ := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToErrorResponse(code.ErrorInvalidParams)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService.Update(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(note)
}

// Delete removes a note and its tag associations, idempotent
// Delete 删除笔记及其标签关联，幂等
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uid := pkgapp.GetUID(c)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		response.ToErrorResponse(code.ErrorInvalidID)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContent()
}
