package api_router

import (
	"github.com/securenotes/secure-notes-service/internal/app"
	"github.com/securenotes/secure-notes-service/internal/dto"
	pkgapp "github.com/securenotes/secure-notes-service/pkg/app"
	"github.com/securenotes/secure-notes-service/pkg/code"
	"github.com/securenotes/secure-notes-service/pkg/convert"
	apperrors "github.com/securenotes/secure-notes-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// noteID 解析路径参数中的笔记 ID
// 非整数 ID 属于参数校验失败
func (h *NoteHandler) noteID(c *gin.Context) (int64, bool) {
	id, err := convert.StrTo(c.Param("id")).Int64()
	if err != nil || id <= 0 {
		pkgapp.NewResponse(c).ToError(code.ErrorInvalidParams.WithDetails("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// List 获取笔记列表，默认只含活跃笔记
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid err", zap.Error(errs))
		response.ToError(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	skip := pkgapp.GetSkip(c)
	limit := pkgapp.GetLimitWithConfig(c, pkgapp.PaginationConfig{
		DefaultLimit: h.App.Config().App.DefaultPageSize,
		MaxLimit:     h.App.Config().App.MaxPageSize,
	})

	notes, err := h.App.NoteService.List(c.Request.Context(), params, skip, limit)
	if err != nil {
		h.App.Logger().Error("NoteHandler.List err", zap.Error(err))
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToData(dto.NewNoteListResponse(notes))
}

// Create 创建笔记
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToError(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	note, err := h.App.NoteService.Create(c.Request.Context(), params)
	if err != nil {
		h.App.Logger().Error("NoteHandler.Create err", zap.Error(err))
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToData(dto.NewNoteResponse(note))
}

// Get 获取单条笔记，读取会刷新访问时间
func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.App.NoteService.Get(c.Request.Context(), id)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToData(dto.NewNoteResponse(note))
}

// Update 按补丁语义更新笔记，未出现的字段保持不变
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, ok := h.noteID(c)
	if !ok {
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToError(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	note, err := h.App.NoteService.Update(c.Request.Context(), id, params.ToPatch())
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToData(dto.NewNoteResponse(note))
}

// Delete 软删除笔记
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if _, err := h.App.NoteService.SoftDelete(c.Request.Context(), id); err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToMessage("Deleted successfully")
}

// Purge 物理清除已软删除的笔记
func (h *NoteHandler) Purge(c *gin.Context) {
	id, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.App.NoteService.Purge(c.Request.Context(), id); err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	pkgapp.NewResponse(c).ToMessage("Purged successfully")
}
