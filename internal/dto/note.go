// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/securenotes/secure-notes-service/internal/domain"
	"github.com/securenotes/secure-notes-service/pkg/timex"
)

// NoteCreateRequest 创建笔记的请求参数
type NoteCreateRequest struct {
	Title     string `json:"title" form:"title" binding:"required"`
	Tags      string `json:"tags" form:"tags"`
	CreatedBy string `json:"created_by" form:"created_by" binding:"required"`
}

// NoteUpdateRequest is an explicit patch: nil fields stay untouched
// NoteUpdateRequest 显式补丁对象：nil 字段保持不变
type NoteUpdateRequest struct {
	Title     *string `json:"title" form:"title"`
	Tags      *string `json:"tags" form:"tags"`
	CreatedBy *string `json:"created_by" form:"created_by"`
}

// ToPatch 转换为领域层补丁对象
func (r *NoteUpdateRequest) ToPatch() *domain.NotePatch {
	return &domain.NotePatch{
		Title:     r.Title,
		Tags:      r.Tags,
		CreatedBy: r.CreatedBy,
	}
}

// NoteListRequest 列表查询参数
type NoteListRequest struct {
	// IncludeDeleted 为 true 时包含软删除笔记（扩展视图）
	IncludeDeleted bool `json:"include_deleted" form:"include_deleted"`
}

// NoteResponse 笔记响应
// 字段名与持久化列一致（原接口的线上格式）
type NoteResponse struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Tags           string      `json:"tags"`
	CreatedBy      string      `json:"created_by"`
	CreatedAt      timex.Time  `json:"created_at"`
	LastAccessedAt timex.Time  `json:"last_accessed_at"`
	DeletedAt      *timex.Time `json:"deleted_at"`
}

// NewNoteResponse 从领域模型构造响应
func NewNoteResponse(n *domain.Note) *NoteResponse {
	if n == nil {
		return nil
	}
	resp := &NoteResponse{
		ID:             n.ID,
		Title:          n.Title,
		Tags:           n.Tags,
		CreatedBy:      n.CreatedBy,
		CreatedAt:      timex.Time(n.CreatedAt),
		LastAccessedAt: timex.Time(n.LastAccessedAt),
	}
	if n.DeletedAt != nil {
		deletedAt := timex.Time(*n.DeletedAt)
		resp.DeletedAt = &deletedAt
	}
	return resp
}

// NewNoteListResponse 从领域模型列表构造响应列表
func NewNoteListResponse(notes []*domain.Note) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNoteResponse(n))
	}
	return out
}
