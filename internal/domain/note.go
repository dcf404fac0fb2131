// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"time"
)

// NoteState 笔记生命周期状态，由 DeletedAt 推导，没有独立的状态字段
type NoteState string

const (
	// NoteStateActive 活跃状态（deleted_at 为空）
	NoteStateActive NoteState = "active"
	// NoteStateSoftDeleted 软删除状态（deleted_at 非空），只能被清除，不能恢复
	NoteStateSoftDeleted NoteState = "soft_deleted"
)

// Note 笔记领域模型
type Note struct {
	ID             int64
	Title          string
	Tags           string
	CreatedBy      string
	CreatedAt      time.Time
	LastAccessedAt time.Time
	DeletedAt      *time.Time
}

// State 返回当前生命周期状态
func (n *Note) State() NoteState {
	if n.IsDeleted() {
		return NoteStateSoftDeleted
	}
	return NoteStateActive
}

// IsDeleted 判断笔记是否已软删除
func (n *Note) IsDeleted() bool {
	return n.DeletedAt != nil
}

// NotePatch is an explicit partial-update value: only non-nil fields are
// applied, merged field by field.
// NotePatch 显式的部分更新对象：仅应用非 nil 字段，逐字段合并。
type NotePatch struct {
	Title     *string
	Tags      *string
	CreatedBy *string
}

// Apply 将补丁逐字段合并到笔记上
func (p *NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.CreatedBy != nil {
		n.CreatedBy = *p.CreatedBy
	}
}

// ListFilter 列表查询条件
type ListFilter struct {
	Skip  int
	Limit int
	// IncludeDeleted 为 true 时列表包含软删除的笔记
	IncludeDeleted bool
}

// NoteRepository 笔记存储接口
// Get 会刷新 last_accessed_at（显式的存储层契约，每次单条读取都是一次元数据写入）；
// List 不触碰单条记录的访问时间。
type NoteRepository interface {
	// Create 分配新标识并落库，created_at 与 last_accessed_at 取同一时刻
	Create(ctx context.Context, note *Note) (*Note, error)

	// Get 按 ID 获取笔记（无论删除状态），同时刷新 last_accessed_at
	Get(ctx context.Context, id int64) (*Note, error)

	// Peek 按 ID 获取笔记，不刷新访问时间（内部流程使用）
	Peek(ctx context.Context, id int64) (*Note, error)

	// List 按插入顺序返回笔记，默认仅活跃记录
	List(ctx context.Context, filter ListFilter) ([]*Note, error)

	// Update 持久化笔记的可变字段并刷新 last_accessed_at
	Update(ctx context.Context, note *Note) (*Note, error)

	// SoftDelete 将 deleted_at 置为当前时间，仅当记录尚未软删除时生效；
	// 返回生效后的笔记与是否实际发生了状态迁移
	SoftDelete(ctx context.Context, id int64) (*Note, bool, error)

	// Purge 物理删除记录，仅当记录已软删除时生效；
	// exists 为 false 表示记录不存在，purged 为 false 表示记录仍处于活跃状态
	Purge(ctx context.Context, id int64) (exists bool, purged bool, err error)

	// ListExpiredDeleted 返回软删除时间早于 before 的笔记（保留期清理用）
	ListExpiredDeleted(ctx context.Context, before time.Time) ([]*Note, error)
}
