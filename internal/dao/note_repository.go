package dao

import (
	"context"
	"time"

	"github.com/securenotes/secure-notes-service/internal/domain"
	"github.com/securenotes/secure-notes-service/internal/model"
	"github.com/securenotes/secure-notes-service/pkg/timex"

	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	note := &domain.Note{
		ID:             m.ID,
		Title:          m.Title,
		Tags:           m.Tags,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt.Time(),
		LastAccessedAt: m.LastAccessedAt.Time(),
	}
	if m.DeletedAt != nil {
		deletedAt := m.DeletedAt.Time()
		note.DeletedAt = &deletedAt
	}
	return note
}

// Create 分配新标识并落库，created_at 与 last_accessed_at 取同一时刻
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := timex.Now()
	m := &model.Note{
		Title:          note.Title,
		Tags:           note.Tags,
		CreatedBy:      note.CreatedBy,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Get fetches by identity regardless of deletion state and refreshes
// last_accessed_at in the same operation: every single-record read is a
// metadata write.
// Get 按 ID 获取笔记（无论删除状态），同时刷新 last_accessed_at：
// 每次单条读取都是一次元数据写入。
func (r *noteRepository) Get(ctx context.Context, id int64) (*domain.Note, error) {
	// 条件更新先行，保证与并发 purge 竞争时结果确定：
	// 要么在 purge 之前完成刷新并读到记录，要么整体表现为 NotFound
	tx := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", id).
		UpdateColumn("last_accessed_at", timex.Now())
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Peek(ctx, id)
}

// Peek 按 ID 获取笔记，不刷新访问时间
func (r *noteRepository) Peek(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	if err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 按插入顺序返回笔记，默认仅活跃记录；批量读取不刷新访问时间
func (r *noteRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Note, error) {
	var ms []*model.Note

	q := r.dao.db.WithContext(ctx).Model(&model.Note{}).Order("id ASC")
	if !filter.IncludeDeleted {
		q = q.Where("deleted_at IS NULL")
	}
	if filter.Skip > 0 {
		q = q.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// Update 持久化可变字段并刷新 last_accessed_at
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	tx := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]interface{}{
			"title":            note.Title,
			"tags":             note.Tags,
			"created_by":       note.CreatedBy,
			"last_accessed_at": timex.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Peek(ctx, note.ID)
}

// SoftDelete 将 deleted_at 置为当前时间
// 条件更新只命中活跃记录，deleted_at 只会经历一次 NULL -> 时间戳 的迁移，
// 已软删除的记录不会被重复盖写（没有恢复路径）
func (r *noteRepository) SoftDelete(ctx context.Context, id int64) (*domain.Note, bool, error) {
	now := timex.Now()
	tx := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at":       now,
			"last_accessed_at": now,
		})
	if tx.Error != nil {
		return nil, false, tx.Error
	}

	note, err := r.Peek(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return note, tx.RowsAffected > 0, nil
}

// Purge 物理删除记录，条件删除只命中已软删除的记录
func (r *noteRepository) Purge(ctx context.Context, id int64) (bool, bool, error) {
	tx := r.dao.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&model.Note{})
	if tx.Error != nil {
		return false, false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return true, true, nil
	}

	// 删除未命中：区分记录不存在与记录仍处于活跃状态
	if _, err := r.Peek(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, false, nil
		}
		return false, false, err
	}
	return true, false, nil
}

// ListExpiredDeleted 返回软删除时间早于 before 的笔记
func (r *noteRepository) ListExpiredDeleted(ctx context.Context, before time.Time) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", timex.Time(before)).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}
