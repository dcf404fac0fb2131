package service

import (
	"context"
	"errors"
	"time"

	"github.com/securenotes/secure-notes-service/internal/domain"
	"github.com/securenotes/secure-notes-service/internal/dto"
	"github.com/securenotes/secure-notes-service/pkg/code"
	apperrors "github.com/securenotes/secure-notes-service/pkg/errors"
	"github.com/securenotes/secure-notes-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteService enforces the note lifecycle: Active --soft_delete-->
// SoftDeleted --purge--> gone. There is no transition back to Active and
// purging an active note is a conflict.
// NoteService 实施笔记生命周期：活跃 --软删除--> 软删除 --清除--> 消亡。
// 没有回到活跃状态的迁移，清除活跃笔记是冲突。
type NoteService interface {
	// Create 创建笔记
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error)

	// Get 获取单条笔记，读取本身会刷新访问时间
	Get(ctx context.Context, id int64) (*domain.Note, error)

	// List 获取笔记列表
	List(ctx context.Context, params *dto.NoteListRequest, skip, limit int) ([]*domain.Note, error)

	// Update 按补丁对象部分更新笔记
	Update(ctx context.Context, id int64, patch *domain.NotePatch) (*domain.Note, error)

	// SoftDelete 软删除笔记；对已软删除的笔记幂等成功
	SoftDelete(ctx context.Context, id int64) (*domain.Note, error)

	// Purge 物理清除已软删除的笔记
	Purge(ctx context.Context, id int64) error

	// PurgeExpired 清除软删除时间超过保留期的笔记，返回清除数量
	PurgeExpired(ctx context.Context, retention time.Duration) (int, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger, config *ServiceConfig) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		noteRepo: noteRepo,
		logger:   lg,
		config:   config,
	}
}

func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error) {
	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:     params.Title,
		Tags:      params.Tags,
		CreatedBy: params.CreatedBy,
	})
	if err != nil {
		return nil, apperrors.New(code.ErrorDatabase, err)
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.Get(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, params *dto.NoteListRequest, skip, limit int) ([]*domain.Note, error) {
	notes, err := s.noteRepo.List(ctx, domain.ListFilter{
		Skip:           skip,
		Limit:          limit,
		IncludeDeleted: params.IncludeDeleted,
	})
	if err != nil {
		return nil, apperrors.New(code.ErrorDatabase, err)
	}
	return notes, nil
}

func (s *noteService) Update(ctx context.Context, id int64, patch *domain.NotePatch) (*domain.Note, error) {
	// 逐字段合并到当前记录，未出现的字段保持不变
	note, err := s.noteRepo.Peek(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	patch.Apply(note)

	updated, err := s.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}
	return updated, nil
}

// SoftDelete 软删除笔记
// 对已处于软删除状态的笔记选择幂等成功语义：重复 DELETE 返回原笔记，
// deleted_at 保持首次删除时刻不变
func (s *noteService) SoftDelete(ctx context.Context, id int64) (*domain.Note, error) {
	note, transitioned, err := s.noteRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	if transitioned {
		s.logger.Info("note soft deleted", zap.Int64(logger.FieldNoteID, id))
	}
	return note, nil
}

func (s *noteService) Purge(ctx context.Context, id int64) error {
	exists, purged, err := s.noteRepo.Purge(ctx, id)
	if err != nil {
		return apperrors.New(code.ErrorDatabase, err)
	}
	if !exists {
		return apperrors.New(code.ErrorNoteNotFound, nil)
	}
	if !purged {
		// 活跃笔记必须先软删除
		return apperrors.New(code.ErrorPurgeConflict, nil)
	}

	s.logger.Info("note purged", zap.Int64(logger.FieldNoteID, id))
	return nil
}

// PurgeExpired 清除软删除时间超过保留期的笔记
func (s *noteService) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, nil
	}

	before := time.Now().Add(-retention)
	expired, err := s.noteRepo.ListExpiredDeleted(ctx, before)
	if err != nil {
		return 0, apperrors.New(code.ErrorDatabase, err)
	}

	purgedCount := 0
	for _, note := range expired {
		_, purged, err := s.noteRepo.Purge(ctx, note.ID)
		if err != nil {
			s.logger.Error("retention purge failed",
				zap.Int64(logger.FieldNoteID, note.ID),
				zap.Error(err))
			continue
		}
		if purged {
			purgedCount++
		}
	}

	if purgedCount > 0 {
		s.logger.Info("retention purge finished", zap.Int("purged", purgedCount))
	}
	return purgedCount, nil
}

func (s *noteService) wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(code.ErrorNoteNotFound, err)
	}
	return apperrors.New(code.ErrorDatabase, err)
}
