package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/securenotes/secure-notes-service/internal/domain"
	"github.com/securenotes/secure-notes-service/internal/dto"
	"github.com/securenotes/secure-notes-service/pkg/code"
	apperrors "github.com/securenotes/secure-notes-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memNoteRepo 内存版 NoteRepository，供 service 层测试使用
type memNoteRepo struct {
	mu     sync.Mutex
	nextID int64
	notes  map[int64]*domain.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: make(map[int64]*domain.Note)}
}

func (m *memNoteRepo) clone(n *domain.Note) *domain.Note {
	if n == nil {
		return nil
	}
	cp := *n
	if n.DeletedAt != nil {
		deletedAt := *n.DeletedAt
		cp.DeletedAt = &deletedAt
	}
	return &cp
}

func (m *memNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	now := time.Now()
	stored := &domain.Note{
		ID:             m.nextID,
		Title:          note.Title,
		Tags:           note.Tags,
		CreatedBy:      note.CreatedBy,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.notes[stored.ID] = stored
	return m.clone(stored), nil
}

func (m *memNoteRepo) Get(ctx context.Context, id int64) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	n.LastAccessedAt = time.Now()
	return m.clone(n), nil
}

func (m *memNoteRepo) Peek(ctx context.Context, id int64) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.clone(n), nil
}

func (m *memNoteRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Note
	for id := int64(1); id <= m.nextID; id++ {
		n, ok := m.notes[id]
		if !ok {
			continue
		}
		if !filter.IncludeDeleted && n.IsDeleted() {
			continue
		}
		out = append(out, m.clone(n))
	}
	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return nil, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memNoteRepo) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[note.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	n.Title = note.Title
	n.Tags = note.Tags
	n.CreatedBy = note.CreatedBy
	n.LastAccessedAt = time.Now()
	return m.clone(n), nil
}

func (m *memNoteRepo) SoftDelete(ctx context.Context, id int64) (*domain.Note, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return nil, false, gorm.ErrRecordNotFound
	}
	if n.IsDeleted() {
		return m.clone(n), false, nil
	}
	now := time.Now()
	n.DeletedAt = &now
	n.LastAccessedAt = now
	return m.clone(n), true, nil
}

func (m *memNoteRepo) Purge(ctx context.Context, id int64) (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok {
		return false, false, nil
	}
	if !n.IsDeleted() {
		return true, false, nil
	}
	delete(m.notes, id)
	return true, true, nil
}

func (m *memNoteRepo) ListExpiredDeleted(ctx context.Context, before time.Time) ([]*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Note
	for id := int64(1); id <= m.nextID; id++ {
		n, ok := m.notes[id]
		if !ok || !n.IsDeleted() {
			continue
		}
		if n.DeletedAt.Before(before) {
			out = append(out, m.clone(n))
		}
	}
	return out, nil
}

func newTestService() (NoteService, *memNoteRepo) {
	repo := newMemNoteRepo()
	svc := NewNoteService(repo, nil, &ServiceConfig{})
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestNoteService_UpdateMergesPatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		patch     *domain.NotePatch
		wantTitle string
		wantTags  string
		wantBy    string
	}{
		{
			name:      "title only",
			patch:     &domain.NotePatch{Title: strPtr("Updated Title")},
			wantTitle: "Updated Title",
			wantTags:  "test",
			wantBy:    "tester",
		},
		{
			name:      "tags only",
			patch:     &domain.NotePatch{Tags: strPtr("prod,critical")},
			wantTitle: "Original Title",
			wantTags:  "prod,critical",
			wantBy:    "tester",
		},
		{
			name:      "empty patch keeps everything",
			patch:     &domain.NotePatch{},
			wantTitle: "Original Title",
			wantTags:  "test",
			wantBy:    "tester",
		},
		{
			name: "all fields",
			patch: &domain.NotePatch{
				Title:     strPtr("New"),
				Tags:      strPtr("t"),
				CreatedBy: strPtr("someone"),
			},
			wantTitle: "New",
			wantTags:  "t",
			wantBy:    "someone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			created, err := svc.Create(ctx, &dto.NoteCreateRequest{
				Title:     "Original Title",
				Tags:      "test",
				CreatedBy: "tester",
			})
			assert.Nil(t, err)

			updated, err := svc.Update(ctx, created.ID, tt.patch)
			assert.Nil(t, err)
			assert.Equal(t, tt.wantTitle, updated.Title)
			assert.Equal(t, tt.wantTags, updated.Tags)
			assert.Equal(t, tt.wantBy, updated.CreatedBy)
		})
	}
}

func TestNoteService_UpdateNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 42, &domain.NotePatch{Title: strPtr("x")})
	assert.True(t, apperrors.IsCode(err, code.ErrorNoteNotFound))
}

func TestNoteService_SoftDeleteIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NoteCreateRequest{
		Title: "Test Secret", Tags: "test", CreatedBy: "tester",
	})
	assert.Nil(t, err)

	first, err := svc.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)
	assert.NotNil(t, first.DeletedAt)

	// 重复删除幂等成功，删除时刻不变
	second, err := svc.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, first.DeletedAt.UnixNano(), second.DeletedAt.UnixNano())
}

func TestNoteService_SoftDeleteNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SoftDelete(context.Background(), 42)
	assert.True(t, apperrors.IsCode(err, code.ErrorNoteNotFound))
}

func TestNoteService_PurgeLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.NoteCreateRequest{
		Title: "Test Secret", Tags: "test", CreatedBy: "tester",
	})
	assert.Nil(t, err)

	// 活跃状态直接清除是冲突，笔记仍然可读
	err = svc.Purge(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, code.ErrorPurgeConflict))

	still, err := svc.Get(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, still.ID)

	// 软删除后允许清除
	_, err = svc.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)

	err = svc.Purge(ctx, created.ID)
	assert.Nil(t, err)

	// 清除后身份不复存在
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, code.ErrorNoteNotFound))

	err = svc.Purge(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, code.ErrorNoteNotFound))
}

func TestNoteService_ListExcludesDeleted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.NoteCreateRequest{Title: "a", CreatedBy: "tester"})
	_, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "b", CreatedBy: "tester"})
	assert.Nil(t, err)

	_, err = svc.SoftDelete(ctx, a.ID)
	assert.Nil(t, err)

	active, err := svc.List(ctx, &dto.NoteListRequest{}, 0, 10)
	assert.Nil(t, err)
	if assert.Len(t, active, 1) {
		assert.Equal(t, "b", active[0].Title)
	}

	all, err := svc.List(ctx, &dto.NoteListRequest{IncludeDeleted: true}, 0, 10)
	assert.Nil(t, err)
	assert.Len(t, all, 2)
}

func TestNoteService_PurgeExpired(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	old, _ := svc.Create(ctx, &dto.NoteCreateRequest{Title: "old", CreatedBy: "tester"})
	keep, _ := svc.Create(ctx, &dto.NoteCreateRequest{Title: "keep", CreatedBy: "tester"})

	_, err := svc.SoftDelete(ctx, old.ID)
	assert.Nil(t, err)

	// 将删除时刻拨回到保留期之外
	past := time.Now().Add(-48 * time.Hour)
	repo.mu.Lock()
	repo.notes[old.ID].DeletedAt = &past
	repo.mu.Unlock()

	purged, err := svc.PurgeExpired(ctx, 24*time.Hour)
	assert.Nil(t, err)
	assert.Equal(t, 1, purged)

	_, err = svc.Get(ctx, old.ID)
	assert.True(t, apperrors.IsCode(err, code.ErrorNoteNotFound))

	_, err = svc.Get(ctx, keep.ID)
	assert.Nil(t, err)

	// 保留期为 0 表示关闭清理
	purged, err = svc.PurgeExpired(ctx, 0)
	assert.Nil(t, err)
	assert.Equal(t, 0, purged)
}
