package dao

import (
	"context"
	"testing"
	"time"

	"github.com/securenotes/secure-notes-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestRepo 创建基于内存 sqlite 的仓库
func newTestRepo(t *testing.T) domain.NoteRepository {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	return NewNoteRepository(New(db, context.Background()))
}

func mustCreate(t *testing.T, repo domain.NoteRepository, title string) *domain.Note {
	t.Helper()
	note, err := repo.Create(context.Background(), &domain.Note{
		Title:     title,
		Tags:      "test",
		CreatedBy: "tester",
	})
	if err != nil {
		t.Fatal(err)
	}
	return note
}

func TestNoteRepository_Create(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	note, err := repo.Create(ctx, &domain.Note{
		Title:     "Test Secret",
		Tags:      "test",
		CreatedBy: "tester",
	})

	dump.P(note)

	assert.Nil(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "Test Secret", note.Title)
	assert.Equal(t, "test", note.Tags)
	assert.Equal(t, "tester", note.CreatedBy)
	// 创建时刻 created_at 与 last_accessed_at 相同
	assert.Equal(t, note.CreatedAt, note.LastAccessedAt)
	assert.Nil(t, note.DeletedAt)

	// ID 单调分配，不复用
	second := mustCreate(t, repo, "Second")
	assert.Greater(t, second.ID, note.ID)
}

func TestNoteRepository_GetRefreshesAccessTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "Prod-DB-Password")

	time.Sleep(10 * time.Millisecond)
	first, err := repo.Get(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, first.LastAccessedAt.After(created.LastAccessedAt),
		"first read should refresh last_accessed_at")

	time.Sleep(10 * time.Millisecond)
	second, err := repo.Get(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, second.LastAccessedAt.After(first.LastAccessedAt),
		"second read should land after the first")
	// created_at 不随读取变化
	assert.Equal(t, created.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestNoteRepository_GetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_ListFiltersDeleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := mustCreate(t, repo, "a")
	b := mustCreate(t, repo, "b")
	c := mustCreate(t, repo, "c")

	_, transitioned, err := repo.SoftDelete(ctx, b.ID)
	assert.Nil(t, err)
	assert.True(t, transitioned)

	// 默认列表只含活跃记录，保持插入顺序
	active, err := repo.List(ctx, domain.ListFilter{Limit: 10})
	assert.Nil(t, err)
	if assert.Len(t, active, 2) {
		assert.Equal(t, a.ID, active[0].ID)
		assert.Equal(t, c.ID, active[1].ID)
	}

	// include_deleted 扩展视图包含软删除记录
	all, err := repo.List(ctx, domain.ListFilter{Limit: 10, IncludeDeleted: true})
	assert.Nil(t, err)
	assert.Len(t, all, 3)

	// 分页
	page, err := repo.List(ctx, domain.ListFilter{Skip: 1, Limit: 1})
	assert.Nil(t, err)
	if assert.Len(t, page, 1) {
		assert.Equal(t, c.ID, page[0].ID)
	}
}

func TestNoteRepository_ListDoesNotTouchAccessTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "untouched")
	time.Sleep(10 * time.Millisecond)

	_, err := repo.List(ctx, domain.ListFilter{Limit: 10})
	assert.Nil(t, err)

	after, err := repo.Peek(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.LastAccessedAt.UnixNano(), after.LastAccessedAt.UnixNano(),
		"bulk listing must not refresh individual access timestamps")
}

func TestNoteRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "Original Title")
	time.Sleep(10 * time.Millisecond)

	created.Title = "Updated Title"
	updated, err := repo.Update(ctx, created)
	assert.Nil(t, err)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "test", updated.Tags)
	assert.True(t, updated.LastAccessedAt.After(created.LastAccessedAt))

	_, err = repo.Update(ctx, &domain.Note{ID: 9999, Title: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_SoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "to delete")

	note, transitioned, err := repo.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, transitioned)
	assert.NotNil(t, note.DeletedAt)
	assert.Equal(t, domain.NoteStateSoftDeleted, note.State())

	// 重复软删除不发生迁移，deleted_at 保持首次删除时刻
	again, transitioned, err := repo.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)
	assert.False(t, transitioned)
	assert.Equal(t, note.DeletedAt.UnixNano(), again.DeletedAt.UnixNano())
}

func TestNoteRepository_PurgeRequiresSoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "purge me")

	// 活跃记录不允许清除
	exists, purged, err := repo.Purge(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.False(t, purged)

	// 冲突之后记录仍可读取
	still, err := repo.Peek(ctx, created.ID)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, still.ID)

	// 软删除之后允许清除
	_, _, err = repo.SoftDelete(ctx, created.ID)
	assert.Nil(t, err)

	exists, purged, err = repo.Purge(ctx, created.ID)
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.True(t, purged)

	// 清除后身份不复存在
	_, err = repo.Peek(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, _, err = repo.Purge(ctx, created.ID)
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestNoteRepository_ListExpiredDeleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	old := mustCreate(t, repo, "old")
	fresh := mustCreate(t, repo, "fresh")

	_, _, err := repo.SoftDelete(ctx, old.ID)
	assert.Nil(t, err)

	time.Sleep(20 * time.Millisecond)
	cutoff := time.Now()

	_, _, err = repo.SoftDelete(ctx, fresh.ID)
	assert.Nil(t, err)

	expired, err := repo.ListExpiredDeleted(ctx, cutoff)
	assert.Nil(t, err)
	if assert.Len(t, expired, 1) {
		assert.Equal(t, old.ID, expired[0].ID)
	}
}
