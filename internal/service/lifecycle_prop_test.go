package service

import (
	"context"
	"testing"

	"github.com/securenotes/secure-notes-service/internal/dto"
	"github.com/securenotes/secure-notes-service/pkg/code"
	apperrors "github.com/securenotes/secure-notes-service/pkg/errors"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// 对任意操作序列验证生命周期不变式

const (
	opCreate = iota
	opGet
	opSoftDelete
	opPurge
	opCount
)

// TestProperty_NoteLifecycle 对随机操作序列回放并检查:
//   - 标识符严格递增且不复用
//   - 清除只在软删除之后成功，活跃笔记清除必然是冲突
//   - 清除后的标识符表现为不存在，没有复活路径
func TestProperty_NoteLifecycle(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("lifecycle invariants hold for any op sequence", prop.ForAll(
		func(ops []int) bool {
			ctx := context.Background()
			svc, _ := newTestService()

			var ids []int64
			lastID := int64(0)
			deleted := map[int64]bool{}
			purged := map[int64]bool{}

			for i, op := range ops {
				switch op % opCount {
				case opCreate:
					note, err := svc.Create(ctx, &dto.NoteCreateRequest{
						Title:     "note",
						CreatedBy: "prop",
					})
					if err != nil {
						t.Logf("create failed: %v", err)
						return false
					}
					if note.ID <= lastID {
						t.Logf("id not strictly increasing: %d after %d", note.ID, lastID)
						return false
					}
					lastID = note.ID
					ids = append(ids, note.ID)

				case opGet:
					id := pickID(ids, i)
					if id == 0 {
						continue
					}
					note, err := svc.Get(ctx, id)
					if purged[id] {
						if !apperrors.IsCode(err, code.ErrorNoteNotFound) {
							t.Logf("purged note %d still reachable", id)
							return false
						}
						continue
					}
					if err != nil {
						t.Logf("get %d: %v", id, err)
						return false
					}
					if deleted[id] != note.IsDeleted() {
						t.Logf("note %d deleted state mismatch", id)
						return false
					}

				case opSoftDelete:
					id := pickID(ids, i)
					if id == 0 {
						continue
					}
					note, err := svc.SoftDelete(ctx, id)
					if purged[id] {
						if !apperrors.IsCode(err, code.ErrorNoteNotFound) {
							t.Logf("soft delete resurrected purged note %d", id)
							return false
						}
						continue
					}
					if err != nil {
						t.Logf("soft delete %d: %v", id, err)
						return false
					}
					if note.DeletedAt == nil {
						t.Logf("soft delete %d left no deleted_at", id)
						return false
					}
					deleted[id] = true

				case opPurge:
					id := pickID(ids, i)
					if id == 0 {
						continue
					}
					err := svc.Purge(ctx, id)
					switch {
					case purged[id]:
						if !apperrors.IsCode(err, code.ErrorNoteNotFound) {
							t.Logf("double purge of %d not a miss", id)
							return false
						}
					case deleted[id]:
						if err != nil {
							t.Logf("purge of soft deleted %d: %v", id, err)
							return false
						}
						purged[id] = true
					default:
						if !apperrors.IsCode(err, code.ErrorPurgeConflict) {
							t.Logf("purge of active %d not a conflict: %v", id, err)
							return false
						}
					}
				}
			}

			// 结束时活跃列表里不含软删除或已清除的笔记
			notes, err := svc.List(ctx, &dto.NoteListRequest{}, 0, 1000)
			if err != nil {
				t.Logf("final list: %v", err)
				return false
			}
			for _, n := range notes {
				if deleted[n.ID] || purged[n.ID] {
					t.Logf("deleted note %d visible in active list", n.ID)
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}

// pickID 从已创建的标识符里确定性地取一个，没有则返回 0
func pickID(ids []int64, seed int) int64 {
	if len(ids) == 0 {
		return 0
	}
	return ids[seed%len(ids)]
}
