package task

import (
	"context"
	"time"

	"github.com/securenotes/secure-notes-service/internal/app"
	"github.com/securenotes/secure-notes-service/pkg/util"

	"go.uber.org/zap"
)

// NoteCleanupTask 保留期清理任务
// 物理清除软删除时间超过保留期的笔记
type NoteCleanupTask struct {
	app       *app.App
	retention time.Duration
	spec      string
}

// NewNoteCleanupTask 创建清理任务
// 保留时间未配置或为 0 时任务不启用
func NewNoteCleanupTask(a *app.App) (Task, error) {
	retentionTimeStr := a.Config().App.SoftDeleteRetentionTime
	if retentionTimeStr == "" {
		return nil, nil
	}
	retention, err := util.ParseDuration(retentionTimeStr)
	if err != nil {
		return nil, err
	}
	if retention <= 0 {
		return nil, nil
	}

	spec := a.Config().App.RetentionPurgeCron
	if spec == "" {
		spec = "@hourly"
	}

	return &NoteCleanupTask{
		app:       a,
		retention: retention,
		spec:      spec,
	}, nil
}

// Name 返回任务名称
func (t *NoteCleanupTask) Name() string {
	return "NoteCleanupTask"
}

// Run 执行清理任务
func (t *NoteCleanupTask) Run(ctx context.Context) error {
	if t.app.IsShuttingDown() {
		return nil
	}

	finish := t.app.TrackOperation()
	defer finish()

	purged, err := t.app.NoteService.PurgeExpired(ctx, t.retention)
	if err != nil {
		return err
	}

	if purged > 0 {
		t.app.Logger().Info("expired notes purged",
			zap.Int("count", purged),
			zap.Duration("retention", t.retention))
	}
	return nil
}

// Spec 返回 cron 表达式
func (t *NoteCleanupTask) Spec() string {
	return t.spec
}

// IsStartupRun 是否启动时立即执行一次
func (t *NoteCleanupTask) IsStartupRun() bool {
	return true
}
