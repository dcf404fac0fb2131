package task

import (
	"github.com/securenotes/secure-notes-service/internal/app"
	"github.com/securenotes/secure-notes-service/pkg/safeclose"

	"go.uber.org/zap"
)

// Manager 任务管理器，负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safeclose.SafeClose, a *app.App) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		app:       a,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks() error {
	// 创建并添加保留期清理任务
	cleanupTask, err := NewNoteCleanupTask(m.app)
	if err != nil {
		m.logger.Warn("failed to create note cleanup task", zap.Error(err))
		return err
	}

	if cleanupTask != nil {
		if err := m.scheduler.AddTask(cleanupTask); err != nil {
			return err
		}
	} else {
		m.logger.Info("note cleanup task is disabled (retention time not configured)")
	}

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
