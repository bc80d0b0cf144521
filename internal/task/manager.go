package task

import (
	"github.com/noteful-labs/noteful-service/internal/app"
	"github.com/noteful-labs/noteful-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

// NewManager 创建任务管理器
func NewManager(appContainer *app.App, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(appContainer.Logger(), sc),
		logger:    appContainer.Logger(),
		app:       appContainer,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks() error {
	// 创建并添加引用完整性巡检任务
	sweepTask, err := NewOrphanSweepTask(m.app)
	if err != nil {
		m.logger.Warn("failed to create orphan sweep task", zap.Error(err))
		return err
	}

	m.scheduler.AddTask(sweepTask)

	// 未来可以在这里添加更多任务
	// otherTask := NewOtherTask()
	// m.scheduler.AddTask(otherTask)

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
