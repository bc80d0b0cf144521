package task

import (
	"context"
	"time"

	"github.com/noteful-labs/noteful-service/internal/app"

	"go.uber.org/zap"
)

// OrphanSweepTask 引用完整性巡检任务
// 级联清理在删除路径上同步完成，该任务兜底处理
// 进程崩溃等异常情况下遗留的悬空引用
type OrphanSweepTask struct {
	app      *app.App
	interval time.Duration
	startup  bool
}

// Name 返回任务名称
func (t *OrphanSweepTask) Name() string {
	return "OrphanSweep"
}

// LoopInterval 返回执行间隔
func (t *OrphanSweepTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *OrphanSweepTask) IsStartupRun() bool {
	return t.startup
}

// Run 执行巡检任务
func (t *OrphanSweepTask) Run(ctx context.Context) error {
	affected, err := t.app.CleanupService.SweepOrphans(ctx)
	if err != nil {
		t.app.Logger().Error("task log",
			zap.String("task", t.Name()),
			zap.String("msg", "failed"),
			zap.Error(err))
		return err
	}

	t.app.Logger().Info("task log",
		zap.String("task", t.Name()),
		zap.String("msg", "success"),
		zap.Int64("affected", affected))

	return nil
}

// NewOrphanSweepTask 创建引用完整性巡检任务
func NewOrphanSweepTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config()

	return &OrphanSweepTask{
		app:      appContainer,
		interval: cfg.GetOrphanSweepInterval(),
		startup:  cfg.App.OrphanSweepOnStartup,
	}, nil
}
