/*
 * @Description: 后台周期任务的调度中枢
 * @Author: 安知鱼
 * @Date: 2025-09-03 17:55:12
 * @LastEditTime: 2025-09-12 21:02:48
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/utility"

	"github.com/robfig/cron/v3"
)

// Broker 是后台任务模块的协调者，持有 cron 调度器和任务依赖。
type Broker struct {
	cron     *cron.Cron
	logger   *slog.Logger
	blogRepo repository.BlogRepository
	cacheSvc utility.CacheService
}

// NewBroker 是 Broker 的构造函数。
func NewBroker(blogRepo repository.BlogRepository, cacheSvc utility.CacheService) *Broker {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "task_broker")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Broker{
		cron:     c,
		logger:   logger,
		blogRepo: blogRepo,
		cacheSvc: cacheSvc,
	}
}

// RegisterCronJobs 注册所有周期性任务。
func (b *Broker) RegisterCronJobs() {
	b.logger.Info("Registering all periodic jobs...")

	syncViewsJob := NewSyncViewCountsJob(b.blogRepo, b.cacheSvc)
	if _, err := b.cron.AddJob("0 */2 * * * *", syncViewsJob); err != nil {
		b.logger.Error("Failed to add 'SyncViewCountsJob'", slog.Any("error", err))
		os.Exit(1)
	}
	b.logger.Info("-> Successfully registered 'SyncViewCountsJob'", "schedule", "every 2 minutes")
}

// Start 启动调度器（非阻塞）。
func (b *Broker) Start() {
	b.cron.Start()
	b.logger.Info("Task broker started")
}

// Stop 停止调度器，等待在途任务完成。
func (b *Broker) Stop() {
	ctx := b.cron.Stop()
	<-ctx.Done()
	b.logger.Info("Task broker stopped")
}
