package tasks

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/constant"
	"github.com/Xushengqwer/blog_mock_service/repo/memory"
)

// StoreStatsTask 定时把内存存储中的作者、帖子、图片数量写入日志，便于观察后台生成进度。
type StoreStatsTask struct {
	store  memory.Store
	cron   *cron.Cron
	logger *zap.Logger
	last   memory.Stats
}

// NewStoreStatsTask 初始化并启动统计定时任务。schedule 为空时使用 constant.DefaultStatsCronSpec。
func NewStoreStatsTask(store memory.Store, schedule string, logger *zap.Logger) (*StoreStatsTask, error) {
	if schedule == "" {
		schedule = constant.DefaultStatsCronSpec
	}
	task := &StoreStatsTask{
		store:  store,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
	if err := task.startCronJob(schedule); err != nil {
		return nil, err
	}
	return task, nil
}

func (t *StoreStatsTask) startCronJob(schedule string) error {
	t.logger.Info("准备启动存储统计定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, t.report)
	if err != nil {
		t.logger.Error("添加存储统计 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
		return fmt.Errorf("添加存储统计 cron 作业失败 (schedule=%s): %w", schedule, err)
	}

	t.cron.Start()
	t.logger.Info("存储统计定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
	return nil
}

// report 记录一次统计快照以及与上次相比新增的帖子数。
// SkipIfStillRunning 保证 report 不会并发执行。
func (t *StoreStatsTask) report() {
	stats := t.store.Stats()
	t.logger.Info("内存存储统计",
		zap.Int("authors", stats.Authors),
		zap.Int("posts", stats.Posts),
		zap.Int("images", stats.Images),
		zap.Int("newPosts", stats.Posts-t.last.Posts),
	)
	t.last = stats
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭。
func (t *StoreStatsTask) Stop() context.Context {
	t.logger.Info("正在停止存储统计定时任务...")
	return t.cron.Stop()
}
