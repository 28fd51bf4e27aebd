/*
 * @Description: 将缓存中的浏览量增量批量回写到文章集合
 * @Author: 安知鱼
 * @Date: 2025-09-03 17:40:05
 * @LastEditTime: 2025-09-12 20:44:31
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"
	"strings"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/blog"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/utility"
)

// SyncViewCountsJob 负责把缓存里累计的浏览量合并进文章集合。
// 详情页只做缓存 INCR，集合只在这里被重写，避免读路径上的写放大。
type SyncViewCountsJob struct {
	repo     repository.BlogRepository
	cacheSvc utility.CacheService
}

// NewSyncViewCountsJob 是任务的构造函数。
func NewSyncViewCountsJob(repo repository.BlogRepository, cacheSvc utility.CacheService) *SyncViewCountsJob {
	return &SyncViewCountsJob{
		repo:     repo,
		cacheSvc: cacheSvc,
	}
}

// Name 返回任务的可读名称。
func (j *SyncViewCountsJob) Name() string {
	return "SyncBlogViewCountsJob"
}

// Run 执行一轮同步：扫描计数键 → 取值并删除 → 批量合并进集合。
// 取出后回写失败会丢掉这一轮的增量，这里接受这种损失。
func (j *SyncViewCountsJob) Run() {
	ctx := context.Background()

	keys, err := j.cacheSvc.Scan(ctx, blog.ViewCountKeyPrefix+"*")
	if err != nil {
		log.Printf("错误: 任务 '%s' 扫描计数键失败: %v", j.Name(), err)
		return
	}
	if len(keys) == 0 {
		return
	}

	viewIncrements, err := j.cacheSvc.GetAndDeleteMany(ctx, keys)
	if err != nil {
		log.Printf("错误: 任务 '%s' 读取并删除计数键失败: %v", j.Name(), err)
		return
	}

	updates := make(map[string]int, len(viewIncrements))
	for key, increment := range viewIncrements {
		id := strings.TrimPrefix(key, blog.ViewCountKeyPrefix)
		if id == "" || increment <= 0 {
			continue
		}
		updates[id] = increment
	}
	if len(updates) == 0 {
		return
	}

	if err := j.repo.AddViews(ctx, updates); err != nil {
		log.Printf("错误: 任务 '%s' 回写浏览量失败: %v", j.Name(), err)
		return
	}
	log.Printf("信息: 任务 '%s' 已回写 %d 篇文章的浏览量。", j.Name(), len(updates))
}
