package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

// BlogRepository 定义了文章集合的数据访问接口。
// 每个写操作都是 读整个集合 → 内存内修改 → 写回整个集合，
// 目标定位为按 ID 的线性扫描，找不到时返回 constant.ErrNotFound。
type BlogRepository interface {
	FindAll(ctx context.Context) ([]*model.Blog, error)
	FindByID(ctx context.Context, id string) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Create(ctx context.Context, blog *model.Blog) error
	Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id string) error

	// IncrementLikes 给文章点赞数 +1 并返回新值。不做去重，
	// 同一客户端重复调用会重复累加。
	IncrementLikes(ctx context.Context, id string) (int, error)
	// AddComment 将评论追加到目标文章的评论列表尾部。
	AddComment(ctx context.Context, id string, comment *model.Comment) error
	// AddViews 将一批浏览量增量合并进集合，由后台任务批量调用；
	// 指向已删除文章的增量被静默丢弃。
	AddViews(ctx context.Context, increments map[string]int) error
}
