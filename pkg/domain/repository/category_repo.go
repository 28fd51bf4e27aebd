package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

// CategoryRepository 定义了博客分类集合的数据访问接口。
// 删除分类不会清理文章上的 CategoryIDs 引用。
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
