package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

// LinkRepository 定义了导航链接集合的数据访问接口。
type LinkRepository interface {
	FindAll(ctx context.Context) ([]*model.Link, error)
	Create(ctx context.Context, link *model.Link) error
	Update(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error)
	Delete(ctx context.Context, id string) error
}

// LinkCategoryRepository 定义了链接分组集合的数据访问接口。
// 删除分组不会删除其下的链接，链接上的 CategoryID 变为悬挂引用。
type LinkCategoryRepository interface {
	FindAll(ctx context.Context) ([]*model.LinkCategory, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, category *model.LinkCategory) error
	Update(ctx context.Context, id string, req *model.UpdateLinkCategoryRequest) (*model.LinkCategory, error)
	Delete(ctx context.Context, id string) error
}
