/*
 * @Description: 博客分类业务逻辑
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:20:14
 * @LastEditTime: 2025-09-06 19:02:33
 * @LastEditors: 安知鱼
 */
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/idgen"
)

// Service 定义了分类相关的业务接口。
type Service interface {
	List(ctx context.Context) ([]*model.Category, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error)
	// Delete 删除分类本身；文章上指向它的引用保留为悬挂引用。
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo repository.CategoryRepository
}

// NewService 是分类服务的构造函数。
func NewService(repo repository.CategoryRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*model.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	now := time.Now()

	slug := req.Slug
	if slug == "" {
		slug = idgen.Slugify(req.Name)
	}

	c := &model.Category{
		ID:          idgen.NewID(),
		Name:        req.Name,
		Slug:        slug,
		Image:       req.Image,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Rating != nil {
		c.Rating = *req.Rating
	}
	if req.IsMostView != nil {
		c.IsMostView = *req.IsMostView
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
