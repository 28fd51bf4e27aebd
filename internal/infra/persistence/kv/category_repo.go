/*
 * @Description: 分类集合的 KV 仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:41:33
 * @LastEditTime: 2025-09-04 09:55:10
 * @LastEditors: 安知鱼
 */
package kv

import (
	"context"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

type categoryRepo struct {
	store repository.CollectionStore
}

// NewCategoryRepo 是 categoryRepo 的构造函数。
func NewCategoryRepo(store repository.CollectionStore) repository.CategoryRepository {
	return &categoryRepo{store: store}
}

func (r *categoryRepo) load(ctx context.Context) ([]*model.Category, error) {
	return loadSlice[model.Category](ctx, r.store, constant.CollectionCategories)
}

func (r *categoryRepo) save(ctx context.Context, categories []*model.Category) error {
	return r.store.Set(ctx, constant.CollectionCategories, categories)
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]*model.Category, error) {
	return r.load(ctx)
}

func (r *categoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	categories, err := r.load(ctx)
	if err != nil {
		return err
	}
	categories = append(categories, category)
	return r.save(ctx, categories)
}

func (r *categoryRepo) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var target *model.Category
	for _, c := range categories {
		if c.ID == id {
			target = c
			break
		}
	}
	if target == nil {
		return nil, constant.ErrNotFound
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Slug != nil {
		target.Slug = *req.Slug
	}
	if req.Image != nil {
		target.Image = *req.Image
	}
	if req.Description != nil {
		target.Description = *req.Description
	}
	if req.Duration != nil {
		target.Duration = *req.Duration
	}
	if req.Reviews != nil {
		target.Reviews = *req.Reviews
	}
	if req.Rating != nil {
		target.Rating = *req.Rating
	}
	if req.IsMostView != nil {
		target.IsMostView = *req.IsMostView
	}
	if req.Status != nil {
		target.Status = *req.Status
	}
	target.UpdatedAt = time.Now()

	if err := r.save(ctx, categories); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete 只移除分类本身，引用它的文章保持原样（悬挂引用由筛选按无匹配处理）。
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	categories, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, c := range categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return constant.ErrNotFound
	}

	categories = append(categories[:idx], categories[idx+1:]...)
	return r.save(ctx, categories)
}
