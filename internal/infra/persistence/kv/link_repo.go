/*
 * @Description: 导航链接与链接分组的 KV 仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:48:27
 * @LastEditTime: 2025-09-04 10:02:36
 * @LastEditors: 安知鱼
 */
package kv

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

type linkRepo struct {
	store repository.CollectionStore
}

// NewLinkRepo 是 linkRepo 的构造函数。
func NewLinkRepo(store repository.CollectionStore) repository.LinkRepository {
	return &linkRepo{store: store}
}

func (r *linkRepo) load(ctx context.Context) ([]*model.Link, error) {
	return loadSlice[model.Link](ctx, r.store, constant.CollectionLinks)
}

func (r *linkRepo) save(ctx context.Context, links []*model.Link) error {
	return r.store.Set(ctx, constant.CollectionLinks, links)
}

func (r *linkRepo) FindAll(ctx context.Context) ([]*model.Link, error) {
	return r.load(ctx)
}

func (r *linkRepo) Create(ctx context.Context, link *model.Link) error {
	links, err := r.load(ctx)
	if err != nil {
		return err
	}
	links = append(links, link)
	return r.save(ctx, links)
}

// Update 整体替换链接的可编辑字段（标题、地址、分组），与历史行为一致。
func (r *linkRepo) Update(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error) {
	links, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, l := range links {
		if l.ID == id {
			l.Title = req.Title
			l.Href = req.Href
			l.CategoryID = req.CategoryID
			if err := r.save(ctx, links); err != nil {
				return nil, err
			}
			return l, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *linkRepo) Delete(ctx context.Context, id string) error {
	links, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, l := range links {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return constant.ErrNotFound
	}

	links = append(links[:idx], links[idx+1:]...)
	return r.save(ctx, links)
}

type linkCategoryRepo struct {
	store repository.CollectionStore
}

// NewLinkCategoryRepo 是 linkCategoryRepo 的构造函数。
func NewLinkCategoryRepo(store repository.CollectionStore) repository.LinkCategoryRepository {
	return &linkCategoryRepo{store: store}
}

func (r *linkCategoryRepo) load(ctx context.Context) ([]*model.LinkCategory, error) {
	return loadSlice[model.LinkCategory](ctx, r.store, constant.CollectionLinkCategories)
}

func (r *linkCategoryRepo) save(ctx context.Context, categories []*model.LinkCategory) error {
	return r.store.Set(ctx, constant.CollectionLinkCategories, categories)
}

func (r *linkCategoryRepo) FindAll(ctx context.Context) ([]*model.LinkCategory, error) {
	return r.load(ctx)
}

func (r *linkCategoryRepo) Count(ctx context.Context) (int, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(categories), nil
}

func (r *linkCategoryRepo) Create(ctx context.Context, category *model.LinkCategory) error {
	categories, err := r.load(ctx)
	if err != nil {
		return err
	}
	categories = append(categories, category)
	return r.save(ctx, categories)
}

func (r *linkCategoryRepo) Update(ctx context.Context, id string, req *model.UpdateLinkCategoryRequest) (*model.LinkCategory, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		if c.ID == id {
			c.Name = req.Name
			if req.SortOrder != nil {
				c.SortOrder = *req.SortOrder
			}
			if err := r.save(ctx, categories); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	return nil, constant.ErrNotFound
}

// Delete 只移除分组本身，组内链接保留，其 CategoryID 成为悬挂引用。
func (r *linkCategoryRepo) Delete(ctx context.Context, id string) error {
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
