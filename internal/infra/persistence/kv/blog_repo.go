/*
 * @Description: 文章集合的 KV 仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:33:17
 * @LastEditTime: 2025-09-06 21:14:02
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

// blogRepo 将整个文章集合作为一个 JSON 文档读写。
// 所有写操作都是 读集合 → 内存内修改 → 写回集合；两个并发写之间
// 没有串行化保证，后写者覆盖先写者（单管理员模型下可接受）。
type blogRepo struct {
	store repository.CollectionStore
}

// NewBlogRepo 是 blogRepo 的构造函数。
func NewBlogRepo(store repository.CollectionStore) repository.BlogRepository {
	return &blogRepo{store: store}
}

func (r *blogRepo) load(ctx context.Context) ([]*model.Blog, error) {
	return loadSlice[model.Blog](ctx, r.store, constant.CollectionBlogs)
}

func (r *blogRepo) save(ctx context.Context, blogs []*model.Blog) error {
	return r.store.Set(ctx, constant.CollectionBlogs, blogs)
}

func (r *blogRepo) FindAll(ctx context.Context) ([]*model.Blog, error) {
	return r.load(ctx)
}

func (r *blogRepo) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	blogs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *blogRepo) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	blogs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *blogRepo) Create(ctx context.Context, blog *model.Blog) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	blogs = append(blogs, blog)
	return r.save(ctx, blogs)
}

// Update 按 ID 定位文章后做浅合并：只覆盖调用方显式提供的字段，
// ID 保持不变，UpdatedAt 刷新为当前时间。
func (r *blogRepo) Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error) {
	blogs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var target *model.Blog
	for _, b := range blogs {
		if b.ID == id {
			target = b
			break
		}
	}
	if target == nil {
		return nil, constant.ErrNotFound
	}

	applyBlogUpdate(target, req)
	target.UpdatedAt = time.Now()

	if err := r.save(ctx, blogs); err != nil {
		return nil, err
	}
	return target, nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, b := range blogs {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return constant.ErrNotFound
	}

	blogs = append(blogs[:idx], blogs[idx+1:]...)
	return r.save(ctx, blogs)
}

// IncrementLikes 点赞数 +1。没有幂等键，重复调用重复累加。
func (r *blogRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	blogs, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	for _, b := range blogs {
		if b.ID == id {
			b.Likes++
			if err := r.save(ctx, blogs); err != nil {
				return 0, err
			}
			return b.Likes, nil
		}
	}
	return 0, constant.ErrNotFound
}

func (r *blogRepo) AddComment(ctx context.Context, id string, comment *model.Comment) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, b := range blogs {
		if b.ID == id {
			b.Comments = append(b.Comments, *comment)
			return r.save(ctx, blogs)
		}
	}
	return constant.ErrNotFound
}

// AddViews 批量合并浏览量增量。指向已删除文章的增量被静默丢弃。
func (r *blogRepo) AddViews(ctx context.Context, increments map[string]int) error {
	if len(increments) == 0 {
		return nil
	}
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for _, b := range blogs {
		if n, ok := increments[b.ID]; ok && n > 0 {
			b.Views += n
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.save(ctx, blogs)
}

// applyBlogUpdate 把请求中非 nil 的字段浅合并到文章上。
func applyBlogUpdate(b *model.Blog, req *model.UpdateBlogRequest) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Slug != nil {
		b.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		b.Excerpt = *req.Excerpt
	}
	if req.ContentHTML != nil {
		b.ContentHTML = *req.ContentHTML
	}
	if req.Images != nil {
		b.Images = *req.Images
	}
	if req.Video != nil {
		b.Video = *req.Video
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Featured != nil {
		b.Featured = *req.Featured
	}
	if req.CategoryIDs != nil {
		b.CategoryIDs = *req.CategoryIDs
	}
	if req.Stars != nil {
		b.Stars = *req.Stars
	}
}
