/*
 * @Description: 博客文章业务逻辑
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:44:27
 * @LastEditTime: 2025-09-12 20:31:55
 * @LastEditors: 安知鱼
 */
package blog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/utility"
)

// ViewCountKeyPrefix 是浏览量计数在缓存中的键前缀，
// 后台同步任务按该前缀扫描并回写。
const ViewCountKeyPrefix = "anheyu-lite:blog:view_count:"

// Service 定义了文章相关的业务接口。
type Service interface {
	// List 返回前台分页列表，过滤条件之间为 AND 关系。
	List(ctx context.Context, req *model.ListBlogsRequest) (*model.BlogListResponse, error)
	// ListAll 返回全部文章（含草稿），供后台管理使用。
	ListAll(ctx context.Context) ([]*model.Blog, error)
	// GetBySlug 按 slug 取文章详情，命中时异步累计一次浏览量。
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error)
	Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id string) error
	// Like 给文章点赞并返回最新点赞数。调用一次加一，不做幂等。
	Like(ctx context.Context, id string) (int, error)
	AddComment(ctx context.Context, id string, req *model.CreateCommentRequest) (*model.Comment, error)
}

type service struct {
	repo  repository.BlogRepository
	cache utility.CacheService
}

// NewService 是文章服务的构造函数。
func NewService(repo repository.BlogRepository, cache utility.CacheService) Service {
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func (s *service) List(ctx context.Context, req *model.ListBlogsRequest) (*model.BlogListResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取文章集合失败: %w", err)
	}

	filtered := make([]*model.Blog, 0, len(all))
	for _, b := range all {
		if req.Status != nil && b.Status != *req.Status {
			continue
		}
		if req.Featured != nil && b.Featured != *req.Featured {
			continue
		}
		if req.Category != "" && !containsCategory(b.CategoryIDs, req.Category) {
			continue
		}
		filtered = append(filtered, b)
	}

	page := req.GetPage()
	limit := req.GetLimit()
	total := len(filtered)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &model.BlogListResponse{
		Blogs: filtered[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

func (s *service) ListAll(ctx context.Context) ([]*model.Blog, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	b, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 浏览量先进缓存计数，由后台任务批量回写集合，
	// 避免每次详情页访问都重写整个 blog.json。
	if _, err := s.cache.Increment(ctx, ViewCountKeyPrefix+b.ID); err != nil {
		log.Printf("[BlogService] 累计文章 %s 浏览量失败: %v", b.ID, err)
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	now := time.Now()

	slug := req.Slug
	if slug == "" {
		slug = idgen.Slugify(req.Title)
	}

	b := &model.Blog{
		ID:          idgen.NewID(),
		Slug:        slug,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		ContentHTML: req.ContentHTML,
		Images:      req.Images,
		Video:       req.Video,
		Author:      req.Author,
		Status:      model.BlogStatusPublished,
		CategoryIDs: req.CategoryIDs,
		Comments:    []model.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.Images == nil {
		b.Images = []string{}
	}
	if b.CategoryIDs == nil {
		b.CategoryIDs = []string{}
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Featured != nil {
		b.Featured = *req.Featured
	}
	if req.Stars != nil {
		b.Stars = *req.Stars
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Like(ctx context.Context, id string) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}

func (s *service) AddComment(ctx context.Context, id string, req *model.CreateCommentRequest) (*model.Comment, error) {
	comment := &model.Comment{
		ID:        idgen.NewID(),
		Author:    req.Author,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddComment(ctx, id, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func containsCategory(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
