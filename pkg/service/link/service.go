/*
 * @Description: 导航链接与链接分组业务逻辑
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:41:50
 * @LastEditTime: 2025-09-08 11:26:17
 * @LastEditors: 安知鱼
 */
package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/idgen"
)

// Service 定义了链接及其分组的业务接口。
type Service interface {
	ListLinks(ctx context.Context) ([]*model.Link, error)
	CreateLink(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error)
	UpdateLink(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error)
	DeleteLink(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*model.LinkCategory, error)
	// CreateCategory 要求非空名称；sortOrder 缺省为当前分组数量，
	// 新分组默认排在末尾。
	CreateCategory(ctx context.Context, req *model.CreateLinkCategoryRequest) (*model.LinkCategory, error)
	UpdateCategory(ctx context.Context, id string, req *model.UpdateLinkCategoryRequest) (*model.LinkCategory, error)
	// DeleteCategory 只删除分组本身，组内链接保留原 CategoryID。
	DeleteCategory(ctx context.Context, id string) error
}

type service struct {
	linkRepo     repository.LinkRepository
	categoryRepo repository.LinkCategoryRepository
}

// NewService 是链接服务的构造函数。
func NewService(linkRepo repository.LinkRepository, categoryRepo repository.LinkCategoryRepository) Service {
	return &service{
		linkRepo:     linkRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *service) ListLinks(ctx context.Context) ([]*model.Link, error) {
	return s.linkRepo.FindAll(ctx)
}

func (s *service) CreateLink(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error) {
	l := &model.Link{
		ID:         idgen.NewID(),
		Title:      req.Title,
		Href:       req.Href,
		CategoryID: req.CategoryID,
		CreatedAt:  time.Now(),
	}
	if err := s.linkRepo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("创建链接失败: %w", err)
	}
	return l, nil
}

func (s *service) UpdateLink(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error) {
	return s.linkRepo.Update(ctx, id, req)
}

func (s *service) DeleteLink(ctx context.Context, id string) error {
	return s.linkRepo.Delete(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*model.LinkCategory, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *service) CreateCategory(ctx context.Context, req *model.CreateLinkCategoryRequest) (*model.LinkCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: 分组名称不能为空", constant.ErrBadRequest)
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		count, err := s.categoryRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("读取链接分组数量失败: %w", err)
		}
		sortOrder = count
	}

	c := &model.LinkCategory{
		ID:        idgen.NewID(),
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("创建链接分组失败: %w", err)
	}
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req *model.UpdateLinkCategoryRequest) (*model.LinkCategory, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: 分组名称不能为空", constant.ErrBadRequest)
	}
	return s.categoryRepo.Update(ctx, id, req)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}
