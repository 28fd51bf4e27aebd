package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

func TestCategoryRepo_基本增删改(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepo(NewMemoryStore())

	if err := repo.Create(ctx, &model.Category{ID: "c1", Name: "生活", Slug: "life"}); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}

	newName := "日常"
	updated, err := repo.Update(ctx, "c1", &model.UpdateCategoryRequest{Name: &newName})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Name != newName || updated.Slug != "life" {
		t.Errorf("更新结果异常: %+v", updated)
	}

	if err := repo.Delete(ctx, "c1"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := repo.FindByID(ctx, "c1"); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("删除后查找应返回 ErrNotFound, got %v", err)
	}
}

// 删除分类不级联：文章上的 CategoryIDs 原样保留。
func TestCategoryRepo_删除不清理文章引用(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	categoryRepo := NewCategoryRepo(store)
	blogRepo := NewBlogRepo(store)

	if err := categoryRepo.Create(ctx, &model.Category{ID: "c1", Name: "技术"}); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	b := newBlogFixture("b1", "post")
	b.CategoryIDs = []string{"c1"}
	if err := blogRepo.Create(ctx, b); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	if err := categoryRepo.Delete(ctx, "c1"); err != nil {
		t.Fatalf("删除分类失败: %v", err)
	}

	got, err := blogRepo.FindByID(ctx, "b1")
	if err != nil {
		t.Fatalf("查找文章失败: %v", err)
	}
	if len(got.CategoryIDs) != 1 || got.CategoryIDs[0] != "c1" {
		t.Errorf("悬挂引用应保留, got %v", got.CategoryIDs)
	}
}

func TestLinkCategoryRepo_计数(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkCategoryRepo(NewMemoryStore())

	if n, err := repo.Count(ctx); err != nil || n != 0 {
		t.Fatalf("空集合计数 = (%d, %v), 期望 (0, nil)", n, err)
	}

	if err := repo.Create(ctx, &model.LinkCategory{ID: "g1", Name: "友链"}); err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	if err := repo.Create(ctx, &model.LinkCategory{ID: "g2", Name: "工具", SortOrder: 1}); err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}

	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("计数 = %d, 期望 2", n)
	}
}

// 删除链接分组后，组内链接保留原 CategoryID。
func TestLinkRepo_分组删除后链接保留(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	linkRepo := NewLinkRepo(store)
	groupRepo := NewLinkCategoryRepo(store)

	if err := groupRepo.Create(ctx, &model.LinkCategory{ID: "g1", Name: "友链"}); err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	gid := "g1"
	if err := linkRepo.Create(ctx, &model.Link{ID: "l1", Title: "博客", Href: "https://example.com", CategoryID: &gid}); err != nil {
		t.Fatalf("创建链接失败: %v", err)
	}

	if err := groupRepo.Delete(ctx, "g1"); err != nil {
		t.Fatalf("删除分组失败: %v", err)
	}

	links, err := linkRepo.FindAll(ctx)
	if err != nil {
		t.Fatalf("读取链接失败: %v", err)
	}
	if len(links) != 1 || links[0].CategoryID == nil || *links[0].CategoryID != "g1" {
		t.Errorf("链接应保留悬挂的分组引用, got %+v", links)
	}
}

func TestColorRepo_空与整体替换(t *testing.T) {
	ctx := context.Background()
	repo := NewColorRepo(NewMemoryStore())

	palette, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if palette == nil || len(palette) != 0 {
		t.Errorf("未设置时应返回空映射, got %v", palette)
	}

	want := model.ColorPalette{"primary": "#425AEF", "background": "#F7F9FE"}
	if err := repo.Replace(ctx, want); err != nil {
		t.Fatalf("替换失败: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if got["primary"] != "#425AEF" || got["background"] != "#F7F9FE" {
		t.Errorf("读回配色异常: %v", got)
	}
}
