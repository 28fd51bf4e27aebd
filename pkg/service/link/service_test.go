package link

import (
	"context"
	"errors"
	"testing"

	"github.com/anzhiyu-c/anheyu-lite/internal/infra/persistence/kv"
	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

func newTestService() Service {
	store := kv.NewMemoryStore()
	return NewService(kv.NewLinkRepo(store), kv.NewLinkCategoryRepo(store))
}

func TestCreateCategory_名称校验(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	testCases := []struct {
		name    string
		reqName string
		wantErr bool
	}{
		{"正常名称", "友情链接", false},
		{"空名称", "", true},
		{"全空白名称", "   ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCategory(ctx, &model.CreateLinkCategoryRequest{Name: tc.reqName})
			if tc.wantErr {
				if !errors.Is(err, constant.ErrBadRequest) {
					t.Errorf("期望 ErrBadRequest, got %v", err)
				}
			} else if err != nil {
				t.Errorf("不期望报错, got %v", err)
			}
		})
	}
}

func TestCreateCategory_排序默认排到末尾(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, &model.CreateLinkCategoryRequest{Name: "第一组"})
	if err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	if first.SortOrder != 0 {
		t.Errorf("首个分组 SortOrder = %d, 期望 0", first.SortOrder)
	}

	second, err := svc.CreateCategory(ctx, &model.CreateLinkCategoryRequest{Name: "第二组"})
	if err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	if second.SortOrder != 1 {
		t.Errorf("第二个分组 SortOrder = %d, 期望 1", second.SortOrder)
	}

	// 显式指定时不走默认值
	explicit := 99
	third, err := svc.CreateCategory(ctx, &model.CreateLinkCategoryRequest{Name: "置底组", SortOrder: &explicit})
	if err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	if third.SortOrder != 99 {
		t.Errorf("显式 SortOrder 被覆盖: %d", third.SortOrder)
	}
}

func TestLink_创建与整体替换更新(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	gid := "g1"
	l, err := svc.CreateLink(ctx, &model.CreateLinkRequest{Title: "博客", Href: "https://example.com", CategoryID: &gid})
	if err != nil {
		t.Fatalf("创建链接失败: %v", err)
	}
	if l.ID == "" || l.CreatedAt.IsZero() {
		t.Error("链接应生成 ID 和时间戳")
	}

	// 更新时未提供 categoryId 即清空分组（整体替换语义）
	updated, err := svc.UpdateLink(ctx, l.ID, &model.UpdateLinkRequest{Title: "新标题", Href: "https://example.org"})
	if err != nil {
		t.Fatalf("更新链接失败: %v", err)
	}
	if updated.Title != "新标题" || updated.Href != "https://example.org" {
		t.Errorf("更新结果异常: %+v", updated)
	}
	if updated.CategoryID != nil {
		t.Errorf("未提供的分组应被清空, got %v", *updated.CategoryID)
	}

	if _, err := svc.UpdateLink(ctx, "nope", &model.UpdateLinkRequest{Title: "x", Href: "y"}); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("更新不存在的链接应返回 ErrNotFound, got %v", err)
	}
}
