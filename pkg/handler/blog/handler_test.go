package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-lite/internal/infra/persistence/kv"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	blog_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/blog"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/utility"
)

func newTestRouter(t *testing.T) (*gin.Engine, repository.BlogRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := kv.NewBlogRepo(kv.NewMemoryStore())
	svc := blog_service.NewService(repo, utility.NewMemoryCacheService())
	h := NewHandler(svc)

	engine := gin.New()
	engine.GET("/api/blogs", h.List)
	engine.GET("/api/blogs/:slug", h.GetBySlug)
	engine.POST("/api/blogs/id/:id/like", h.Like)
	engine.POST("/api/blogs/id/:id/comment", h.AddComment)
	return engine, repo
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGetBySlug_未找到返回404(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/blogs/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是 JSON: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("错误响应应为 {error: ...}, got %s", w.Body.String())
	}
}

func TestAddComment_校验失败不触碰存储(t *testing.T) {
	engine, repo := newTestRouter(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Blog{ID: "b1", Slug: "post", Comments: []model.Comment{}}); err != nil {
		t.Fatalf("预置文章失败: %v", err)
	}

	testCases := []struct {
		name string
		body string
	}{
		{"缺少 author", `{"text":"你好"}`},
		{"缺少 text", `{"author":"访客"}`},
		{"两者皆空", `{"author":"","text":""}`},
		{"空请求体", `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/blogs/id/b1/comment", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("状态码 = %d, 期望 400", w.Code)
			}
		})
	}

	// 评论数保持为 0
	b, err := repo.FindByID(ctx, "b1")
	if err != nil {
		t.Fatalf("查找文章失败: %v", err)
	}
	if len(b.Comments) != 0 {
		t.Errorf("校验失败的请求不应写入评论, got %d 条", len(b.Comments))
	}
}

func TestAddComment_成功返回201(t *testing.T) {
	engine, repo := newTestRouter(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Blog{ID: "b1", Slug: "post", Comments: []model.Comment{}}); err != nil {
		t.Fatalf("预置文章失败: %v", err)
	}

	w := doJSON(t, engine, http.MethodPost, "/api/blogs/id/b1/comment", `{"author":"访客","text":"写得好"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body: %s", w.Code, w.Body.String())
	}

	var comment model.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &comment); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if comment.ID == "" || comment.Author != "访客" {
		t.Errorf("评论响应异常: %+v", comment)
	}

	// 未知 ID 返回 404
	w = doJSON(t, engine, http.MethodPost, "/api/blogs/id/ghost/comment", `{"author":"访客","text":"?"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("未知文章评论状态码 = %d, 期望 404", w.Code)
	}
}

func TestLike_返回最新点赞数(t *testing.T) {
	engine, repo := newTestRouter(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Blog{ID: "b1", Slug: "post"}); err != nil {
		t.Fatalf("预置文章失败: %v", err)
	}

	for want := 1; want <= 2; want++ {
		w := doJSON(t, engine, http.MethodPost, "/api/blogs/id/b1/like", "")
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d, 期望 200", w.Code)
		}
		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if body["likes"] != want {
			t.Errorf("likes = %d, 期望 %d", body["likes"], want)
		}
	}
}

func TestList_响应结构(t *testing.T) {
	engine, repo := newTestRouter(t)
	ctx := context.Background()

	for _, b := range []*model.Blog{
		{ID: "b1", Slug: "a", Status: 1},
		{ID: "b2", Slug: "b", Status: 0},
	} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("预置文章失败: %v", err)
		}
	}

	w := doJSON(t, engine, http.MethodGet, "/api/blogs?status=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	var body model.BlogListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if body.Total != 1 || body.Page != 1 || body.Limit != 10 || body.Pages != 1 {
		t.Errorf("分页元数据异常: %+v", body)
	}
	if len(body.Blogs) != 1 || body.Blogs[0].ID != "b1" {
		t.Errorf("过滤结果异常: %+v", body.Blogs)
	}
}
