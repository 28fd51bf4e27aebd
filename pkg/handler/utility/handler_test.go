package utility

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-lite/internal/infra/persistence/kv"
	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

func newTestRouter(t *testing.T) (*gin.Engine, repository.CollectionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kv.NewMemoryStore()
	h := NewHandler(store)
	engine := gin.New()
	engine.POST("/api/admin/clear-cache", h.ClearCache)
	return engine, store
}

func TestClearCache_重写键且数据不丢(t *testing.T) {
	engine, store := newTestRouter(t)
	ctx := context.Background()

	categories := []*model.Category{
		{ID: "c1", Name: "技术"},
		{ID: "c2", Name: "生活"},
	}
	if err := store.Set(ctx, constant.CollectionCategories, categories); err != nil {
		t.Fatalf("预置分类失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clear-cache", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if !body.Success || body.Count != 2 {
		t.Errorf("响应异常: %+v", body)
	}

	// 数据原样写回
	repo := kv.NewCategoryRepo(store)
	after, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("读取分类失败: %v", err)
	}
	if len(after) != 2 || after[0].Name != "技术" {
		t.Errorf("刷新后数据丢失: %+v", after)
	}
}

func TestClearCache_空集合计数为零(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clear-cache", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if count, ok := body["count"].(float64); !ok || count != 0 {
		t.Errorf("count = %v, 期望 0", body["count"])
	}
}
