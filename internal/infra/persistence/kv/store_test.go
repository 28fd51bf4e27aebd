package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_缺失键视为空(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	raw, err := store.Get(ctx, "nothing.json")
	if err != nil {
		t.Fatalf("读取缺失键不应报错: %v", err)
	}
	if raw != nil {
		t.Errorf("缺失键应返回 nil, got %s", raw)
	}
}

func TestMemoryStore_写入后读回(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "x.json", []string{"a", "b"}); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	raw, err := store.Get(ctx, "x.json")
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if len(items) != 2 || items[0] != "a" {
		t.Errorf("读回内容异常: %v", items)
	}

	if err := store.Delete(ctx, "x.json"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if raw, _ := store.Get(ctx, "x.json"); raw != nil {
		t.Error("删除后键应不存在")
	}
}

// 并发的 读 → 改 → 写 之间后写者胜出：终态必须完整等于其中
// 一个写入者的版本，不会出现两个版本的拼接。
func TestMemoryStore_并发写后写者胜出(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			doc := make([]string, 10)
			for j := range doc {
				doc[j] = fmt.Sprintf("writer-%d-item-%d", n, j)
			}
			if err := store.Set(ctx, "contended.json", doc); err != nil {
				t.Errorf("写入失败: %v", err)
			}
		}(i)
	}
	wg.Wait()

	raw, err := store.Get(ctx, "contended.json")
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("终态不是合法 JSON: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("终态长度 = %d, 期望 10", len(items))
	}
	// 所有条目必须来自同一个写入者
	prefix := items[0][:len("writer-0")]
	for _, item := range items {
		if item[:len(prefix)] != prefix {
			t.Fatalf("终态混合了多个写入者的内容: %v", items)
		}
	}
}
