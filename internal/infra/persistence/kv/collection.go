package kv

import (
	"context"
	"encoding/json"
	"log"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

// loadSlice 读取并反序列化一个列表型集合。
// 键不存在、值为 JSON null 或内容损坏时均返回空切片：
// 对调用方而言「不存在」「为空」「读不出来」都呈现为空集合。
func loadSlice[T any](ctx context.Context, store repository.CollectionStore, name string) ([]*T, error) {
	raw, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []*T{}, nil
	}

	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("警告: 集合 '%s' 内容无法解析，按空集合处理: %v", name, err)
		return []*T{}, nil
	}
	if items == nil {
		return []*T{}, nil
	}
	return items, nil
}
