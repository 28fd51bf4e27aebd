/*
 * @Description: 进程内集合存储实现（Redis 不可用时的降级方案，也用于测试）
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:24:50
 * @LastEditTime: 2025-09-02 11:24:58
 * @LastEditors: 安知鱼
 */
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

// memoryStore 把每个集合的 JSON 文档保存在进程内存中。
// 锁只保护单次 Get / Set 的完整性；与 Redis 实现一样，
// 并发的 读 → 改 → 写 序列之间依旧是后写者胜出。
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore 创建进程内集合存储实例。
func NewMemoryStore() repository.CollectionStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, name string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[name]
	if !ok {
		return nil, nil
	}
	// 返回副本，避免调用方持有内部切片
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化集合 '%s' 失败: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}
