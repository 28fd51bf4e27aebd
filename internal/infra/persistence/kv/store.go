/*
 * @Description: Redis 集合存储实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:18:25
 * @LastEditTime: 2025-09-05 20:03:12
 * @LastEditors: 安知鱼
 */
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"

	"github.com/redis/go-redis/v9"
)

// redisStore 是 CollectionStore 的 Redis 实现：
// 每个命名集合对应一个键，值是整个集合序列化后的 JSON 文档。
// 与历史部署（Vercel KV）的数据布局完全一致，可直接读写存量数据。
type redisStore struct {
	client *redis.Client
}

// NewRedisStore 是 redisStore 的构造函数，通过依赖注入接收 Redis 客户端。
func NewRedisStore(client *redis.Client) repository.CollectionStore {
	return &redisStore{client: client}
}

// NewStoreWithFallback 创建带自动降级的集合存储。
// redisClient 为 nil 时降级到进程内存储（数据不落盘，仅适合开发与测试）。
func NewStoreWithFallback(redisClient *redis.Client) repository.CollectionStore {
	if redisClient == nil {
		log.Println("🔄 集合存储使用进程内实现（Memory Store）")
		return NewMemoryStore()
	}
	log.Println("✅ 集合存储使用 Redis 实现")
	return NewRedisStore(redisClient)
}

// Get 读取命名集合的整个 JSON 文档。键不存在时返回 (nil, nil)，
// 调用方将其视为空集合。
func (s *redisStore) Get(ctx context.Context, name string) (json.RawMessage, error) {
	val, err := s.client.Get(ctx, name).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		log.Printf("错误: 读取集合 '%s' 失败: %v", name, err)
		return nil, fmt.Errorf("读取集合 '%s' 失败: %w", name, err)
	}
	return json.RawMessage(val), nil
}

// Set 序列化并整体替换命名集合。返回 error 即表示本次变更没有生效。
func (s *redisStore) Set(ctx context.Context, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("错误: 序列化集合 '%s' 失败: %v", name, err)
		return fmt.Errorf("序列化集合 '%s' 失败: %w", name, err)
	}
	if err := s.client.Set(ctx, name, data, 0).Err(); err != nil {
		log.Printf("错误: 写入集合 '%s' 失败: %v", name, err)
		return fmt.Errorf("写入集合 '%s' 失败: %w", name, err)
	}
	return nil
}

// Delete 删除命名集合。
func (s *redisStore) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, name).Err(); err != nil {
		log.Printf("错误: 删除集合 '%s' 失败: %v", name, err)
		return fmt.Errorf("删除集合 '%s' 失败: %w", name, err)
	}
	return nil
}
