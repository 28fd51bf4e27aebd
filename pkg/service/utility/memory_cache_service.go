/*
 * @Description: 内存缓存服务实现（用于 Redis 不可用时的降级方案）
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:10:05
 * @LastEditTime: 2025-09-06 18:22:40
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"path"
	"strconv"
	"sync"
	"time"
)

// cacheItem 缓存项结构
type cacheItem struct {
	value      string
	expiration time.Time
	hasExpiry  bool
}

// isExpired 检查是否过期
func (item *cacheItem) isExpired() bool {
	if !item.hasExpiry {
		return false
	}
	return time.Now().After(item.expiration)
}

// memoryCacheService 是基于内存的缓存服务实现
type memoryCacheService struct {
	mu   sync.Mutex
	data map[string]*cacheItem
}

// NewMemoryCacheService 创建内存缓存服务实例
func NewMemoryCacheService() CacheService {
	return &memoryCacheService{
		data: make(map[string]*cacheItem),
	}
}

// Set 设置缓存
func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &cacheItem{value: toString(value)}
	if expiration > 0 {
		item.expiration = time.Now().Add(expiration)
		item.hasExpiry = true
	}
	s.data[key] = item
	return nil
}

// Get 获取缓存，键不存在或已过期时返回空字符串
func (s *memoryCacheService) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.data[key]
	if !ok {
		return "", nil
	}
	if item.isExpired() {
		delete(s.data, key)
		return "", nil
	}
	return item.value, nil
}

// Delete 删除缓存
func (s *memoryCacheService) Delete(ctx context.Context, key ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range key {
		delete(s.data, k)
	}
	return nil
}

// Increment 原子递增，键不存在时从 0 开始
func (s *memoryCacheService) Increment(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if item, ok := s.data[key]; ok && !item.isExpired() {
		current, _ = strconv.ParseInt(item.value, 10, 64)
	}
	current++
	s.data[key] = &cacheItem{value: strconv.FormatInt(current, 10)}
	return current, nil
}

// Scan 按 glob 模式匹配所有键
func (s *memoryCacheService) Scan(ctx context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for k, item := range s.data {
		if item.isExpired() {
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// GetAndDeleteMany 获取多个键的计数值并删除它们
func (s *memoryCacheService) GetAndDeleteMany(ctx context.Context, keys []string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make(map[string]int)
	for _, k := range keys {
		item, ok := s.data[k]
		if !ok || item.isExpired() {
			continue
		}
		if val, err := strconv.Atoi(item.value); err == nil {
			results[k] = val
		}
		delete(s.data, k)
	}
	return results, nil
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
