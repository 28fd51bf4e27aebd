/*
 * @Description: 集合存储契约
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:44:02
 * @LastEditTime: 2025-09-02 10:44:09
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"encoding/json"
)

// CollectionStore 以单个命名集合为粒度读写 JSON 文档。
//
// Get 在键不存在时返回 (nil, nil)：对列表型集合而言，「不存在」与
// 「空集合」在契约上不可区分，调用方不应依赖二者的差异。
// Set 整体替换命名集合的值；对后续的 Get 而言写入是原子的，
// 不会观察到半写状态。并发的 读 → 改 → 写 序列之间没有任何
// 串行化保证，后写者覆盖先写者（已知并接受的限制）。
type CollectionStore interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Set(ctx context.Context, name string, value any) error
	// Delete 删除命名集合，仅供缓存重建类管理操作使用。
	Delete(ctx context.Context, name string) error
}
