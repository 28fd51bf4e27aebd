/*
 * @Description: 站点配色的 KV 仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:55:44
 * @LastEditTime: 2025-09-02 11:55:51
 * @LastEditors: 安知鱼
 */
package kv

import (
	"context"
	"encoding/json"
	"log"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

type colorRepo struct {
	store repository.CollectionStore
}

// NewColorRepo 是 colorRepo 的构造函数。
func NewColorRepo(store repository.CollectionStore) repository.ColorRepository {
	return &colorRepo{store: store}
}

// Get 读取配色方案；尚未设置或内容损坏时返回空映射。
func (r *colorRepo) Get(ctx context.Context) (model.ColorPalette, error) {
	raw, err := r.store.Get(ctx, constant.CollectionColorPalette)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return model.ColorPalette{}, nil
	}

	var palette model.ColorPalette
	if err := json.Unmarshal(raw, &palette); err != nil {
		log.Printf("警告: 集合 '%s' 内容无法解析，按空配色处理: %v", constant.CollectionColorPalette, err)
		return model.ColorPalette{}, nil
	}
	if palette == nil {
		return model.ColorPalette{}, nil
	}
	return palette, nil
}

func (r *colorRepo) Replace(ctx context.Context, palette model.ColorPalette) error {
	return r.store.Set(ctx, constant.CollectionColorPalette, palette)
}
