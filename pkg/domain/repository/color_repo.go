package repository

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
)

// ColorRepository 定义了站点配色方案（单例）的数据访问接口。
type ColorRepository interface {
	// Get 在配色尚未设置时返回空映射而不是错误。
	Get(ctx context.Context) (model.ColorPalette, error)
	// Replace 整体替换配色方案。
	Replace(ctx context.Context, palette model.ColorPalette) error
}
