/*
 * @Description: 站点配色方案业务逻辑
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:55:08
 * @LastEditTime: 2025-09-02 16:55:08
 * @LastEditors: 安知鱼
 */
package color

import (
	"context"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
)

// Service 定义了配色方案的业务接口。配色是全站单例，整体读写。
type Service interface {
	Get(ctx context.Context) (model.ColorPalette, error)
	// Replace 整体替换配色并返回保存后的方案。
	Replace(ctx context.Context, palette model.ColorPalette) (model.ColorPalette, error)
}

type service struct {
	repo repository.ColorRepository
}

// NewService 是配色服务的构造函数。
func NewService(repo repository.ColorRepository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (model.ColorPalette, error) {
	return s.repo.Get(ctx)
}

func (s *service) Replace(ctx context.Context, palette model.ColorPalette) (model.ColorPalette, error) {
	if palette == nil {
		palette = model.ColorPalette{}
	}
	if err := s.repo.Replace(ctx, palette); err != nil {
		return nil, err
	}
	return palette, nil
}
