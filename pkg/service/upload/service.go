/*
 * @Description: 后台图片/附件上传服务
 * @Author: 安知鱼
 * @Date: 2025-09-03 10:30:21
 * @LastEditTime: 2025-09-07 14:55:02
 * @LastEditors: 安知鱼
 */
package upload

import (
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/internal/infra/storage"
)

// 文件名中除字母数字和 ._- 之外的字符统一替换为下划线
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Result 是一次上传的结果：可公开访问的 URL 和落盘文件名。
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Service 定义了上传业务接口。
type Service interface {
	// Save 以「毫秒时间戳-净化后原名」作为文件名落盘，
	// 时间戳前缀保证同名文件互不覆盖。
	Save(originalName string, r io.Reader) (*Result, error)
}

type service struct {
	provider *storage.LocalProvider
}

// NewService 是上传服务的构造函数。
func NewService(provider *storage.LocalProvider) Service {
	return &service{provider: provider}
}

func (s *service) Save(originalName string, r io.Reader) (*Result, error) {
	sanitized := unsafeChars.ReplaceAllString(originalName, "_")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitized)

	if err := s.provider.Save(filename, r); err != nil {
		return nil, fmt.Errorf("保存上传文件失败: %w", err)
	}

	return &Result{
		URL:      "/uploads/" + filename,
		Filename: filename,
	}, nil
}
