/*
 * @Description: 本地磁盘存储提供者
 * @Author: 安知鱼
 * @Date: 2025-09-03 10:12:46
 * @LastEditTime: 2025-09-03 10:12:46
 * @LastEditors: 安知鱼
 */
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalProvider 把上传内容写到本地磁盘的一个固定目录，
// 目录由配置 Upload.Dir 指定，路由层将其映射到 /uploads。
type LocalProvider struct {
	dir string
}

// NewLocalProvider 创建本地存储提供者并确保目录存在。
func NewLocalProvider(dir string) (*LocalProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录 %s 失败: %w", dir, err)
	}
	return &LocalProvider{dir: dir}, nil
}

// Dir 返回上传根目录，供路由注册静态服务。
func (p *LocalProvider) Dir() string {
	return p.dir
}

// Save 将内容写入目录下的 filename。filename 由调用方负责净化，
// 这里只拒绝任何带路径分隔的名字。
func (p *LocalProvider) Save(filename string, r io.Reader) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("非法的文件名: %s", filename)
	}

	dst, err := os.Create(filepath.Join(p.dir, filename))
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	return nil
}
