package upload

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/anzhiyu-c/anheyu-lite/internal/infra/storage"
)

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	dir := t.TempDir()
	provider, err := storage.NewLocalProvider(dir)
	if err != nil {
		t.Fatalf("初始化本地存储失败: %v", err)
	}
	return NewService(provider), dir
}

func TestSave_文件名带时间戳前缀且被净化(t *testing.T) {
	svc, dir := newTestService(t)

	result, err := svc.Save("我的 照片 (1).png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	// 文件名形如 <毫秒时间戳>-<净化后的原名>
	pattern := regexp.MustCompile(`^\d{13}-[a-zA-Z0-9._-]+$`)
	if !pattern.MatchString(result.Filename) {
		t.Errorf("文件名格式异常: %q", result.Filename)
	}
	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("扩展名应保留: %q", result.Filename)
	}
	if result.URL != "/uploads/"+result.Filename {
		t.Errorf("URL = %q, 期望 /uploads/%s", result.URL, result.Filename)
	}

	data, err := os.ReadFile(filepath.Join(dir, result.Filename))
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Errorf("落盘内容异常: %q", data)
	}
}

func TestSave_路径穿越被拒绝(t *testing.T) {
	svc, dir := newTestService(t)

	result, err := svc.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}
	// 斜杠和点号之外的字符被替换，文件只会落在上传目录内
	if strings.Contains(result.Filename, "/") {
		t.Errorf("文件名不应包含路径分隔符: %q", result.Filename)
	}
	if _, err := os.Stat(filepath.Join(dir, result.Filename)); err != nil {
		t.Errorf("文件应落在上传目录内: %v", err)
	}
}
