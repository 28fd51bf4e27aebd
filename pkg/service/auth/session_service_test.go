package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
)

func newTestService(t *testing.T) SessionService {
	t.Helper()
	svc, err := NewSessionService("test-secret", "admin", "admin123")
	if err != nil {
		t.Fatalf("构造会话服务失败: %v", err)
	}
	return svc
}

func TestVerifyCredentials(t *testing.T) {
	svc := newTestService(t)

	testCases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"正确凭据", "admin", "admin123", true},
		{"错误密码", "admin", "wrong", false},
		{"错误用户名", "root", "admin123", false},
		{"全部为空", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.VerifyCredentials(tc.username, tc.password); got != tc.want {
				t.Errorf("VerifyCredentials(%q, %q) = %v, 期望 %v", tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestSession_签发后立即有效(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	cookie, err := svc.Issue(now)
	if err != nil {
		t.Fatalf("签发会话失败: %v", err)
	}

	claims, err := svc.Validate(cookie, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("新会话应当有效: %v", err)
	}
	if claims.Token == "" {
		t.Error("会话令牌不应为空")
	}
	if claims.CreatedAt != now.UnixMilli() {
		t.Errorf("createdAt = %d, 期望 %d", claims.CreatedAt, now.UnixMilli())
	}
}

func TestSession_空闲超时(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	cookie, err := svc.Issue(now)
	if err != nil {
		t.Fatalf("签发会话失败: %v", err)
	}

	// 空闲 9 分钟仍有效
	if _, err := svc.Validate(cookie, now.Add(9*time.Minute)); err != nil {
		t.Errorf("空闲 9 分钟的会话应当有效: %v", err)
	}

	// 超过 10 分钟空闲后失效
	if _, err := svc.Validate(cookie, now.Add(11*time.Minute)); !errors.Is(err, constant.ErrInvalidSession) {
		t.Errorf("空闲 11 分钟的会话应当失效, got %v", err)
	}
}

func TestSession_续期滑动窗口(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	cookie, err := svc.Issue(now)
	if err != nil {
		t.Fatalf("签发会话失败: %v", err)
	}
	claims, err := svc.Validate(cookie, now.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("会话应当有效: %v", err)
	}

	// 第 5 分钟续期一次，原 cookie 在第 11 分钟已死，新 cookie 仍活着
	refreshed, err := svc.Refresh(claims, now.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("续期失败: %v", err)
	}
	newClaims, err := svc.Validate(refreshed, now.Add(14*time.Minute))
	if err != nil {
		t.Fatalf("续期后的会话在第 14 分钟应当有效: %v", err)
	}
	if newClaims.Token != claims.Token {
		t.Error("续期不应更换会话令牌")
	}
	if newClaims.CreatedAt != claims.CreatedAt {
		t.Error("续期不应改变 createdAt")
	}
}

func TestSession_绝对存活上限(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	cookie, err := svc.Issue(now)
	if err != nil {
		t.Fatalf("签发会话失败: %v", err)
	}
	claims, err := svc.Validate(cookie, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("会话应当有效: %v", err)
	}

	// 即便刚刚续期过，超过 7 天的会话也必须失效
	eighthDay := now.Add(7*24*time.Hour + time.Hour)
	refreshed, err := svc.Refresh(claims, eighthDay.Add(-time.Minute))
	if err != nil {
		t.Fatalf("续期失败: %v", err)
	}
	if _, err := svc.Validate(refreshed, eighthDay); !errors.Is(err, constant.ErrInvalidSession) {
		t.Errorf("超过绝对上限的会话应当失效, got %v", err)
	}
}

func TestSession_畸形Cookie按未登录处理(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	testCases := []struct {
		name   string
		cookie string
	}{
		{"空值", ""},
		{"乱码", "not-a-jwt"},
		{"签名不符", "eyJhbGciOiJIUzI1NiJ9.eyJ0b2tlbiI6IngifQ.invalid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Validate(tc.cookie, now); !errors.Is(err, constant.ErrInvalidSession) {
				t.Errorf("Validate(%q) 应返回无效会话, got %v", tc.cookie, err)
			}
		})
	}
}

func TestSession_不同密钥签发的会话无效(t *testing.T) {
	svc := newTestService(t)
	other, err := NewSessionService("another-secret", "admin", "admin123")
	if err != nil {
		t.Fatalf("构造会话服务失败: %v", err)
	}

	now := time.Now()
	cookie, err := other.Issue(now)
	if err != nil {
		t.Fatalf("签发会话失败: %v", err)
	}
	if _, err := svc.Validate(cookie, now); !errors.Is(err, constant.ErrInvalidSession) {
		t.Errorf("异钥会话应当失效, got %v", err)
	}
}
