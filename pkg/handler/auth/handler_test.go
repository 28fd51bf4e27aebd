package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	auth_service "github.com/anzhiyu-c/anheyu-lite/pkg/service/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := auth_service.NewSessionService("test-secret", "admin", "admin123")
	if err != nil {
		t.Fatalf("构造会话服务失败: %v", err)
	}
	h := NewHandler(svc)

	engine := gin.New()
	engine.POST("/api/auth/login", h.Login)
	engine.POST("/api/auth/logout", h.Logout)
	engine.GET("/api/auth/verify", h.Verify)
	return engine
}

func postLogin(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth_service.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	engine := newTestRouter(t)

	testCases := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"缺少字段", `{"username":"admin"}`, http.StatusBadRequest},
		{"错误密码", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"错误用户名", `{"username":"root","password":"admin123"}`, http.StatusUnauthorized},
		{"正确凭据", `{"username":"admin","password":"admin123"}`, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postLogin(engine, tc.body)
			if w.Code != tc.wantCode {
				t.Errorf("状态码 = %d, 期望 %d, body: %s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusOK {
				c := sessionCookie(w)
				if c == nil || c.Value == "" {
					t.Error("登录成功应设置会话 Cookie")
				} else {
					if !c.HttpOnly {
						t.Error("会话 Cookie 必须是 HttpOnly")
					}
					if c.SameSite != http.SameSiteLaxMode {
						t.Errorf("SameSite = %v, 期望 Lax", c.SameSite)
					}
				}
			} else if c := sessionCookie(w); c != nil && c.Value != "" {
				t.Error("失败的登录不应设置会话 Cookie")
			}
		})
	}
}

func TestVerify_登录后有效(t *testing.T) {
	engine := newTestRouter(t)

	login := postLogin(engine, `{"username":"admin","password":"admin123"}`)
	cookie := sessionCookie(login)
	if cookie == nil {
		t.Fatal("登录未返回会话 Cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if !body["authenticated"] {
		t.Error("登录后的会话应校验通过")
	}
}

func TestVerify_无会话返回401(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("状态码 = %d, 期望 401", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if body["authenticated"] {
		t.Error("无会话不应校验通过")
	}
}

func TestLogout_立即失效(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	c := sessionCookie(w)
	if c == nil || c.MaxAge >= 0 {
		t.Error("登出应下发立即过期的会话 Cookie")
	}
}
