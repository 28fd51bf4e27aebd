/*
 * @Description: 管理员会话服务（凭据校验 + Cookie 会话生命周期）
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:05:19
 * @LastEditTime: 2025-09-06 22:40:37
 * @LastEditors: 安知鱼
 */
package auth

import (
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionCookieName 是承载会话的 Cookie 名称，沿用历史前端的约定。
	SessionCookieName = "admin_session"

	// IdleTimeout 是空闲超时：距上次管理操作超过该时长后，
	// 会话在下一次校验时自我销毁（没有后台清扫）。
	IdleTimeout = 10 * time.Minute

	// MaxLifetime 是会话的绝对上限，滑动窗口不会越过它。
	MaxLifetime = 7 * 24 * time.Hour
)

// SessionClaims 是写入会话 Cookie 的 JWT 载荷。
// 时间戳使用毫秒，与历史数据保持一致。
type SessionClaims struct {
	Token        string `json:"token"`
	CreatedAt    int64  `json:"createdAt"`
	LastActivity int64  `json:"lastActivity"`
	jwt.RegisteredClaims
}

// SessionService 定义了管理员凭据校验与会话生命周期的接口。
// 校验失败一律表现为 constant.ErrInvalidSession，不向调用方抛出
// 底层原因（原因记录到日志）。
type SessionService interface {
	VerifyCredentials(username, password string) bool
	// Issue 签发一个全新的会话，返回 Cookie 值。
	Issue(now time.Time) (string, error)
	// Validate 校验 Cookie 值；空闲超时或超过绝对上限的会话视为无效。
	Validate(cookieValue string, now time.Time) (*SessionClaims, error)
	// Refresh 将 lastActivity 重置为 now 并重新签名（滑动窗口续期）。
	Refresh(claims *SessionClaims, now time.Time) (string, error)
}

type sessionService struct {
	secret       []byte
	username     string
	passwordHash []byte
}

// NewSessionService 是 sessionService 的构造函数。
// 管理员密码在构造时哈希一次，登录路径上只做 bcrypt 比较。
func NewSessionService(secret, username, password string) (SessionService, error) {
	if secret == "" {
		return nil, fmt.Errorf("会话签名密钥不能为空")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("哈希管理员密码失败: %w", err)
	}
	return &sessionService{
		secret:       []byte(secret),
		username:     username,
		passwordHash: hash,
	}, nil
}

// VerifyCredentials 校验管理员用户名和密码。
// 用户名使用常数时间比较，密码走 bcrypt。
func (s *sessionService) VerifyCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

func (s *sessionService) Issue(now time.Time) (string, error) {
	millis := now.UnixMilli()
	claims := &SessionClaims{
		Token:        uuid.NewString(),
		CreatedAt:    millis,
		LastActivity: millis,
	}
	return s.sign(claims)
}

func (s *sessionService) Validate(cookieValue string, now time.Time) (*SessionClaims, error) {
	if cookieValue == "" {
		return nil, constant.ErrInvalidSession
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(cookieValue, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名算法: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		log.Printf("[Session] 会话 Cookie 解析失败，按未登录处理: %v", err)
		return nil, constant.ErrInvalidSession
	}

	if claims.Token == "" || claims.CreatedAt <= 0 || claims.LastActivity <= 0 {
		log.Printf("[Session] 会话载荷不完整，按未登录处理")
		return nil, constant.ErrInvalidSession
	}

	millis := now.UnixMilli()
	if millis-claims.LastActivity > IdleTimeout.Milliseconds() {
		log.Printf("[Session] 会话空闲超时（上次活动 %d），已失效", claims.LastActivity)
		return nil, constant.ErrInvalidSession
	}
	if millis-claims.CreatedAt > MaxLifetime.Milliseconds() {
		log.Printf("[Session] 会话超过绝对存活上限（创建于 %d），已失效", claims.CreatedAt)
		return nil, constant.ErrInvalidSession
	}

	return claims, nil
}

func (s *sessionService) Refresh(claims *SessionClaims, now time.Time) (string, error) {
	refreshed := &SessionClaims{
		Token:        claims.Token,
		CreatedAt:    claims.CreatedAt,
		LastActivity: now.UnixMilli(),
	}
	return s.sign(refreshed)
}

func (s *sessionService) sign(claims *SessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("签名会话失败: %w", err)
	}
	return signed, nil
}
