/*
 * @Description: 管理员登录/登出/会话校验 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 15:21:40
 * @LastEditTime: 2025-09-10 22:05:18
 * @LastEditors: 安知鱼
 */
package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理管理员认证相关的 API 请求。
type Handler struct {
	sessionSvc auth.SessionService
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(sessionSvc auth.SessionService) *Handler {
	return &Handler{sessionSvc: sessionSvc}
}

// Login 处理管理员登录。凭据正确时签发会话 Cookie，
// 同时把会话令牌放进响应体，方便非浏览器客户端保存。
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !h.sessionSvc.VerifyCredentials(req.Username, req.Password) {
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.sessionSvc.Issue(time.Now())
	if err != nil {
		log.Printf("[AuthHandler] 签发会话失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	auth.SetSessionCookie(c, token)
	response.Success(c, gin.H{"success": true, "token": token})
}

// Logout 立即销毁当前会话。
func (h *Handler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	response.Success(c, gin.H{"success": true})
}

// Verify 校验当前会话是否有效，有效时顺带续期滑动窗口。
// 空闲超时的会话在这里被清理。
func (h *Handler) Verify(c *gin.Context) {
	now := time.Now()
	claims, err := h.sessionSvc.Validate(auth.ReadSessionCookie(c), now)
	if err != nil {
		auth.ClearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	refreshed, err := h.sessionSvc.Refresh(claims, now)
	if err != nil {
		log.Printf("[AuthHandler] 会话续期失败: %v", err)
	} else {
		auth.SetSessionCookie(c, refreshed)
	}
	response.Success(c, gin.H{"authenticated": true})
}
