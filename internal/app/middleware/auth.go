/*
 * @Description: 后台管理接口的会话守卫
 * @Author: 安知鱼
 * @Date: 2025-09-03 16:40:12
 * @LastEditTime: 2025-09-10 21:48:55
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"time"

	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// AdminAuth 校验请求携带的会话 Cookie，并在放行前续期滑动窗口。
// 校验在任何数据访问之前完成；无效会话一律 401，且顺手清掉
// 已经没用的 Cookie。
func AdminAuth(sessionSvc auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		claims, err := sessionSvc.Validate(auth.ReadSessionCookie(c), now)
		if err != nil {
			auth.ClearSessionCookie(c)
			response.Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		// 每次后台操作都刷新 lastActivity；续签失败不拦截请求，
		// 旧 Cookie 在空闲窗口内仍然有效。
		if refreshed, err := sessionSvc.Refresh(claims, now); err == nil {
			auth.SetSessionCookie(c, refreshed)
		}

		c.Next()
	}
}
