/*
 * @Description: 会话 Cookie 的读写工具
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:31:02
 * @LastEditTime: 2025-09-02 14:31:02
 * @LastEditors: 安知鱼
 */
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie 把会话写入响应。
// Cookie 的 MaxAge 与绝对存活上限一致，空闲超时由服务端判定，
// 不依赖浏览器过期。
func SetSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, int(MaxLifetime.Seconds()), "/", "", false, true)
}

// ClearSessionCookie 让浏览器立即丢弃会话 Cookie。
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// ReadSessionCookie 读取会话 Cookie，缺失时返回空字符串。
func ReadSessionCookie(c *gin.Context) string {
	value, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return value
}
