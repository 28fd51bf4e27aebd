/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:02:40
 * @LastEditTime: 2025-09-02 11:02:47
 * @LastEditors: 安知鱼
 */
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 本项目的前端沿用历史接口约定：成功时直接返回业务数据本身，
// 失败时返回 {"error": "..."}，不额外包一层 code/message 信封。

// Success 成功响应，HTTP 200，响应体即业务数据。
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithStatus 成功响应，允许自定义 HTTP 状态码。
// 用于返回 201 Created 等状态。
func SuccessWithStatus(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Fail 失败响应，响应体为 {"error": message}。
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
