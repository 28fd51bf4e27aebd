/*
 * @Description: 站点配色方案 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 14:52:17
 * @LastEditTime: 2025-09-03 14:52:17
 * @LastEditors: 安知鱼
 */
package color

import (
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/color"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理配色方案相关的 API 请求。
type Handler struct {
	colorSvc color.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(colorSvc color.Service) *Handler {
	return &Handler{colorSvc: colorSvc}
}

// Get 返回当前配色方案，尚未设置时返回空对象。
func (h *Handler) Get(c *gin.Context) {
	palette, err := h.colorSvc.Get(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch colors")
		return
	}
	response.Success(c, palette)
}

// Replace 整体替换配色方案并原样返回保存结果。
func (h *Handler) Replace(c *gin.Context) {
	var palette model.ColorPalette
	if err := c.ShouldBindJSON(&palette); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid palette")
		return
	}

	saved, err := h.colorSvc.Replace(c.Request.Context(), palette)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to save colors")
		return
	}
	response.Success(c, saved)
}
