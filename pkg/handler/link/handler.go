/*
 * @Description: 导航链接与链接分组 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 14:08:51
 * @LastEditTime: 2025-09-08 11:40:23
 * @LastEditors: 安知鱼
 */
package link

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/link"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理链接及其分组相关的 API 请求。
type Handler struct {
	linkSvc link.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(linkSvc link.Service) *Handler {
	return &Handler{linkSvc: linkSvc}
}

// --- 链接 ---

// ListLinks 返回全部链接，集合不存在时返回空数组。
func (h *Handler) ListLinks(c *gin.Context) {
	links, err := h.linkSvc.ListLinks(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch links")
		return
	}
	response.Success(c, links)
}

// CreateLink 处理后台创建链接请求。
func (h *Handler) CreateLink(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Title and href are required")
		return
	}

	l, err := h.linkSvc.CreateLink(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create link")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, l)
}

// UpdateLink 处理后台更新链接请求，整体替换可编辑字段。
func (h *Handler) UpdateLink(c *gin.Context) {
	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Title and href are required")
		return
	}

	l, err := h.linkSvc.UpdateLink(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Link not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update link")
		return
	}
	response.Success(c, l)
}

// DeleteLink 处理后台删除链接请求。
func (h *Handler) DeleteLink(c *gin.Context) {
	if err := h.linkSvc.DeleteLink(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Link not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete link")
		return
	}
	response.Success(c, gin.H{"success": true})
}

// --- 链接分组 ---

// ListCategories 返回全部链接分组，集合不存在时返回空数组。
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.linkSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch link categories")
		return
	}
	response.Success(c, categories)
}

// CreateCategory 处理后台创建链接分组请求。
// 名称为空返回 400；sortOrder 缺省排到末尾。
func (h *Handler) CreateCategory(c *gin.Context) {
	var req model.CreateLinkCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.linkSvc.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, constant.ErrBadRequest) {
			response.Fail(c, http.StatusBadRequest, "Category name is required")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create link category")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, cat)
}

// UpdateCategory 处理后台更新链接分组请求。
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req model.UpdateLinkCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.linkSvc.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrBadRequest) {
			response.Fail(c, http.StatusBadRequest, "Category name is required")
			return
		}
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Link category not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update link category")
		return
	}
	response.Success(c, cat)
}

// DeleteCategory 处理后台删除链接分组请求，组内链接保留。
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.linkSvc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Link category not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete link category")
		return
	}
	response.Success(c, gin.H{"success": true})
}
