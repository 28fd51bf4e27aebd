/*
 * @Description: 博客分类 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 11:40:29
 * @LastEditTime: 2025-09-06 20:10:44
 * @LastEditors: 安知鱼
 */
package category

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/category"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理分类相关的 API 请求。
type Handler struct {
	categorySvc category.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(categorySvc category.Service) *Handler {
	return &Handler{categorySvc: categorySvc}
}

// List 返回全部分类，集合不存在时返回空数组。
func (h *Handler) List(c *gin.Context) {
	categories, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	response.Success(c, categories)
}

// Create 处理后台创建分类请求。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Name is required")
		return
	}

	cat, err := h.categorySvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create category")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, cat)
}

// Update 处理后台更新分类请求。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.categorySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Category not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update category")
		return
	}
	response.Success(c, cat)
}

// Delete 处理后台删除分类请求。文章上指向该分类的引用不会被清理。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.categorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Category not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	response.Success(c, gin.H{"success": true})
}
