/*
 * @Description: 博客文章 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 11:05:33
 * @LastEditTime: 2025-09-13 17:42:08
 * @LastEditors: 安知鱼
 */
package blog

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/blog"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理文章相关的 API 请求。
// 对外的错误文案沿用历史接口的英文约定。
type Handler struct {
	blogSvc blog.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(blogSvc blog.Service) *Handler {
	return &Handler{blogSvc: blogSvc}
}

// --- 前台公开接口 ---

// List 处理前台文章分页列表请求，支持 status/featured/category 组合过滤。
func (h *Handler) List(c *gin.Context) {
	var req model.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.blogSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	response.Success(c, result)
}

// GetBySlug 处理文章详情请求，命中即累计浏览量。
func (h *Handler) GetBySlug(c *gin.Context) {
	b, err := h.blogSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch blog")
		return
	}
	response.Success(c, b)
}

// Like 处理点赞请求，每次调用加一。
func (h *Handler) Like(c *gin.Context) {
	likes, err := h.blogSvc.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to like blog")
		return
	}
	response.Success(c, gin.H{"likes": likes})
}

// AddComment 处理发表评论请求。author 和 text 缺一不可，
// 校验失败时不会读取存储。
func (h *Handler) AddComment(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Author and text are required")
		return
	}

	comment, err := h.blogSvc.AddComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, comment)
}

// --- 后台管理接口 ---

// ListAll 返回全部文章（含草稿），供后台列表使用。
func (h *Handler) ListAll(c *gin.Context) {
	blogs, err := h.blogSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	response.Success(c, blogs)
}

// Create 处理后台创建文章请求。
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Title is required")
		return
	}

	b, err := h.blogSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create blog")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, b)
}

// Update 处理后台更新文章请求，仅合并请求体中出现的字段。
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.blogSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update blog")
		return
	}
	response.Success(c, b)
}

// Delete 处理后台删除文章请求。
func (h *Handler) Delete(c *gin.Context) {
	if err := h.blogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete blog")
		return
	}
	response.Success(c, gin.H{"success": true})
}
