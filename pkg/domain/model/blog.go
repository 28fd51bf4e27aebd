/*
 * @Description: 博客文章领域模型与 DTO
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:28:13
 * @LastEditTime: 2025-09-04 16:02:51
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 文章状态，沿用历史数据的数字编码
const (
	BlogStatusDraft     = 0
	BlogStatusPublished = 1
)

// Comment 是挂在文章上的评论，只追加，不提供编辑和删除。
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Blog 是博客文章实体。ContentHTML 为受信任的 HTML 字符串，
// 由后台编辑器产出，这里不做二次净化。
type Blog struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	ContentHTML string    `json:"contentHtml"`
	Images      []string  `json:"images"`
	Video       string    `json:"video"`
	Author      string    `json:"author"`
	Status      int       `json:"status"`
	Featured    int       `json:"featured"`
	CategoryIDs []string  `json:"categoryIds"`
	Likes       int       `json:"likes"`
	Stars       float64   `json:"stars"`
	Comments    []Comment `json:"comments"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// --- API 请求/响应 DTO ---

// ListBlogsRequest 是前台文章列表的查询参数。
// Status 和 Featured 使用指针以区分「未传」与「传 0」。
type ListBlogsRequest struct {
	PaginationInput
	Status   *int   `form:"status"`
	Featured *int   `form:"featured"`
	Category string `form:"category"`
}

// BlogListResponse 是前台文章列表的响应结构。
type BlogListResponse struct {
	Blogs []*Blog `json:"blogs"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Pages int     `json:"pages"`
}

// CreateBlogRequest 是后台创建文章的请求结构。
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	ContentHTML string   `json:"contentHtml"`
	Images      []string `json:"images"`
	Video       string   `json:"video"`
	Author      string   `json:"author"`
	Status      *int     `json:"status"`
	Featured    *int     `json:"featured"`
	CategoryIDs []string `json:"categoryIds"`
	Stars       *float64 `json:"stars"`
}

// UpdateBlogRequest 是后台更新文章的请求结构。
// 全部使用指针字段，仅合并调用方显式提供的字段；
// ID 不可变，UpdatedAt 由服务端刷新。
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Excerpt     *string   `json:"excerpt"`
	ContentHTML *string   `json:"contentHtml"`
	Images      *[]string `json:"images"`
	Video       *string   `json:"video"`
	Author      *string   `json:"author"`
	Status      *int      `json:"status"`
	Featured    *int      `json:"featured"`
	CategoryIDs *[]string `json:"categoryIds"`
	Stars       *float64  `json:"stars"`
}

// CreateCommentRequest 是前台发表评论的请求结构。
// author 和 text 均为必填，校验失败时不触碰存储。
type CreateCommentRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
