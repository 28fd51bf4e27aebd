package model

import "time"

// Category 是博客分类实体。文章通过 CategoryIDs 引用分类；
// 删除分类不会级联清理文章上的引用，悬挂引用由筛选逻辑按「无匹配」处理。
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Reviews     int       `json:"reviews"`
	Rating      float64   `json:"rating"`
	IsMostView  bool      `json:"isMostView"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCategoryRequest 是后台创建分类的请求结构。
type CreateCategoryRequest struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Rating      *float64 `json:"rating"`
	IsMostView  *bool    `json:"isMostView"`
	Status      *bool    `json:"status"`
}

// UpdateCategoryRequest 是后台更新分类的请求结构，指针字段按需合并。
type UpdateCategoryRequest struct {
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration"`
	Reviews     *int     `json:"reviews"`
	Rating      *float64 `json:"rating"`
	IsMostView  *bool    `json:"isMostView"`
	Status      *bool    `json:"status"`
}
