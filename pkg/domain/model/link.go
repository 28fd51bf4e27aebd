package model

import "time"

// LinkCategory 是导航链接的分组，sortOrder 越小越靠前。
type LinkCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// Link 是站点导航链接。CategoryID 为空表示未分组；
// 其指向的分组被删除后引用保持原样，消费方按未分组处理。
type Link struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Href       string    `json:"href"`
	CategoryID *string   `json:"categoryId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// --- API 请求 DTO ---

type CreateLinkRequest struct {
	Title      string  `json:"title" binding:"required"`
	Href       string  `json:"href" binding:"required"`
	CategoryID *string `json:"categoryId"`
}

type UpdateLinkRequest struct {
	Title      string  `json:"title" binding:"required"`
	Href       string  `json:"href" binding:"required"`
	CategoryID *string `json:"categoryId"`
}

type CreateLinkCategoryRequest struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder"`
}

type UpdateLinkCategoryRequest struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder"`
}
