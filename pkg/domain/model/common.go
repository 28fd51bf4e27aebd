package model

// PaginationInput 是分页输入的基础结构，可被其他请求 DTO 嵌入。
type PaginationInput struct {
	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=1000"`
}

// GetPage 获取经过处理的安全页码，默认为 1。
func (p *PaginationInput) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetLimit 获取经过处理的安全每页数量，默认为 10。
func (p *PaginationInput) GetLimit() int {
	if p.Limit <= 0 {
		return 10
	}
	return p.Limit
}
