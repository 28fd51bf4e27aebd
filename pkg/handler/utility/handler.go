/*
 * @Description: 后台维护类 API 处理器（缓存刷新）
 * @Author: 安知鱼
 * @Date: 2025-09-03 16:10:36
 * @LastEditTime: 2025-09-07 21:33:50
 * @LastEditors: 安知鱼
 */
package utility

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/constant"
	"github.com/anzhiyu-c/anheyu-lite/pkg/domain/repository"
	"github.com/anzhiyu-c/anheyu-lite/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler 负责后台的维护操作，直接工作在集合存储之上。
type Handler struct {
	store repository.CollectionStore
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(store repository.CollectionStore) *Handler {
	return &Handler{store: store}
}

// ClearCache 重写分类集合的存储键，用于驱散 CDN/边缘侧的陈旧缓存。
// 数据本身原样写回，不会丢失。
func (h *Handler) ClearCache(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := h.store.Get(ctx, constant.CollectionCategories)
	if err != nil {
		log.Printf("[UtilityHandler] 读取分类集合失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to clear cache")
		return
	}

	var items []json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Printf("[UtilityHandler] 分类集合内容异常，按空集合处理: %v", err)
			items = nil
		}
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	if err := h.store.Delete(ctx, constant.CollectionCategories); err != nil {
		log.Printf("[UtilityHandler] 删除分类集合键失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to clear cache")
		return
	}
	if err := h.store.Set(ctx, constant.CollectionCategories, items); err != nil {
		log.Printf("[UtilityHandler] 回写分类集合失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to clear cache")
		return
	}

	response.Success(c, gin.H{
		"success": true,
		"message": "Cache cleared",
		"count":   len(items),
	})
}
