/*
 * @Description: 后台上传 API 处理器
 * @Author: 安知鱼
 * @Date: 2025-09-03 15:48:02
 * @LastEditTime: 2025-09-03 15:48:02
 * @LastEditors: 安知鱼
 */
package upload

import (
	"log"
	"net/http"

	"github.com/anzhiyu-c/anheyu-lite/pkg/response"
	"github.com/anzhiyu-c/anheyu-lite/pkg/service/upload"

	"github.com/gin-gonic/gin"
)

// Handler 负责处理 multipart 上传请求。
type Handler struct {
	uploadSvc upload.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(uploadSvc upload.Service) *Handler {
	return &Handler{uploadSvc: uploadSvc}
}

// Upload 接收表单字段 file，落盘后返回可访问的 URL 和文件名。
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()

	result, err := h.uploadSvc.Save(fileHeader.Filename, src)
	if err != nil {
		log.Printf("[UploadHandler] 保存上传文件失败: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to save upload")
		return
	}
	response.Success(c, result)
}
