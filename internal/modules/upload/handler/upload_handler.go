package handler

import (
	"net/http"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// UploadImage 上传单张图片，表单字段为 image
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择图片文件"})
		return
	}

	resp, err := h.uploadService.UploadImage(c.Request.Context(), file)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}
	c.JSON(http.StatusOK, resp)
}
