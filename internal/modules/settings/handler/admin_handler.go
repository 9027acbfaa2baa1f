package handler

import (
	"net/http"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.ListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings 请求体为 [{key, value}] 数组
func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	updated, err := h.settingsService.UpdateSettings(reqs)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "配置更新成功",
		"count":   updated,
	})
}
