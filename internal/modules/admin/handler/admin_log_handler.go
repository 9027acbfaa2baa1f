package handler

import (
	"net/http"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListLogs(c *gin.Context) {
	page := httpx.ParsePage(c, h.adminService.AppService)
	logs, total, err := h.adminService.ListLogs(moduledto.AdminLogListRequest{
		Action:     c.Query("action"),
		TargetType: c.Query("target_type"),
		Offset:     page.Offset(),
		Limit:      page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取操作日志失败")
		return
	}
	httpx.WritePage(c, page, total, moduledto.NewAdminLogResponses(logs))
}

func (h *Handler) GetLog(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	log, err := h.adminService.GetLog(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取操作日志失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewAdminLogResponse(log))
}
