package handler

import (
	"net/http"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// Login 管理员登录
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	resp, err := h.adminService.Login(req, requestMeta(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard 仪表盘统计
func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.adminService.Dashboard()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}
