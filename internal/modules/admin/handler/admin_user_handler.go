package handler

import (
	"net/http"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListAdmins(c *gin.Context) {
	page := httpx.ParsePage(c, h.adminService.AppService)
	admins, total, err := h.adminService.ListAdmins(page.Offset(), page.PageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取管理员列表失败")
		return
	}
	httpx.WritePage(c, page, total, admins)
}

func (h *Handler) GetAdmin(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	admin, err := h.adminService.GetAdmin(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取管理员失败")
		return
	}
	c.JSON(http.StatusOK, admin)
}

// CreateAdmin 仅超级管理员
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req moduledto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	admin, err := h.adminService.CreateAdmin(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建管理员失败")
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// UpdateAdmin 仅超级管理员，PUT 与 PATCH 均为部分更新
func (h *Handler) UpdateAdmin(c *gin.Context) {
	actorID, ok := currentAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "需要管理员登录"})
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	admin, err := h.adminService.UpdateAdmin(actorID, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新管理员失败")
		return
	}
	c.JSON(http.StatusOK, admin)
}

// DeleteAdmin 仅超级管理员
func (h *Handler) DeleteAdmin(c *gin.Context) {
	actorID, ok := currentAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "需要管理员登录"})
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteAdmin(actorID, id); err != nil {
		httpx.WriteServiceError(c, err, "删除管理员失败")
		return
	}
	c.Status(http.StatusNoContent)
}
