package handler

import (
	"net/http"
	"strings"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListModeration 审核列表
func (h *Handler) ListModeration(c *gin.Context) {
	page := httpx.ParsePage(c, h.adminService.AppService)
	posts, total, err := h.adminService.ListModeration(moduledto.ModerationListRequest{
		Status:   c.Query("status"),
		Search:   strings.TrimSpace(c.Query("search")),
		Ordering: c.Query("ordering"),
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取审核列表失败")
		return
	}
	httpx.WritePage(c, page, total, moduledto.NewModerationPostResponses(posts))
}

// Approve 审核通过
func (h *Handler) Approve(c *gin.Context) {
	adminID, postID, ok := adminAndPost(c)
	if !ok {
		return
	}
	if err := h.adminService.ApprovePost(adminID, postID, requestMeta(c)); err != nil {
		httpx.WriteServiceError(c, err, "审核操作失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject 审核拒绝，可附带 reason
func (h *Handler) Reject(c *gin.Context) {
	adminID, postID, ok := adminAndPost(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	if err := h.adminService.RejectPost(adminID, postID, reason, requestMeta(c)); err != nil {
		httpx.WriteServiceError(c, err, "审核操作失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePost 删除分享，仅超级管理员
func (h *Handler) DeletePost(c *gin.Context) {
	adminID, postID, ok := adminAndPost(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	if err := h.adminService.DeletePost(adminID, postID, reason, requestMeta(c)); err != nil {
		httpx.WriteServiceError(c, err, "删除分享失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func adminAndPost(c *gin.Context) (uint, uint, bool) {
	adminID, ok := currentAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "需要管理员登录"})
		return 0, 0, false
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	return adminID, postID, true
}
