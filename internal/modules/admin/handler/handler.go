package handler

import (
	"errors"
	"io"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	adminservice "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/service"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	adminService *adminservice.Service
}

func New(adminService *adminservice.Service) *Handler {
	return &Handler{adminService: adminService}
}

func requestMeta(c *gin.Context) moduledto.RequestMeta {
	return moduledto.RequestMeta{
		IP:        httpx.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	}
}

// bindReason 读取可选的 reason，请求体为空时回退到查询参数。
func bindReason(c *gin.Context) (string, bool) {
	var req moduledto.ModerationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.WriteBindError(c, err)
		return "", false
	}
	if req.Reason == "" {
		req.Reason = c.Query("reason")
	}
	return req.Reason, true
}

func currentAdminID(c *gin.Context) (uint, bool) {
	admin, ok := httpx.CurrentAdmin(c)
	if !ok {
		return 0, false
	}
	return admin.ID, true
}
