package router

import (
	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	adminhandler "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/handler"
	settingshandler "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(
	api *gin.RouterGroup,
	authLimiter gin.HandlerFunc,
	resolver middleware.AdminResolver,
	h *adminhandler.Handler,
	settings *settingshandler.Handler,
) {
	adminGroup := api.Group("/admin")
	adminGroup.POST("/admin-users/login", authLimiter, h.Login)

	authed := adminGroup.Group("")
	authed.Use(middleware.AdminAuth(resolver))

	authed.GET("/admin-users/dashboard", h.Dashboard)
	authed.GET("/admin-users", h.ListAdmins)
	authed.GET("/admin-users/:id", h.GetAdmin)

	authed.GET("/admin-logs", h.ListLogs)
	authed.GET("/admin-logs/:id", h.GetLog)

	authed.GET("/moderation", h.ListModeration)
	authed.POST("/moderation/:id/approve", h.Approve)
	authed.POST("/moderation/:id/reject", h.Reject)

	// 以下操作仅超级管理员可用
	root := authed.Group("")
	root.Use(middleware.SuperuserCheck())

	root.POST("/admin-users", h.CreateAdmin)
	root.PUT("/admin-users/:id", h.UpdateAdmin)
	root.PATCH("/admin-users/:id", h.UpdateAdmin)
	root.DELETE("/admin-users/:id", h.DeleteAdmin)
	root.DELETE("/moderation/:id/delete_post", h.DeletePost)

	root.GET("/settings", settings.GetSettings)
	root.PATCH("/settings", settings.UpdateSettings)
}
