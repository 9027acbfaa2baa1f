package router

import (
	userhandler "github.com/1nFrastr/miao-bbq-app/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, identity gin.HandlerFunc, authLimiter gin.HandlerFunc, h *userhandler.Handler) {
	userGroup := api.Group("/users")
	userGroup.POST("/login", authLimiter, h.Login)

	userGroup.Use(identity)
	userGroup.GET("", h.ListUsers)
	userGroup.POST("", h.CreateUser)
	userGroup.GET("/:id", h.GetUser)
	userGroup.PUT("/:id", h.UpdateProfile)
	userGroup.PATCH("/:id", h.UpdateProfile)
	userGroup.DELETE("/:id", h.DeleteUser)
	userGroup.POST("/:id/update_profile", h.UpdateProfile)
}
