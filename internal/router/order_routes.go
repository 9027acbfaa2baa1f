package router

import (
	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	orderhandler "github.com/1nFrastr/miao-bbq-app/internal/modules/order/handler"

	"github.com/gin-gonic/gin"
)

func registerOrderRoutes(api *gin.RouterGroup, identity gin.HandlerFunc, h *orderhandler.Handler) {
	orderGroup := api.Group("/orders")
	orderGroup.Use(identity)
	orderGroup.Use(middleware.RequireUser())

	orderGroup.GET("", h.ListOrders)
	orderGroup.POST("", h.CreateOrder)
	orderGroup.GET("/statistics", h.Statistics)
	orderGroup.GET("/:id", h.GetOrder)
	orderGroup.PUT("/:id", h.UpdateOrder)
	orderGroup.PATCH("/:id", h.UpdateOrder)
	orderGroup.DELETE("/:id", h.DeleteOrder)
	orderGroup.POST("/:id/start_timer", h.StartTimer)
	orderGroup.POST("/:id/complete", h.Complete)
	orderGroup.POST("/:id/add_item", h.AddItem)
	orderGroup.DELETE("/:id/remove_item", h.RemoveItem)
}
