package handler

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	orderrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	orderservice "github.com/1nFrastr/miao-bbq-app/internal/modules/order/service"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	userrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	userservice "github.com/1nFrastr/miao-bbq-app/internal/modules/user/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
	testUsers   *userservice.Service
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testUsers = userservice.New(testService, userrepo.NewUserRepository(gdb), nil)
	testHandler = New(orderservice.New(testService, orderrepo.NewOrderRepository(gdb)))
	testService.ClearCache()
	return gdb
}

func newRouter() *gin.Engine {
	r := gin.New()
	g := r.Group("/api/orders", middleware.UserIdentity(testUsers), middleware.RequireUser())
	g.GET("", testHandler.ListOrders)
	g.POST("", testHandler.CreateOrder)
	g.GET("/statistics", testHandler.Statistics)
	g.GET("/:id", testHandler.GetOrder)
	g.PATCH("/:id", testHandler.UpdateOrder)
	g.DELETE("/:id", testHandler.DeleteOrder)
	g.POST("/:id/start_timer", testHandler.StartTimer)
	g.POST("/:id/complete", testHandler.Complete)
	g.POST("/:id/add_item", testHandler.AddItem)
	g.DELETE("/:id/remove_item", testHandler.RemoveItem)
	return r
}
