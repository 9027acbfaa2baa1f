package handler

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
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
	testHandler = New(testUsers)
	testService.ClearCache()
	return gdb
}

func newRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api/users", middleware.UserIdentity(testUsers))
	api.POST("/login", testHandler.Login)
	api.GET("", testHandler.ListUsers)
	api.POST("", testHandler.CreateUser)
	api.GET("/:id", testHandler.GetUser)
	api.PATCH("/:id", testHandler.UpdateProfile)
	api.POST("/:id/update_profile", testHandler.UpdateProfile)
	api.DELETE("/:id", testHandler.DeleteUser)
	return r
}
