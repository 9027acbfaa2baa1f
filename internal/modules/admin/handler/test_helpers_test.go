package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	adminrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	adminservice "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/service"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testService *adminservice.Service
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = adminservice.New(
		appService,
		adminrepo.NewAdminUserRepository(gdb),
		adminrepo.NewAdminLogRepository(gdb),
		adminrepo.NewModerationRepository(gdb),
		adminrepo.NewDashboardRepository(gdb),
	)
	testHandler = New(testService)
	testService.ClearCache()

	prev := config.Get()
	cfg := prev
	cfg.JWT.Secret = "test-secret"
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
	return gdb
}

func newRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api/admin")
	api.POST("/admin-users/login", testHandler.Login)

	authed := api.Group("", middleware.AdminAuth(testService))
	authed.GET("/admin-users/dashboard", testHandler.Dashboard)
	authed.GET("/admin-users", testHandler.ListAdmins)
	authed.GET("/admin-users/:id", testHandler.GetAdmin)
	authed.GET("/admin-logs", testHandler.ListLogs)
	authed.GET("/admin-logs/:id", testHandler.GetLog)
	authed.GET("/moderation", testHandler.ListModeration)
	authed.POST("/moderation/:id/approve", testHandler.Approve)
	authed.POST("/moderation/:id/reject", testHandler.Reject)

	super := authed.Group("", middleware.SuperuserCheck())
	super.POST("/admin-users", testHandler.CreateAdmin)
	super.PATCH("/admin-users/:id", testHandler.UpdateAdmin)
	super.DELETE("/admin-users/:id", testHandler.DeleteAdmin)
	super.DELETE("/moderation/:id/delete_post", testHandler.DeletePost)
	return r
}

func createAdmin(t *testing.T, gdb *gorm.DB, username, password string, superuser bool) *model.AdminUser {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	admin := &model.AdminUser{Username: username, Password: string(hashed), IsActive: true, IsSuperuser: superuser}
	if err := gdb.Create(admin).Error; err != nil {
		t.Fatalf("创建管理员失败: %v", err)
	}
	return admin
}

func callAs(r http.Handler, method, path string, adminID uint, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if adminID != 0 {
		req.Header.Set("X-Admin-Id", strconv.FormatUint(uint64(adminID), 10))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
