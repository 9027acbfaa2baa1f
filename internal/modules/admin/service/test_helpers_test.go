package service

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	modulerepo "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(
		appService,
		modulerepo.NewAdminUserRepository(gdb),
		modulerepo.NewAdminLogRepository(gdb),
		modulerepo.NewModerationRepository(gdb),
		modulerepo.NewDashboardRepository(gdb),
	)
	testService.ClearCache()

	prev := config.Get()
	cfg := prev
	cfg.JWT.Secret = "test-secret"
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
	return gdb
}

func createAdmin(t *testing.T, gdb *gorm.DB, username, password string, superuser bool) *model.AdminUser {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("密码加密失败: %v", err)
	}
	admin := &model.AdminUser{Username: username, Password: string(hashed), IsActive: true, IsSuperuser: superuser}
	if err := gdb.Create(admin).Error; err != nil {
		t.Fatalf("创建管理员失败: %v", err)
	}
	return admin
}

func createPost(t *testing.T, gdb *gorm.DB, nickname, shopName, status string) *model.Post {
	t.Helper()
	u := &model.User{OpenID: "oid-" + shopName, Nickname: nickname, IsActive: true}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	p := &model.Post{UserID: u.ID, ShopName: shopName, ShopPrice: 50, Comment: "不错", Status: status}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("创建分享失败: %v", err)
	}
	return p
}

func assertServiceCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != code {
		t.Fatalf("期望错误码 %s，实际为 %v", code, err)
	}
}
