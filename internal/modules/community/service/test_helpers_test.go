package service

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	modulerepo "github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, modulerepo.NewPostRepository(gdb))
	testService.ClearCache()
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, openid string) *model.User {
	t.Helper()
	u := &model.User{OpenID: openid, Nickname: openid, IsActive: true}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func createPost(t *testing.T, gdb *gorm.DB, userID uint, name, status string, lat, lng *float64) *model.Post {
	t.Helper()
	p := &model.Post{
		UserID:    userID,
		ShopName:  name,
		ShopPrice: 60,
		Comment:   "好吃",
		Latitude:  lat,
		Longitude: lng,
		Status:    status,
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("创建分享失败: %v", err)
	}
	return p
}

func f64(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func assertServiceCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != code {
		t.Fatalf("期望错误码 %s，实际为 %v", code, err)
	}
}
