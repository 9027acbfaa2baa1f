package service

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	modulerepo "github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, modulerepo.NewOrderRepository(gdb))
	testService.ClearCache()
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, openid string) *model.User {
	t.Helper()
	u := &model.User{OpenID: openid, IsActive: true}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertServiceCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != code {
		t.Fatalf("期望错误码 %s，实际为 %v", code, err)
	}
}
