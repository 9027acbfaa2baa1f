package handler

import (
	"testing"

	modulerepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	settingsservice "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testHandler = New(settingsservice.New(testService, settingStore))
	testService.ClearCache()
	return gdb
}
