package service

import (
	"testing"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var testService *AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}
