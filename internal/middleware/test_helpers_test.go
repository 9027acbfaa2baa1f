package middleware

import (
	"testing"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	service.SetRedisClient(nil)
	t.Cleanup(service.ResetRedisClient)
	return gdb
}
