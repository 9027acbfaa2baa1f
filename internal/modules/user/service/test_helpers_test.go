package service

import (
	"context"
	"testing"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	modulerepo "github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/wechat"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

type stubExchanger struct {
	session *wechat.Session
	err     error
	calls   int
}

func (s *stubExchanger) Code2Session(_ context.Context, _ string) (*wechat.Session, error) {
	s.calls++
	return s.session, s.err
}

func setupTestDB(t *testing.T, exchanger SessionExchanger) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := modulerepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = New(appService, userStore, exchanger)
	testService.ClearCache()
	return gdb
}
