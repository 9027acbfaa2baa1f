package service

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
	}
}
