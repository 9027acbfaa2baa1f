package service

import (
	"sync"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
)

// AppService 承载各模块共享的运行时配置读取能力。
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}
