package di

import (
	"context"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/modules"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	userservice "github.com/1nFrastr/miao-bbq-app/internal/modules/user/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/wechat"
	"github.com/1nFrastr/miao-bbq-app/internal/router"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
	Modules *modules.AppModules
	Disk    storage.Disk
}

func NewApplication(r *router.Router, s *service.AppService, m *modules.AppModules, disk storage.Disk) *Application {
	return &Application{
		Router:  r,
		Service: s,
		Modules: m,
		Disk:    disk,
	}
}

func provideSettingStore(stores *modules.Stores) settingsrepo.SettingStore {
	return stores.Setting
}

func provideSessionExchanger(cfg config.Config) userservice.SessionExchanger {
	return wechat.NewClient(cfg.WeChat)
}

func provideDisk(ctx context.Context, cfg config.Config) (storage.Disk, error) {
	return storage.New(ctx, cfg)
}
