package settings

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/settings/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/settings/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, settingStore repo.SettingStore) *service.Service {
	return service.New(appService, settingStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
