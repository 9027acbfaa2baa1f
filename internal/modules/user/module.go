package user

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/user/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/user/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, userStore repo.UserStore, exchanger service.SessionExchanger) *service.Service {
	return service.New(appService, userStore, exchanger)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
