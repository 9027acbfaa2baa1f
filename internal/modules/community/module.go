package community

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, postStore repo.PostStore) *service.Service {
	return service.New(appService, postStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
