package upload

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/upload/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/upload/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, disk storage.Disk) *service.Service {
	return service.New(appService, disk)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
