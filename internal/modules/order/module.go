package order

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/order/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/order/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, orderStore repo.OrderStore) *service.Service {
	return service.New(appService, orderStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
