package admin

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(
	appService *platformservice.AppService,
	adminStore repo.AdminUserStore,
	logStore repo.AdminLogStore,
	moderationStore repo.ModerationStore,
	dashboardStore repo.DashboardStore,
) *service.Service {
	return service.New(appService, adminStore, logStore, moderationStore, dashboardStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
