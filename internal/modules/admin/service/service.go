package service

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	adminStore      repo.AdminUserStore
	logStore        repo.AdminLogStore
	moderationStore repo.ModerationStore
	dashboardStore  repo.DashboardStore
	now             func() time.Time
}

func New(
	appService *platformservice.AppService,
	adminStore repo.AdminUserStore,
	logStore repo.AdminLogStore,
	moderationStore repo.ModerationStore,
	dashboardStore repo.DashboardStore,
) *Service {
	return &Service{
		AppService:      appService,
		adminStore:      adminStore,
		logStore:        logStore,
		moderationStore: moderationStore,
		dashboardStore:  dashboardStore,
		now:             time.Now,
	}
}
