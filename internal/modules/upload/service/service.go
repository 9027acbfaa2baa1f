package service

import (
	"time"

	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"
)

type Service struct {
	*platformservice.AppService
	disk storage.Disk
	now  func() time.Time
}

func New(appService *platformservice.AppService, disk storage.Disk) *Service {
	return &Service{
		AppService: appService,
		disk:       disk,
		now:        time.Now,
	}
}
