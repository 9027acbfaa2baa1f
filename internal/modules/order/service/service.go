package service

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	orderStore repo.OrderStore
	now        func() time.Time
}

func New(appService *platformservice.AppService, orderStore repo.OrderStore) *Service {
	return &Service{
		AppService: appService,
		orderStore: orderStore,
		now:        time.Now,
	}
}
