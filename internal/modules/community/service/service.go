package service

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	postStore repo.PostStore
}

func New(appService *platformservice.AppService, postStore repo.PostStore) *Service {
	return &Service{
		AppService: appService,
		postStore:  postStore,
	}
}
