package service

import (
	"context"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/wechat"
)

// SessionExchanger 用小程序登录 code 换取 openid。
type SessionExchanger interface {
	Code2Session(ctx context.Context, code string) (*wechat.Session, error)
}

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	exchanger SessionExchanger
}

func New(appService *platformservice.AppService, userStore repo.UserStore, exchanger SessionExchanger) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		exchanger:  exchanger,
	}
}
