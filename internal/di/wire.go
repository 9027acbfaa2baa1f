//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/modules"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(ctx context.Context, gormDB *gorm.DB, cfg config.Config) (*Application, error) {
	wire.Build(
		modules.NewStores,
		provideSettingStore,
		service.NewAppService,
		provideSessionExchanger,
		provideDisk,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
