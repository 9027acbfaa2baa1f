package modules

import (
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin"
	adminrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community"
	communityrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/order"
	orderrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/settings"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/upload"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/user"
	userrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	userservice "github.com/1nFrastr/miao-bbq-app/internal/modules/user/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"

	"gorm.io/gorm"
)

type AppModules struct {
	User      *user.Module
	Order     *order.Module
	Community *community.Module
	Admin     *admin.Module
	Upload    *upload.Module
	Settings  *settings.Module
}

// Stores 汇总各模块的存储层，便于一次性从 gorm 连接构造。
type Stores struct {
	User       userrepo.UserStore
	Order      orderrepo.OrderStore
	Post       communityrepo.PostStore
	AdminUser  adminrepo.AdminUserStore
	AdminLog   adminrepo.AdminLogStore
	Moderation adminrepo.ModerationStore
	Dashboard  adminrepo.DashboardStore
	Setting    settingsrepo.SettingStore
}

func NewStores(gdb *gorm.DB) *Stores {
	return &Stores{
		User:       userrepo.NewUserRepository(gdb),
		Order:      orderrepo.NewOrderRepository(gdb),
		Post:       communityrepo.NewPostRepository(gdb),
		AdminUser:  adminrepo.NewAdminUserRepository(gdb),
		AdminLog:   adminrepo.NewAdminLogRepository(gdb),
		Moderation: adminrepo.NewModerationRepository(gdb),
		Dashboard:  adminrepo.NewDashboardRepository(gdb),
		Setting:    settingsrepo.NewSettingRepository(gdb),
	}
}

func New(
	appService *platformservice.AppService,
	stores *Stores,
	exchanger userservice.SessionExchanger,
	disk storage.Disk,
) *AppModules {
	return &AppModules{
		User:      user.New(user.NewService(appService, stores.User, exchanger)),
		Order:     order.New(order.NewService(appService, stores.Order)),
		Community: community.New(community.NewService(appService, stores.Post)),
		Admin: admin.New(admin.NewService(
			appService,
			stores.AdminUser,
			stores.AdminLog,
			stores.Moderation,
			stores.Dashboard,
		)),
		Upload:   upload.New(upload.NewService(appService, disk)),
		Settings: settings.New(settings.NewService(appService, stores.Setting)),
	}
}
