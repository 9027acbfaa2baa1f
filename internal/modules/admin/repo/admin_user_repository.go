package repo

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type AdminUserStore interface {
	FindByID(id uint) (*model.AdminUser, error)
	FindByUsername(username string) (*model.AdminUser, error)
	List(offset, limit int) ([]model.AdminUser, int64, error)
	Create(admin *model.AdminUser) error
	UpdateByID(id uint, updates map[string]any) error
	Delete(id uint) error
	// RecordLogin 在同一事务内更新 last_login_at 并写入登录日志。
	RecordLogin(id uint, at time.Time, log *model.AdminLog) error
}

func NewAdminUserRepository(db *gorm.DB) AdminUserStore {
	return &AdminUserRepository{db: db}
}
