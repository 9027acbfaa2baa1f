package repo

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByOpenID(openid string) (*model.User, error)
	FindFirst() (*model.User, error)
	Create(user *model.User) error
	// GetOrCreate 按 openid 查找用户，不存在时插入 user；返回最终行以及是否新建。
	GetOrCreate(user *model.User) (*model.User, bool, error)
	TouchLastLogin(id uint, at time.Time) error
	UpdateByID(id uint, updates map[string]any) error
	List(offset, limit int, search string) ([]model.User, int64, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
