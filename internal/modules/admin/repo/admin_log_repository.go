package repo

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

// AdminLogFilter 空字段表示不过滤。
type AdminLogFilter struct {
	Action     string
	TargetType string
	Offset     int
	Limit      int
}

// AdminLogStore 操作日志只读查询，写入随业务事务完成。
type AdminLogStore interface {
	FindByID(id uint) (*model.AdminLog, error)
	List(filter AdminLogFilter) ([]model.AdminLog, int64, error)
}

func NewAdminLogRepository(db *gorm.DB) AdminLogStore {
	return &AdminLogRepository{db: db}
}
