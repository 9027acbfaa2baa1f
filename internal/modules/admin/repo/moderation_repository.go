package repo

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type ModerationFilter struct {
	Status  string
	Search  string
	OrderBy string
	Offset  int
	Limit   int
}

type ModerationStore interface {
	FindPost(id uint) (*model.Post, error)
	ListPosts(filter ModerationFilter) ([]model.Post, int64, error)
	// SetStatus 更新审核状态并在同一事务内写入操作日志。
	SetStatus(postID uint, status string, log *model.AdminLog) error
	// DeletePost 删除分享及其图片、点赞，并在同一事务内写入操作日志。
	DeletePost(postID uint, log *model.AdminLog) error
}

func NewModerationRepository(db *gorm.DB) ModerationStore {
	return &ModerationRepository{db: db}
}
