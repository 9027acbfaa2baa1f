package repo

import (
	"github.com/1nFrastr/miao-bbq-app/internal/geo"
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

// PostFilter 列表查询条件；Limit <= 0 表示不分页。
type PostFilter struct {
	Status  string
	UserID  uint
	Search  string
	Box     *geo.Box
	OrderBy string
	Offset  int
	Limit   int
}

type PostStore interface {
	// Create 在同一事务内写入分享及其图片。
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	List(filter PostFilter) ([]model.Post, int64, error)
	UpdateByID(id uint, updates map[string]any) error
	IncrementViewCount(id uint) error
	// Delete 删除分享及其图片和点赞。
	Delete(id uint) error
	// ToggleLike 存在点赞则删除，否则插入；随后按点赞行数回写 likes_count。
	ToggleLike(postID, userID uint) (bool, int, error)
	LikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error)
	ListLikes(postID uint, offset, limit int) ([]model.PostLike, int64, error)
	// FindUnlocated 返回缺少任一经纬度的分享，status 为空表示全部状态。
	FindUnlocated(status string) ([]model.Post, error)
	DeleteByIDs(ids []uint) (int64, error)
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}
