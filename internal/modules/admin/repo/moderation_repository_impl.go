package repo

import (
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type ModerationRepository struct {
	db *gorm.DB
}

func (r *ModerationRepository) FindPost(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ModerationRepository) ListPosts(filter ModerationFilter) ([]model.Post, int64, error) {
	query := r.db.Model(&model.Post{}).
		Joins("LEFT JOIN users ON users.id = posts.user_id").
		Where("posts.status = ?", filter.Status)
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"LOWER(posts.shop_name) LIKE ? OR LOWER(posts.location_address) LIKE ? OR LOWER(users.nickname) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := query.Select("posts.*").
		Preload("User").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("id ASC")
		}).
		Order(filter.OrderBy).Order("posts.id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *ModerationRepository) SetStatus(postID uint, status string, log *model.AdminLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).Where("id = ?", postID).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Omit("Admin").Create(log).Error
	})
}

func (r *ModerationRepository) DeletePost(postID uint, log *model.AdminLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Post{}, postID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Omit("Admin").Create(log).Error
	})
}
