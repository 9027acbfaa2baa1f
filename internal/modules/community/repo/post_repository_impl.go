package repo

import (
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC").Order("id ASC")
	})
}

func (r *PostRepository) Create(post *model.Post) error {
	images := post.Images
	post.Images = nil
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].PostID = post.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	post.Images = images
	return err
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := withRelations(r.db).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) List(filter PostFilter) ([]model.Post, int64, error) {
	query := r.db.Model(&model.Post{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(shop_name) LIKE ? OR LOWER(location_address) LIKE ? OR LOWER(comment) LIKE ?", like, like, like)
	}
	if filter.Box != nil {
		query = query.
			Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("latitude BETWEEN ? AND ?", filter.Box.MinLat, filter.Box.MaxLat).
			Where("longitude BETWEEN ? AND ?", filter.Box.MinLng, filter.Box.MaxLng)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = withRelations(query).Order(orderBy).Order("id DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var posts []model.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) UpdateByID(id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.Post{ID: id}).Updates(updates).Error
}

func (r *PostRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := deletePosts(tx, []uint{id})
		if err != nil {
			return err
		}
		if deleted == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PostRepository) ToggleLike(postID, userID uint) (bool, int, error) {
	var liked bool
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			like := model.PostLike{PostID: postID, UserID: userID}
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", postID).UpdateColumn("likes_count", count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, int(count), nil
}

func (r *PostRepository) LikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return liked, nil
	}
	var ids []uint
	if err := r.db.Model(&model.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *PostRepository) ListLikes(postID uint, offset, limit int) ([]model.PostLike, int64, error) {
	query := r.db.Model(&model.PostLike{}).Where("post_id = ?", postID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var likes []model.PostLike
	if err := query.Preload("User").Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).Find(&likes).Error; err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}

func (r *PostRepository) FindUnlocated(status string) ([]model.Post, error) {
	query := r.db.Where("latitude IS NULL OR longitude IS NULL")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var posts []model.Post
	if err := query.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = deletePosts(tx, ids)
		return err
	})
	return deleted, err
}

// deletePosts 先删除子表，不依赖数据库级联。
func deletePosts(tx *gorm.DB, ids []uint) (int64, error) {
	if err := tx.Where("post_id IN ?", ids).Delete(&model.PostLike{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Where("post_id IN ?", ids).Delete(&model.PostImage{}).Error; err != nil {
		return 0, err
	}
	res := tx.Where("id IN ?", ids).Delete(&model.Post{})
	return res.RowsAffected, res.Error
}
