package repo

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func (r *DashboardRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountPosts(status string) (int64, error) {
	query := r.db.Model(&model.Post{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountActiveUsers(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("last_login_at >= ? AND last_login_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) StatusHistogram() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&model.Post{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) RecentPosts(status string, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("status = ?", status).
		Preload("User").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("id ASC")
		}).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
