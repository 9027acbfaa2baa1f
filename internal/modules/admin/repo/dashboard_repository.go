package repo

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type StatusCount struct {
	Status string
	Count  int64
}

type DashboardStore interface {
	CountUsers() (int64, error)
	CountPosts(status string) (int64, error)
	// CountActiveUsers 统计 last_login_at 落在 [from, to) 内的用户数。
	CountActiveUsers(from, to time.Time) (int64, error)
	StatusHistogram() ([]StatusCount, error)
	RecentPosts(status string, limit int) ([]model.Post, error)
}

func NewDashboardRepository(db *gorm.DB) DashboardStore {
	return &DashboardRepository{db: db}
}
