package repo

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type AdminLogRepository struct {
	db *gorm.DB
}

func (r *AdminLogRepository) FindByID(id uint) (*model.AdminLog, error) {
	var log model.AdminLog
	if err := r.db.Preload("Admin").First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *AdminLogRepository) List(filter AdminLogFilter) ([]model.AdminLog, int64, error) {
	query := r.db.Model(&model.AdminLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var logs []model.AdminLog
	err := query.Preload("Admin").
		Order("created_at DESC").Order("id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&logs).Error
	return logs, total, err
}
