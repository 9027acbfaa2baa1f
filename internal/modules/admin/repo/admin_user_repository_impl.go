package repo

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func (r *AdminUserRepository) FindByID(id uint) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepository) List(offset, limit int) ([]model.AdminUser, int64, error) {
	var total int64
	if err := r.db.Model(&model.AdminUser{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var admins []model.AdminUser
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&admins).Error
	return admins, total, err
}

func (r *AdminUserRepository) Create(admin *model.AdminUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		// is_active 列带默认值，false 需要单独写回
		if !admin.IsActive {
			return tx.Model(&model.AdminUser{}).Where("id = ?", admin.ID).Update("is_active", false).Error
		}
		return nil
	})
}

func (r *AdminUserRepository) UpdateByID(id uint, updates map[string]any) error {
	res := r.db.Model(&model.AdminUser{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AdminUserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_id = ?", id).Delete(&model.AdminLog{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.AdminUser{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AdminUserRepository) RecordLogin(id uint, at time.Time, log *model.AdminLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AdminUser{}).Where("id = ?", id).Update("last_login_at", at).Error; err != nil {
			return err
		}
		return tx.Omit("Admin").Create(log).Error
	})
}
