package repo

import (
	"fmt"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

// InitializeDefaults 补齐缺失的默认配置；已存在的键只同步描述、分类和敏感标记，保留当前值。
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			row := def
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"desc", "category", "sensitive"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("初始化默认配置 %q 失败: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	// key 在 MySQL 中是保留字，统一用 map 条件让 gorm 负责引用列名
	if len(allowedKeys) == 0 {
		return r.db.Where("1 = 1").Delete(&model.Setting{}).Error
	}
	return r.db.Not(map[string]any{"key": allowedKeys}).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(map[string]any{"key": key}).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Create 并发首次读取同一默认键时可能重复插入，冲突直接忽略。
func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "category"}},
		{Column: clause.Column{Name: "key"}},
	}}).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings 批量写入配置值，返回实际写入的条数。
// 敏感配置提交掩码值时视为未修改。
func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) (int, error) {
	updated := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var current model.Setting
			found := tx.Where(map[string]any{"key": item.Key}).Limit(1).Find(&current).RowsAffected > 0
			if found && current.Sensitive && item.Value == maskedValue {
				continue
			}

			row := model.Setting{Key: item.Key, Value: item.Value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("更新配置 %q 失败: %w", item.Key, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
