package repo

import (
	"errors"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrItemNotFound 明细不属于该订单或不存在。
var ErrItemNotFound = errors.New("order item not found")

type OrderRepository struct {
	db *gorm.DB
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// lockForUpdate SQLite 不支持行锁，依赖其库级写锁。
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *OrderRepository) Create(order *model.Order) error {
	items := order.Items
	order.Items = nil
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return recalculateTotals(tx, order)
	})
	order.Items = items
	return err
}

func (r *OrderRepository) FindForUser(id, userID uint) (*model.Order, error) {
	var order model.Order
	if err := withRelations(r.db).Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListForUser(userID uint, status, orderBy string, offset, limit int) ([]model.Order, int64, error) {
	query := r.db.Model(&model.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	if err := withRelations(query).Order(orderBy).Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateLocked(id, userID uint, fn func(order *model.Order) error) (*model.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		order, err := findLocked(tx, id, userID)
		if err != nil {
			return err
		}
		if err := fn(order); err != nil {
			return err
		}
		return tx.Model(order).Select("status", "start_time", "complete_time", "waiting_seconds").Updates(order).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindForUser(id, userID)
}

func (r *OrderRepository) AddItem(id, userID uint, item *model.OrderItem, guard func(order *model.Order) error) (*model.OrderItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		order, err := findLocked(tx, id, userID)
		if err != nil {
			return err
		}
		if err := guard(order); err != nil {
			return err
		}
		item.OrderID = order.ID
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recalculateTotals(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *OrderRepository) RemoveItem(id, userID, itemID uint, guard func(order *model.Order) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		order, err := findLocked(tx, id, userID)
		if err != nil {
			return err
		}
		if err := guard(order); err != nil {
			return err
		}
		res := tx.Where("id = ? AND order_id = ?", itemID, order.ID).Delete(&model.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return recalculateTotals(tx, order)
	})
}

func (r *OrderRepository) Delete(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		order, err := findLocked(tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

func (r *OrderRepository) StatusAmounts(userID uint) ([]StatusAmount, error) {
	var rows []StatusAmount
	err := r.db.Model(&model.Order{}).
		Select("status", "total_amount").
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

func findLocked(tx *gorm.DB, id, userID uint) (*model.Order, error) {
	var order model.Order
	if err := lockForUpdate(tx).Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// recalculateTotals 从明细行回算件数和总金额，不做增量累加。
func recalculateTotals(tx *gorm.DB, order *model.Order) error {
	var items []model.OrderItem
	if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	order.ItemCount = len(items)
	order.TotalAmount = total.Round(2)
	return tx.Model(order).Select("item_count", "total_amount").Updates(map[string]any{
		"item_count":   order.ItemCount,
		"total_amount": order.TotalAmount,
	}).Error
}
