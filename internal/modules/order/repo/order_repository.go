package repo

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusAmount 统计用的订单状态与金额。
type StatusAmount struct {
	Status      string
	TotalAmount decimal.Decimal
}

type OrderStore interface {
	// Create 在同一事务内写入订单、明细并回算汇总字段。
	Create(order *model.Order) error
	FindForUser(id, userID uint) (*model.Order, error)
	ListForUser(userID uint, status, orderBy string, offset, limit int) ([]model.Order, int64, error)
	// UpdateLocked 锁定订单行后执行 fn，fn 返回 nil 时保存对订单的修改。
	UpdateLocked(id, userID uint, fn func(order *model.Order) error) (*model.Order, error)
	// AddItem 在 guard 通过后插入明细并回算汇总字段。
	AddItem(id, userID uint, item *model.OrderItem, guard func(order *model.Order) error) (*model.OrderItem, error)
	// RemoveItem 在 guard 通过后删除明细并回算汇总字段。
	RemoveItem(id, userID, itemID uint, guard func(order *model.Order) error) error
	Delete(id, userID uint) error
	StatusAmounts(userID uint) ([]StatusAmount, error)
}

func NewOrderRepository(db *gorm.DB) OrderStore {
	return &OrderRepository{db: db}
}
