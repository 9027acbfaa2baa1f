package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Status         string          `json:"status" gorm:"size:20;not null;default:pending;index"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null;default:0"`
	ItemCount      int             `json:"item_count" gorm:"not null;default:0"`
	StartTime      *time.Time      `json:"start_time"`
	CompleteTime   *time.Time      `json:"complete_time"`
	WaitingSeconds int64           `json:"waiting_seconds" gorm:"not null;default:0"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Items          []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	DishName  string          `json:"dish_name" gorm:"size:100;not null;index"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(8,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeSave 每次保存前按单价和数量重算小计。
func (i *OrderItem) BeforeSave(_ *gorm.DB) error {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
	return nil
}
