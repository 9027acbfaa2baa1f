package dto

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	DishName  string          `json:"dish_name" binding:"required,max=100"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Status string             `json:"status" binding:"omitempty,oneof=pending processing completed"`
	Items  []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateOrderRequest 订单只允许通过状态机修改状态。
type UpdateOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed"`
}

type OrderListRequest struct {
	UserID   uint
	Status   string
	Ordering string
	Offset   int
	Limit    int
}

type OrderItemResponse struct {
	ID        uint      `json:"id"`
	DishName  string    `json:"dish_name"`
	UnitPrice string    `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  string    `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderResponse struct {
	ID             uint                `json:"id"`
	User           *model.User         `json:"user"`
	Status         string              `json:"status"`
	TotalAmount    string              `json:"total_amount"`
	ItemCount      int                 `json:"item_count"`
	StartTime      *time.Time          `json:"start_time"`
	CompleteTime   *time.Time          `json:"complete_time"`
	WaitingSeconds int64               `json:"waiting_seconds"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Items          []OrderItemResponse `json:"items"`
}

type StatisticsResponse struct {
	TotalOrders      int64  `json:"total_orders"`
	PendingOrders    int64  `json:"pending_orders"`
	ProcessingOrders int64  `json:"processing_orders"`
	CompletedOrders  int64  `json:"completed_orders"`
	TotalAmount      string `json:"total_amount"`
	AverageAmount    string `json:"average_amount"`
}

func NewOrderItemResponse(item model.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		DishName:  item.DishName,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal.StringFixed(2),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func NewOrderResponse(order *model.Order) OrderResponse {
	resp := OrderResponse{
		ID:             order.ID,
		Status:         order.Status,
		TotalAmount:    order.TotalAmount.StringFixed(2),
		ItemCount:      order.ItemCount,
		StartTime:      order.StartTime,
		CompleteTime:   order.CompleteTime,
		WaitingSeconds: order.WaitingSeconds,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Items:          make([]OrderItemResponse, 0, len(order.Items)),
	}
	if order.User.ID != 0 {
		user := order.User
		resp.User = &user
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, NewOrderItemResponse(item))
	}
	return resp
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
