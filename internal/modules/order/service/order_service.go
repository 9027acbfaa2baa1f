package service

import (
	"errors"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/order/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/order/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 单价列为 decimal(8,2)。
var maxUnitPrice = decimal.RequireFromString("999999.99")

var validStatuses = map[string]bool{
	model.OrderStatusPending:    true,
	model.OrderStatusProcessing: true,
	model.OrderStatusCompleted:  true,
}

var orderingColumns = map[string]string{
	"created_at":    "created_at ASC",
	"-created_at":   "created_at DESC",
	"total_amount":  "total_amount ASC",
	"-total_amount": "total_amount DESC",
}

// CreateOrder 新订单固定从 pending 开始，汇总字段在同一事务内计算。
func (s *Service) CreateOrder(userID uint, req moduledto.CreateOrderRequest) (*model.Order, error) {
	if req.Status != "" && req.Status != model.OrderStatusPending {
		return nil, platformservice.NewValidationError("新订单状态只能为 pending")
	}

	order := &model.Order{
		UserID: userID,
		Status: model.OrderStatusPending,
	}
	for _, itemReq := range req.Items {
		item, err := newOrderItem(itemReq)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}

	if err := s.orderStore.Create(order); err != nil {
		return nil, s.mapStoreError(err, "创建订单失败")
	}
	return s.GetOrder(userID, order.ID)
}

func (s *Service) GetOrder(userID, orderID uint) (*model.Order, error) {
	order, err := s.orderStore.FindForUser(orderID, userID)
	if err != nil {
		return nil, s.mapStoreError(err, "获取订单失败")
	}
	return order, nil
}

// ListOrders 只返回调用者自己的订单，默认按创建时间倒序。
func (s *Service) ListOrders(req moduledto.OrderListRequest) ([]model.Order, int64, error) {
	if req.Status != "" && !validStatuses[req.Status] {
		return nil, 0, platformservice.NewValidationError("无效的订单状态")
	}
	orderBy, ok := orderingColumns[strings.TrimSpace(req.Ordering)]
	if !ok {
		orderBy = orderingColumns["-created_at"]
	}

	orders, total, err := s.orderStore.ListForUser(req.UserID, req.Status, orderBy, req.Offset, req.Limit)
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取订单列表失败")
	}
	return orders, total, nil
}

// AddItem 已完成的订单不能再添加菜品。
func (s *Service) AddItem(userID, orderID uint, req moduledto.OrderItemRequest) (*model.OrderItem, error) {
	item, err := newOrderItem(req)
	if err != nil {
		return nil, err
	}
	created, err := s.orderStore.AddItem(orderID, userID, item, func(order *model.Order) error {
		if order.Status == model.OrderStatusCompleted {
			return platformservice.NewConflictError("已完成的订单不能添加菜品")
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreError(err, "添加菜品失败")
	}
	return created, nil
}

// RemoveItem 已完成的订单不能再删除菜品。
func (s *Service) RemoveItem(userID, orderID, itemID uint) error {
	err := s.orderStore.RemoveItem(orderID, userID, itemID, func(order *model.Order) error {
		if order.Status == model.OrderStatusCompleted {
			return platformservice.NewConflictError("已完成的订单不能删除菜品")
		}
		return nil
	})
	if errors.Is(err, repo.ErrItemNotFound) {
		return platformservice.NewNotFoundError("菜品不存在")
	}
	if err != nil {
		return s.mapStoreError(err, "删除菜品失败")
	}
	return nil
}

func (s *Service) DeleteOrder(userID, orderID uint) error {
	if err := s.orderStore.Delete(orderID, userID); err != nil {
		return s.mapStoreError(err, "删除订单失败")
	}
	return nil
}

// Statistics 统计调用者各状态订单数、总金额与平均金额。
func (s *Service) Statistics(userID uint) (*moduledto.StatisticsResponse, error) {
	rows, err := s.orderStore.StatusAmounts(userID)
	if err != nil {
		return nil, s.mapStoreError(err, "获取订单统计失败")
	}

	stats := &moduledto.StatisticsResponse{}
	total := decimal.Zero
	for _, row := range rows {
		stats.TotalOrders++
		total = total.Add(row.TotalAmount)
		switch row.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusProcessing:
			stats.ProcessingOrders++
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}

	average := decimal.Zero
	if stats.TotalOrders > 0 {
		average = total.Div(decimal.NewFromInt(stats.TotalOrders)).Round(2)
	}
	stats.TotalAmount = total.StringFixed(2)
	stats.AverageAmount = average.StringFixed(2)
	return stats, nil
}

func newOrderItem(req moduledto.OrderItemRequest) (*model.OrderItem, error) {
	name := strings.TrimSpace(req.DishName)
	if name == "" {
		return nil, platformservice.NewValidationError("菜品名称不能为空")
	}
	if req.Quantity <= 0 {
		return nil, platformservice.NewValidationError("数量必须大于 0")
	}
	if req.UnitPrice.IsNegative() {
		return nil, platformservice.NewValidationError("单价不能为负数")
	}
	if req.UnitPrice.GreaterThan(maxUnitPrice) {
		return nil, platformservice.NewValidationError("单价超出范围")
	}
	return &model.OrderItem{
		DishName:  name,
		UnitPrice: req.UnitPrice.Round(2),
		Quantity:  req.Quantity,
	}, nil
}

// mapStoreError 透传业务错误，记录未预期的存储错误。
func (s *Service) mapStoreError(err error, fallback string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("订单不存在")
	}
	logger.L().Error(fallback, zap.Error(err))
	return platformservice.NewInternalError(fallback)
}
