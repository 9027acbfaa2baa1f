package service

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/metrics"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

// nextStatus 订单状态只能单向推进：pending -> processing -> completed。
var nextStatus = map[string]string{
	model.OrderStatusPending:    model.OrderStatusProcessing,
	model.OrderStatusProcessing: model.OrderStatusCompleted,
}

// StartTimer 开始计时，仅 pending 订单可执行。
func (s *Service) StartTimer(userID, orderID uint) (*model.Order, error) {
	return s.transition(userID, orderID, model.OrderStatusProcessing)
}

// Complete 完成订单并记录等待秒数，仅 processing 订单可执行。
func (s *Service) Complete(userID, orderID uint) (*model.Order, error) {
	return s.transition(userID, orderID, model.OrderStatusCompleted)
}

// UpdateStatus 状态相同视为无操作，下一合法状态走对应流转，其余一律冲突。
func (s *Service) UpdateStatus(userID, orderID uint, status string) (*model.Order, error) {
	order, err := s.GetOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	return s.transition(userID, orderID, status)
}

func (s *Service) transition(userID, orderID uint, to string) (*model.Order, error) {
	order, err := s.orderStore.UpdateLocked(orderID, userID, func(order *model.Order) error {
		if nextStatus[order.Status] != to {
			return transitionConflict(to)
		}
		applyTransition(order, to, s.now())
		return nil
	})
	metrics.ObserveOrderTransition(to, err == nil)
	if err != nil {
		return nil, s.mapStoreError(err, "更新订单状态失败")
	}
	return order, nil
}

func applyTransition(order *model.Order, to string, now time.Time) {
	order.Status = to
	switch to {
	case model.OrderStatusProcessing:
		order.StartTime = &now
	case model.OrderStatusCompleted:
		order.CompleteTime = &now
		order.WaitingSeconds = 0
		if order.StartTime != nil {
			order.WaitingSeconds = int64(now.Sub(*order.StartTime) / time.Second)
		}
	}
}

func transitionConflict(to string) error {
	switch to {
	case model.OrderStatusProcessing:
		return platformservice.NewConflictError("订单状态不允许开始计时")
	case model.OrderStatusCompleted:
		return platformservice.NewConflictError("订单状态不允许完成")
	default:
		return platformservice.NewConflictError("订单状态不允许回退")
	}
}
