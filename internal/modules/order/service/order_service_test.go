package service

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/order/dto"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

// 测试内容：验证创建订单时汇总金额与件数按明细计算（3.00×10 + 8.00×5 = 70.00）。
func TestCreateOrder_ComputesTotals(t *testing.T) {
	gdb := setupTestDB(t)
	u := createUser(t, gdb, "o1")

	order, err := testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{
		Items: []moduledto.OrderItemRequest{
			{DishName: "羊肉串", UnitPrice: price("3.00"), Quantity: 10},
			{DishName: "烤鸡翅", UnitPrice: price("8.00"), Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("期望状态 pending，实际为 %s", order.Status)
	}
	if order.TotalAmount.StringFixed(2) != "70.00" || order.ItemCount != 2 {
		t.Fatalf("期望 total=70.00 item_count=2，实际为 total=%s item_count=%d", order.TotalAmount.StringFixed(2), order.ItemCount)
	}
	if order.Items[0].Subtotal.StringFixed(2) != "30.00" {
		t.Fatalf("期望小计 30.00，实际为 %s", order.Items[0].Subtotal.StringFixed(2))
	}
}

// 测试内容：验证新订单不能直接指定非 pending 状态。
func TestCreateOrder_RejectsNonPendingStatus(t *testing.T) {
	gdb := setupTestDB(t)
	u := createUser(t, gdb, "o1")

	_, err := testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{Status: model.OrderStatusCompleted})
	assertServiceCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证添加/删除菜品后总金额始终等于剩余明细之和。
func TestAddRemoveItem_KeepsTotalsConsistent(t *testing.T) {
	gdb := setupTestDB(t)
	u := createUser(t, gdb, "o1")

	order, err := testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{})
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	first, err := testService.AddItem(u.ID, order.ID, moduledto.OrderItemRequest{DishName: "韭菜", UnitPrice: price("2.50"), Quantity: 4})
	if err != nil {
		t.Fatalf("添加菜品失败: %v", err)
	}
	if _, err := testService.AddItem(u.ID, order.ID, moduledto.OrderItemRequest{DishName: "生蚝", UnitPrice: price("12.80"), Quantity: 3}); err != nil {
		t.Fatalf("添加菜品失败: %v", err)
	}

	got, _ := testService.GetOrder(u.ID, order.ID)
	if got.TotalAmount.StringFixed(2) != "48.40" || got.ItemCount != 2 {
		t.Fatalf("期望 total=48.40 item_count=2，实际为 total=%s item_count=%d", got.TotalAmount.StringFixed(2), got.ItemCount)
	}

	if err := testService.RemoveItem(u.ID, order.ID, first.ID); err != nil {
		t.Fatalf("删除菜品失败: %v", err)
	}
	got, _ = testService.GetOrder(u.ID, order.ID)
	if got.TotalAmount.StringFixed(2) != "38.40" || got.ItemCount != 1 {
		t.Fatalf("期望 total=38.40 item_count=1，实际为 total=%s item_count=%d", got.TotalAmount.StringFixed(2), got.ItemCount)
	}

	err = testService.RemoveItem(u.ID, order.ID, first.ID)
	assertServiceCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证已完成订单不能再增删菜品，且金额保持不变。
func TestAddItem_CompletedOrderConflict(t *testing.T) {
	gdb := setupTestDB(t)
	u := createUser(t, gdb, "o1")

	order, _ := testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{
		Items: []moduledto.OrderItemRequest{{DishName: "烤馒头", UnitPrice: price("1.00"), Quantity: 2}},
	})
	if _, err := testService.StartTimer(u.ID, order.ID); err != nil {
		t.Fatalf("开始计时失败: %v", err)
	}
	if _, err := testService.Complete(u.ID, order.ID); err != nil {
		t.Fatalf("完成订单失败: %v", err)
	}

	_, err := testService.AddItem(u.ID, order.ID, moduledto.OrderItemRequest{DishName: "啤酒", UnitPrice: price("5.00"), Quantity: 1})
	assertServiceCode(t, err, platformservice.ErrorCodeConflict)

	err = testService.RemoveItem(u.ID, order.ID, order.Items[0].ID)
	assertServiceCode(t, err, platformservice.ErrorCodeConflict)

	got, _ := testService.GetOrder(u.ID, order.ID)
	if got.TotalAmount.StringFixed(2) != "2.00" || got.ItemCount != 1 {
		t.Fatalf("期望金额不变，实际为 total=%s item_count=%d", got.TotalAmount.StringFixed(2), got.ItemCount)
	}
}

// 测试内容：验证他人订单视为不存在。
func TestGetOrder_ScopedToOwner(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createUser(t, gdb, "owner")
	other := createUser(t, gdb, "other")

	order, _ := testService.CreateOrder(owner.ID, moduledto.CreateOrderRequest{})

	_, err := testService.GetOrder(other.ID, order.ID)
	assertServiceCode(t, err, platformservice.ErrorCodeNotFound)

	err = testService.DeleteOrder(other.ID, order.ID)
	assertServiceCode(t, err, platformservice.ErrorCodeNotFound)

	if err := testService.DeleteOrder(owner.ID, order.ID); err != nil {
		t.Fatalf("删除订单失败: %v", err)
	}
	_, err = testService.GetOrder(owner.ID, order.ID)
	assertServiceCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证统计按状态计数并计算平均金额，无订单时平均为 0。
func TestStatistics(t *testing.T) {
	gdb := setupTestDB(t)
	u := createUser(t, gdb, "o1")

	empty, err := testService.Statistics(u.ID)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if empty.TotalOrders != 0 || empty.AverageAmount != "0.00" {
		t.Fatalf("期望空统计，实际为 %+v", empty)
	}

	a, _ := testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{
		Items: []moduledto.OrderItemRequest{{DishName: "a", UnitPrice: price("10.00"), Quantity: 1}},
	})
	_, _ = testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{
		Items: []moduledto.OrderItemRequest{{DishName: "b", UnitPrice: price("5.00"), Quantity: 1}},
	})
	_, _ = testService.CreateOrder(u.ID, moduledto.CreateOrderRequest{
		Items: []moduledto.OrderItemRequest{{DishName: "c", UnitPrice: price("5.00"), Quantity: 1}},
	})
	if _, err := testService.StartTimer(u.ID, a.ID); err != nil {
		t.Fatalf("开始计时失败: %v", err)
	}

	stats, err := testService.Statistics(u.ID)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if stats.TotalOrders != 3 || stats.PendingOrders != 2 || stats.ProcessingOrders != 1 || stats.CompletedOrders != 0 {
		t.Fatalf("状态计数不符合预期: %+v", stats)
	}
	if stats.TotalAmount != "20.00" || stats.AverageAmount != "6.67" {
		t.Fatalf("期望 total=20.00 average=6.67，实际为 %+v", stats)
	}
}
