package handler

import (
	"net/http"
	"strconv"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/order/dto"

	"github.com/gin-gonic/gin"
)

// ListOrders 当前用户的订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	page := httpx.ParsePage(c, h.orderService.AppService)
	orders, total, err := h.orderService.ListOrders(moduledto.OrderListRequest{
		UserID:   user.ID,
		Status:   c.Query("status"),
		Ordering: c.Query("ordering"),
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取订单列表失败")
		return
	}
	httpx.WritePage(c, page, total, moduledto.NewOrderResponses(orders))
}

// CreateOrder 创建订单，可同时提交菜品
func (h *Handler) CreateOrder(c *gin.Context) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	var req moduledto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	order, err := h.orderService.CreateOrder(user.ID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建订单失败")
		return
	}
	c.JSON(http.StatusCreated, moduledto.NewOrderResponse(order))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(user, orderID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取订单失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewOrderResponse(order))
}

// UpdateOrder PUT/PATCH 只能修改状态
func (h *Handler) UpdateOrder(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	var req moduledto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	order, err := h.orderService.UpdateStatus(user, orderID, req.Status)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新订单失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewOrderResponse(order))
}

// DeleteOrder 删除订单及其菜品
func (h *Handler) DeleteOrder(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	if err := h.orderService.DeleteOrder(user, orderID); err != nil {
		httpx.WriteServiceError(c, err, "删除订单失败")
		return
	}
	c.Status(http.StatusNoContent)
}

// StartTimer 开始计时
func (h *Handler) StartTimer(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	order, err := h.orderService.StartTimer(user, orderID)
	if err != nil {
		httpx.WriteServiceError(c, err, "开始计时失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewOrderResponse(order))
}

// Complete 完成订单
func (h *Handler) Complete(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	order, err := h.orderService.Complete(user, orderID)
	if err != nil {
		httpx.WriteServiceError(c, err, "完成订单失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewOrderResponse(order))
}

// AddItem 添加菜品
func (h *Handler) AddItem(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	var req moduledto.OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	item, err := h.orderService.AddItem(user, orderID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "添加菜品失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewOrderItemResponse(*item))
}

// RemoveItem 删除菜品，菜品 ID 通过 item_id 查询参数传入
func (h *Handler) RemoveItem(c *gin.Context) {
	user, orderID, ok := h.userAndOrder(c)
	if !ok {
		return
	}
	raw := c.Query("item_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少item_id参数"})
		return
	}
	itemID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || itemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id 参数错误"})
		return
	}
	if err := h.orderService.RemoveItem(user, orderID, uint(itemID)); err != nil {
		httpx.WriteServiceError(c, err, "删除菜品失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Statistics 当前用户的订单统计
func (h *Handler) Statistics(c *gin.Context) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	stats, err := h.orderService.Statistics(user.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取订单统计失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) userAndOrder(c *gin.Context) (uint, uint, bool) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return 0, 0, false
	}
	orderID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	return user.ID, orderID, true
}
