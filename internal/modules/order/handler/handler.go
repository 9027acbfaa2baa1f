package handler

import orderservice "github.com/1nFrastr/miao-bbq-app/internal/modules/order/service"

type Handler struct {
	orderService *orderservice.Service
}

func New(orderService *orderservice.Service) *Handler {
	return &Handler{orderService: orderService}
}
