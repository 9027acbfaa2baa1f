package handler

import uploadservice "github.com/1nFrastr/miao-bbq-app/internal/modules/upload/service"

type Handler struct {
	uploadService *uploadservice.Service
}

func New(uploadService *uploadservice.Service) *Handler {
	return &Handler{uploadService: uploadService}
}
