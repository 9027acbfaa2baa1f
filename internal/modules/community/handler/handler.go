package handler

import communityservice "github.com/1nFrastr/miao-bbq-app/internal/modules/community/service"

type Handler struct {
	communityService *communityservice.Service
}

func New(communityService *communityservice.Service) *Handler {
	return &Handler{communityService: communityService}
}
