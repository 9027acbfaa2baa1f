package router

import (
	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	uploadhandler "github.com/1nFrastr/miao-bbq-app/internal/modules/upload/handler"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerUploadRoutes(api *gin.RouterGroup, h *uploadhandler.Handler, appService *service.AppService) {
	// 上传限流：读取配置
	uploadLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware(appService)

	api.POST("/upload/image", uploadBodyLimit, uploadLimiter, h.UploadImage)
}
