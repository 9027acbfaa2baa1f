package router

import (
	"net/http"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	"github.com/1nFrastr/miao-bbq-app/internal/modules"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/metrics"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()
	mediaPrefix := mediaURLPrefix(cfg.Upload)

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())
	// 图片本身已压缩，跳过静态目录
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{mediaPrefix})))

	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware())
		r.GET(metricsPath(cfg.Metrics), metrics.Handler())
	}

	// 本地磁盘驱动时由服务自身提供上传文件访问
	if isLocalDriver(cfg.Storage.Driver) && cfg.Upload.PublicBaseURL == "" {
		media := r.Group(mediaPrefix)
		media.Use(middleware.StaticCacheMiddleware(rt.service))
		media.Static("/", cfg.Upload.Path)
	}

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// 认证限流：读取配置（用户登录与管理员登录复用同一个实例）
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)
	identity := middleware.UserIdentity(rt.modules.User.Service)

	registerPublicRoutes(api)
	registerUserRoutes(api, identity, authLimiter, rt.modules.User.Handler)
	registerOrderRoutes(api, identity, rt.modules.Order.Handler)
	registerCommunityRoutes(api, identity, rt.modules.Community.Handler)
	registerUploadRoutes(api, rt.modules.Upload.Handler, rt.service)
	registerAdminRoutes(api, authLimiter, rt.modules.Admin.Service, rt.modules.Admin.Handler, rt.modules.Settings.Handler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "接口不存在"})
	})
}

func mediaURLPrefix(cfg config.UploadConfig) string {
	prefix := strings.TrimSpace(cfg.URLPrefix)
	if prefix == "" {
		prefix = "/media/"
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}

func metricsPath(cfg config.MetricsConfig) string {
	if cfg.Path == "" {
		return "/metrics"
	}
	return cfg.Path
}

func isLocalDriver(driver string) bool {
	d := strings.ToLower(strings.TrimSpace(driver))
	return d == "" || d == "local"
}
