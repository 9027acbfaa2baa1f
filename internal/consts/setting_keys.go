package consts

const (
	ApplicationName    = "Miao BBQ Server"
	ApplicationVersion = "1.0.0"
)

const (

	// ConfigSiteName 小程序名称
	ConfigSiteName = "site_name"

	// ConfigMaxUploadSize 图片最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigAllowFileExtensions 允许上传的文件扩展名 (逗号分隔)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigFeedPageSize 列表默认每页条数
	ConfigFeedPageSize = "feed_page_size"

	// ConfigFeedMaxPageSize 列表每页条数上限
	ConfigFeedMaxPageSize = "feed_max_page_size"

	// ConfigNearbyDefaultRadius 附近搜索默认半径 (公里)
	ConfigNearbyDefaultRadius = "nearby_default_radius_km"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 登录接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 登录接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"
)
