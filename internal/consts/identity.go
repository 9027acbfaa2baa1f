package consts

// 请求身份相关的头与查询参数。
const (
	HeaderOpenID  = "X-Openid"
	QueryOpenID   = "openid"
	HeaderAdminID = "X-Admin-Id"
	QueryAdminID  = "admin_id"
)

// gin.Context 中保存身份信息的键。
const (
	ContextUserID    = "user_id"
	ContextUser      = "user"
	ContextAdminID   = "admin_id"
	ContextAdmin     = "admin"
	ContextAdminRoot = "admin_superuser"
)
