package httpx

import (
	"net/http"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"github.com/gin-gonic/gin"
)

// CurrentUser 返回身份中间件解析出的小程序用户。
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(consts.ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

// CurrentUserID 未解析到用户时返回 0。
func CurrentUserID(c *gin.Context) uint {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return 0
}

// MustUser 未解析到用户时写 401 并返回 false。
func MustUser(c *gin.Context) (*model.User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "需要登录后才能操作"})
		return nil, false
	}
	return user, true
}

// CurrentAdmin 返回管理员认证中间件解析出的管理员。
func CurrentAdmin(c *gin.Context) (*model.AdminUser, bool) {
	v, ok := c.Get(consts.ContextAdmin)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*model.AdminUser)
	return admin, ok && admin != nil
}
