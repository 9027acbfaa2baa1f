package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserResolver 根据 openid 查找小程序用户。
type UserResolver interface {
	FindByOpenID(openid string) (*model.User, error)
	// FindDefaultUser 返回最早创建的用户，仅在开发回退开启时使用。
	FindDefaultUser() (*model.User, error)
}

// UserIdentity 解析 X-Openid 头（或 openid 查询参数）对应的用户，解析失败时按匿名继续。
// 配置 identity.allow_default_user 开启时，匿名请求回退为第一个用户。
func UserIdentity(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		openid := strings.TrimSpace(c.GetHeader(consts.HeaderOpenID))
		if openid == "" {
			openid = strings.TrimSpace(c.Query(consts.QueryOpenID))
		}

		var user *model.User
		if openid != "" {
			found, err := resolver.FindByOpenID(openid)
			switch {
			case err == nil:
				user = found
			case !errors.Is(err, gorm.ErrRecordNotFound):
				logger.L().Error("解析用户身份失败", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "解析用户身份失败"})
				c.Abort()
				return
			}
		}

		if user != nil && !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "账号已停用"})
			c.Abort()
			return
		}

		if user == nil && config.Get().Identity.AllowDefaultUser {
			if fallback, err := resolver.FindDefaultUser(); err == nil && fallback.IsActive {
				user = fallback
			}
		}

		if user != nil {
			c.Set(consts.ContextUserID, user.ID)
			c.Set(consts.ContextUser, user)
		}
		c.Next()
	}
}

// RequireUser 要求请求已解析到用户，否则返回 401。
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := httpx.CurrentUser(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要登录后才能操作"})
			c.Abort()
			return
		}
		c.Next()
	}
}
