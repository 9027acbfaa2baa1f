package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	"github.com/1nFrastr/miao-bbq-app/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminResolver 根据 ID 加载管理员。
type AdminResolver interface {
	FindAdminByID(id uint) (*model.AdminUser, error)
}

// AdminAuth 解析管理员身份：优先 Authorization: Bearer <token>，其次 X-Admin-Id 头或 admin_id 查询参数。
func AdminAuth(resolver AdminResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := adminIDFromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要管理员认证才能访问"})
			c.Abort()
			return
		}

		admin, err := resolver.FindAdminByID(adminID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.L().Error("加载管理员失败", zap.Uint("admin_id", adminID), zap.Error(err))
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "管理员不存在"})
			c.Abort()
			return
		}
		if !admin.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "管理员账号已停用"})
			c.Abort()
			return
		}

		c.Set(consts.ContextAdminID, admin.ID)
		c.Set(consts.ContextAdmin, admin)
		c.Set(consts.ContextAdminRoot, admin.IsSuperuser)
		c.Next()
	}
}

func adminIDFromRequest(c *gin.Context) (uint, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return 0, false
		}
		claims, err := utils.ParseAdminToken(parts[1])
		if err != nil {
			return 0, false
		}
		return claims.ID, true
	}

	raw := strings.TrimSpace(c.GetHeader(consts.HeaderAdminID))
	if raw == "" {
		raw = strings.TrimSpace(c.Query(consts.QueryAdminID))
	}
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// SuperuserCheck 破坏性操作仅允许超级管理员。
func SuperuserCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := httpx.CurrentAdmin(c)
		if !ok || !admin.IsSuperuser {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要超级管理员权限"})
			c.Abort()
			return
		}
		c.Next()
	}
}
