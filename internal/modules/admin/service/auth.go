package service

import (
	"errors"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const loginFailedMessage = "用户名或密码错误"

// Login 管理员登录：校验密码、记录登录时间与日志并签发令牌。
func (s *Service) Login(req moduledto.LoginRequest, meta moduledto.RequestMeta) (*moduledto.LoginResponse, error) {
	admin, err := s.adminStore.FindByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError(loginFailedMessage)
		}
		logger.L().Error("查询管理员失败", zap.Error(err))
		return nil, platformservice.NewInternalError("登录失败")
	}
	if !admin.IsActive {
		return nil, platformservice.NewUnauthorizedError(loginFailedMessage)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, platformservice.NewUnauthorizedError(loginFailedMessage)
	}

	now := s.now()
	log := newLog(admin.ID, model.AdminActionLogin, model.AdminTargetAdmin, admin.ID, "管理员登录", meta)
	if err := s.adminStore.RecordLogin(admin.ID, now, log); err != nil {
		logger.L().Error("记录管理员登录失败", zap.Error(err), zap.Uint("admin_id", admin.ID))
		return nil, platformservice.NewInternalError("登录失败")
	}
	admin.LastLoginAt = &now

	ttl := utils.AdminTokenTTL()
	token, err := utils.GenerateAdminToken(admin.ID, admin.Username, admin.IsSuperuser, ttl)
	if err != nil {
		logger.L().Error("签发管理员令牌失败", zap.Error(err))
		return nil, platformservice.NewInternalError("登录失败")
	}

	return &moduledto.LoginResponse{
		Admin:     admin,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		Success:   true,
	}, nil
}

// FindAdminByID 供管理员鉴权中间件解析身份。
func (s *Service) FindAdminByID(id uint) (*model.AdminUser, error) {
	return s.adminStore.FindByID(id)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func newLog(adminID uint, action, targetType string, targetID uint, description string, meta moduledto.RequestMeta) *model.AdminLog {
	return &model.AdminLog{
		AdminID:     adminID,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
		IPAddress:   meta.IP,
		UserAgent:   truncate(meta.UserAgent, 500),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
