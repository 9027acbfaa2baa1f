package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/user/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/wechat"

	"go.uber.org/zap"
)

// Login 按 openid（或 code 换取的 openid）查找或创建用户，并刷新最后登录时间。
func (s *Service) Login(ctx context.Context, req moduledto.LoginRequest) (*moduledto.LoginResponse, error) {
	openid := strings.TrimSpace(req.OpenID)
	unionid := req.UnionID

	if openid == "" {
		code := strings.TrimSpace(req.Code)
		if code == "" {
			return nil, platformservice.NewValidationError("缺少openid参数")
		}
		if s.exchanger == nil {
			return nil, platformservice.NewInternalError("微信登录未配置")
		}
		session, err := s.exchanger.Code2Session(ctx, code)
		if err != nil {
			logger.L().Error("微信登录凭证校验失败", zap.Error(err))
			if errors.Is(err, wechat.ErrNotConfigured) {
				return nil, platformservice.NewInternalError("微信登录未配置")
			}
			return nil, platformservice.NewInternalError("微信登录失败")
		}
		openid = session.OpenID
		if unionid == nil && session.UnionID != "" {
			unionid = &session.UnionID
		}
	}

	candidate := &model.User{
		OpenID:    openid,
		UnionID:   unionid,
		Nickname:  req.Nickname,
		AvatarURL: req.AvatarURL,
		Gender:    req.Gender,
		City:      req.City,
		Province:  req.Province,
		Country:   req.Country,
		IsActive:  true,
	}
	user, created, err := s.userStore.GetOrCreate(candidate)
	if err != nil {
		return nil, platformservice.NewInternalError("登录失败")
	}
	if !user.IsActive {
		return nil, platformservice.NewForbiddenError("账号已停用")
	}

	now := time.Now()
	if err := s.userStore.TouchLastLogin(user.ID, now); err != nil {
		return nil, platformservice.NewInternalError("登录失败")
	}
	user.LastLoginAt = &now

	return &moduledto.LoginResponse{User: user, IsNewUser: created}, nil
}
