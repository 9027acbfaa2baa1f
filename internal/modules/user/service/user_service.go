package service

import (
	"errors"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/user/dto"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"gorm.io/gorm"
)

// ListUsers 按创建时间倒序分页列出用户。
func (s *Service) ListUsers(req moduledto.UserListRequest) ([]model.User, int64, error) {
	users, total, err := s.userStore.List(req.Offset, req.Limit, req.Search)
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取用户列表失败")
	}
	return users, total, nil
}

func (s *Service) GetUser(id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		return nil, platformservice.NewInternalError("获取用户失败")
	}
	return user, nil
}

// CreateUser 直接注册一个 openid，已存在时返回冲突。
func (s *Service) CreateUser(req moduledto.CreateUserRequest) (*model.User, error) {
	openid := strings.TrimSpace(req.OpenID)
	if openid == "" {
		return nil, platformservice.NewValidationError("openid 不能为空")
	}
	if _, err := s.userStore.FindByOpenID(openid); err == nil {
		return nil, platformservice.NewConflictError("该 openid 已注册")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.NewInternalError("创建用户失败")
	}

	user := &model.User{
		OpenID:    openid,
		UnionID:   req.UnionID,
		Nickname:  req.Nickname,
		AvatarURL: req.AvatarURL,
		Gender:    req.Gender,
		City:      req.City,
		Province:  req.Province,
		Country:   req.Country,
		IsActive:  true,
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, platformservice.NewInternalError("创建用户失败")
	}
	return user, nil
}

// UpdateProfile 用户只能修改自己的资料。
func (s *Service) UpdateProfile(actorID, targetID uint, req moduledto.UpdateProfileRequest) (*model.User, error) {
	if actorID != targetID {
		return nil, platformservice.NewForbiddenError("只能修改自己的资料")
	}
	if _, err := s.GetUser(targetID); err != nil {
		return nil, err
	}
	if err := s.userStore.UpdateByID(targetID, req.Updates()); err != nil {
		return nil, platformservice.NewInternalError("更新用户失败")
	}
	return s.GetUser(targetID)
}

// DeactivateUser 用户不做物理删除，只置为停用。
func (s *Service) DeactivateUser(actorID, targetID uint) error {
	if actorID != targetID {
		return platformservice.NewForbiddenError("只能注销自己的账号")
	}
	if _, err := s.GetUser(targetID); err != nil {
		return err
	}
	if err := s.userStore.UpdateByID(targetID, map[string]any{"is_active": false}); err != nil {
		return platformservice.NewInternalError("注销用户失败")
	}
	return nil
}
