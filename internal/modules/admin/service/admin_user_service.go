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
	"gorm.io/gorm"
)

func (s *Service) ListAdmins(offset, limit int) ([]model.AdminUser, int64, error) {
	admins, total, err := s.adminStore.List(offset, limit)
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取管理员列表失败", "管理员不存在")
	}
	return admins, total, nil
}

func (s *Service) GetAdmin(id uint) (*model.AdminUser, error) {
	admin, err := s.adminStore.FindByID(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取管理员失败", "管理员不存在")
	}
	return admin, nil
}

// CreateAdmin 创建管理员，密码以 bcrypt 保存。
func (s *Service) CreateAdmin(req moduledto.CreateAdminRequest) (*model.AdminUser, error) {
	username := strings.TrimSpace(req.Username)
	if ok, msg := utils.ValidateAdminUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateAdminPassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	if _, err := s.adminStore.FindByUsername(username); err == nil {
		return nil, platformservice.NewConflictError("用户名已存在")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.mapStoreError(err, "创建管理员失败", "管理员不存在")
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.L().Error("密码加密失败", zap.Error(err))
		return nil, platformservice.NewInternalError("创建管理员失败")
	}

	admin := &model.AdminUser{
		Username:    username,
		Password:    hashed,
		Email:       strings.TrimSpace(req.Email),
		RealName:    strings.TrimSpace(req.RealName),
		IsActive:    req.IsActive == nil || *req.IsActive,
		IsSuperuser: req.IsSuperuser,
	}
	if err := s.adminStore.Create(admin); err != nil {
		return nil, s.mapStoreError(err, "创建管理员失败", "管理员不存在")
	}
	return admin, nil
}

// UpdateAdmin 修改管理员资料；不能停用或降级自己。
func (s *Service) UpdateAdmin(actorID, id uint, req moduledto.UpdateAdminRequest) (*model.AdminUser, error) {
	if _, err := s.GetAdmin(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.RealName != nil {
		updates["real_name"] = strings.TrimSpace(*req.RealName)
	}
	if req.IsActive != nil {
		if actorID == id && !*req.IsActive {
			return nil, platformservice.NewConflictError("不能停用当前登录的管理员")
		}
		updates["is_active"] = *req.IsActive
	}
	if req.IsSuperuser != nil {
		if actorID == id && !*req.IsSuperuser {
			return nil, platformservice.NewConflictError("不能取消自己的超级管理员权限")
		}
		updates["is_superuser"] = *req.IsSuperuser
	}
	if req.Password != nil && *req.Password != "" {
		if ok, msg := utils.ValidateAdminPassword(*req.Password); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			logger.L().Error("密码加密失败", zap.Error(err))
			return nil, platformservice.NewInternalError("更新管理员失败")
		}
		updates["password"] = hashed
	}

	if len(updates) > 0 {
		if err := s.adminStore.UpdateByID(id, updates); err != nil {
			return nil, s.mapStoreError(err, "更新管理员失败", "管理员不存在")
		}
	}
	return s.GetAdmin(id)
}

func (s *Service) DeleteAdmin(actorID, id uint) error {
	if actorID == id {
		return platformservice.NewConflictError("不能删除当前登录的管理员")
	}
	if err := s.adminStore.Delete(id); err != nil {
		return s.mapStoreError(err, "删除管理员失败", "管理员不存在")
	}
	return nil
}

func (s *Service) mapStoreError(err error, fallback, notFound string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError(notFound)
	}
	logger.L().Error(fallback, zap.Error(err))
	return platformservice.NewInternalError(fallback)
}
