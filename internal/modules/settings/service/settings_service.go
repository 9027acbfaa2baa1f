package service

import (
	"strconv"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/dto"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"go.uber.org/zap"
)

// ListSettings 获取全部运行时配置，敏感值脱敏。
func (s *Service) ListSettings() ([]model.Setting, error) {
	if err := s.InitializeSettings(); err != nil {
		logger.L().Error("初始化配置失败", zap.Error(err))
		return nil, platformservice.NewInternalError("获取配置失败")
	}
	settings, err := s.settingStore.FindAll()
	if err != nil {
		logger.L().Error("读取配置失败", zap.Error(err))
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// UpdateSettings 批量更新配置，全部校验通过后在一个事务内写入并清理缓存。
func (s *Service) UpdateSettings(items []moduledto.UpdateSettingRequest) (int, error) {
	if len(items) == 0 {
		return 0, platformservice.NewValidationError("没有需要更新的配置")
	}
	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item.Key)
		value := strings.TrimSpace(item.Value)
		if err := validateSettingUpdate(key, value); err != nil {
			return 0, err
		}
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{Key: key, Value: value})
	}

	updated, err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue)
	if err != nil {
		logger.L().Error("更新配置失败", zap.Error(err))
		return 0, platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return updated, nil
}

func validateSettingUpdate(key, value string) error {
	if key == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}
	if _, known := defaultSettingOrderByKey[key]; !known {
		return platformservice.NewValidationError("未知配置项: " + key)
	}

	switch key {
	case consts.ConfigMaxUploadSize, consts.ConfigFeedPageSize, consts.ConfigFeedMaxPageSize,
		consts.ConfigRateLimitAuthBurst, consts.ConfigRateLimitUploadBurst, consts.ConfigMaxRequestBodySize:
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return platformservice.NewValidationError(key + " 必须为正整数")
		}
	case consts.ConfigNearbyDefaultRadius, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitUploadRPS:
		if f, err := strconv.ParseFloat(value, 64); err != nil || f <= 0 {
			return platformservice.NewValidationError(key + " 必须为正数")
		}
	case consts.ConfigRateLimitEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(key + " 必须为 true 或 false")
		}
	case consts.ConfigAllowFileExtensions:
		for _, ext := range strings.Split(value, ",") {
			ext = strings.TrimSpace(ext)
			if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
				return platformservice.NewValidationError("扩展名需以 . 开头并用逗号分隔")
			}
		}
	}
	return nil
}
