package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultValueNotFound = "||__NOT_FOUND__||"

const (
	CategoryGeneral  = "general"
	CategoryUpload   = "upload"
	CategoryFeed     = "feed"
	CategorySecurity = "security"
	CategoryStatic   = "static"
)

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "喵喵烧烤", Desc: "小程序名称", Category: CategoryGeneral},
	{Key: consts.ConfigMaxUploadSize, Value: "2", Desc: "单张图片最大大小 (MB)", Category: CategoryUpload},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.webp", Desc: "允许上传的图片扩展名", Category: CategoryUpload},
	{Key: consts.ConfigFeedPageSize, Value: "20", Desc: "列表默认每页条数", Category: CategoryFeed},
	{Key: consts.ConfigFeedMaxPageSize, Value: "100", Desc: "列表每页条数上限", Category: CategoryFeed},
	{Key: consts.ConfigNearbyDefaultRadius, Value: "10", Desc: "附近搜索默认半径 (公里)", Category: CategoryFeed},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "1", Desc: "登录接口每秒请求限制 (RPS)", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "登录接口突发请求限制", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1", Desc: "上传接口每秒请求限制 (RPS)", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: CategorySecurity},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非上传接口最大请求体限制 (MB)", Category: CategorySecurity},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)", Category: CategoryStatic},
}

// InitializeSettings 写入缺失的默认配置并清理已废弃的键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return fmt.Errorf("初始化默认配置失败: %w", err)
	}

	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(keys); err != nil {
		return fmt.Errorf("清理废弃配置失败: %w", err)
	}

	s.ClearCache()
	return nil
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value any) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == defaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err == nil {
		s.settingsCache.Store(key, setting.Value)
		return setting.Value
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// 数据库异常时不写缓存，回退默认值
		logger.L().Warn("读取配置失败", zap.String("key", key), zap.Error(err))
		if def, ok := findDefaultSetting(key); ok {
			return def.Value
		}
		return ""
	}

	if def, ok := findDefaultSetting(key); ok {
		newSetting := def
		if err := s.settingStore.Create(&newSetting); err != nil {
			logger.L().Warn("写入默认配置失败", zap.String("key", key), zap.Error(err))
		}
		s.settingsCache.Store(key, def.Value)
		return def.Value
	}

	s.settingsCache.Store(key, defaultValueNotFound)
	return ""
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(s.GetString(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}

func findDefaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}
