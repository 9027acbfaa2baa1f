package service

import (
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
)

// 测试内容：验证读取默认配置时会写入数据库并与返回值一致。
func TestGetString_DefaultSettingInserted(t *testing.T) {
	gdb := setupTestDB(t)

	val := testService.GetString(consts.ConfigAllowFileExtensions)
	if val != ".jpg,.jpeg,.png,.webp" {
		t.Fatalf("期望默认扩展名列表，实际为 %q", val)
	}

	var s model.Setting
	if err := gdb.Where(map[string]any{"key": consts.ConfigAllowFileExtensions}).First(&s).Error; err != nil {
		t.Fatalf("期望默认配置已写入数据库: %v", err)
	}
	if s.Value != val {
		t.Fatalf("数据库值不一致: got=%q 期望=%q", s.Value, val)
	}
}

// 测试内容：验证未知 key 返回空值并缓存未找到标记。
func TestGetString_UnknownKeyReturnsEmpty(t *testing.T) {
	setupTestDB(t)

	if val := testService.GetString("unknown_key_not_exists"); val != "" {
		t.Fatalf("期望空字符串，实际为 %q", val)
	}
	if val := testService.GetString("unknown_key_not_exists"); val != "" {
		t.Fatalf("期望空字符串，实际为 %q", val)
	}
}

// 测试内容：验证数值与布尔配置解析，解析失败回退为零值。
func TestTypedGetters(t *testing.T) {
	gdb := setupTestDB(t)

	rows := []model.Setting{
		{Key: "i_ok", Value: "42"},
		{Key: "i_bad", Value: "x"},
		{Key: "f_ok", Value: "0.5"},
		{Key: "b_ok", Value: "true"},
		{Key: "b_bad", Value: "maybe"},
	}
	if err := gdb.Create(&rows).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	if got := testService.GetInt("i_ok"); got != 42 {
		t.Fatalf("期望 42，实际为 %d", got)
	}
	if got := testService.GetInt64("i_ok"); got != 42 {
		t.Fatalf("期望 42，实际为 %d", got)
	}
	if got := testService.GetInt("i_bad"); got != 0 {
		t.Fatalf("期望解析失败返回 0，实际为 %d", got)
	}
	if got := testService.GetFloat64("f_ok"); got != 0.5 {
		t.Fatalf("期望 0.5，实际为 %v", got)
	}
	if !testService.GetBool("b_ok") {
		t.Fatalf("期望 true")
	}
	if testService.GetBool("b_bad") {
		t.Fatalf("期望解析失败返回 false")
	}
}

// 测试内容：验证缓存命中后需 ClearCache 才能读到新值。
func TestClearCache_ReloadsValue(t *testing.T) {
	gdb := setupTestDB(t)

	if got := testService.GetInt(consts.ConfigFeedPageSize); got != 20 {
		t.Fatalf("期望默认每页 20，实际为 %d", got)
	}
	if err := gdb.Model(&model.Setting{}).Where(map[string]any{"key": consts.ConfigFeedPageSize}).Update("value", "30").Error; err != nil {
		t.Fatalf("更新配置失败: %v", err)
	}
	if got := testService.GetInt(consts.ConfigFeedPageSize); got != 20 {
		t.Fatalf("期望缓存仍返回 20，实际为 %d", got)
	}
	testService.ClearCache()
	if got := testService.GetInt(consts.ConfigFeedPageSize); got != 30 {
		t.Fatalf("期望清缓存后返回 30，实际为 %d", got)
	}
}

// 测试内容：验证初始化设置会清理非默认配置键，并保留默认键已有值。
func TestInitializeSettings_RemovesLegacySettings(t *testing.T) {
	gdb := setupTestDB(t)

	if err := gdb.Create(&model.Setting{Key: "legacy_custom_key", Value: "legacy"}).Error; err != nil {
		t.Fatalf("写入旧配置失败: %v", err)
	}
	if err := gdb.Create(&model.Setting{Key: consts.ConfigSiteName, Value: "我的烧烤"}).Error; err != nil {
		t.Fatalf("写入默认键失败: %v", err)
	}

	if err := testService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings 失败: %v", err)
	}

	var count int64
	gdb.Model(&model.Setting{}).Where(map[string]any{"key": "legacy_custom_key"}).Count(&count)
	if count != 0 {
		t.Fatalf("期望旧配置被清理")
	}

	var siteName model.Setting
	if err := gdb.Where(map[string]any{"key": consts.ConfigSiteName}).First(&siteName).Error; err != nil {
		t.Fatalf("期望默认键保留: %v", err)
	}
	if siteName.Value != "我的烧烤" {
		t.Fatalf("期望保留已有值，实际为 %q", siteName.Value)
	}
	if siteName.Category != CategoryGeneral {
		t.Fatalf("期望同步分类 %q，实际为 %q", CategoryGeneral, siteName.Category)
	}

	var total int64
	gdb.Model(&model.Setting{}).Count(&total)
	if total != int64(len(DefaultSettings)) {
		t.Fatalf("期望 %d 条配置，实际为 %d", len(DefaultSettings), total)
	}
}
