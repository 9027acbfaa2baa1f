package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// 测试内容：验证未初始化时 L 返回可用的 Nop logger。
func TestL_DefaultsToNop(t *testing.T) {
	global.Store(nil)
	if L() == nil {
		t.Fatalf("期望返回非 nil logger")
	}
	L().Info("should not panic")
}

// 测试内容：验证 Set 注入的 logger 会被 L 返回并收到日志。
func TestSet_ReplacesGlobalLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	L().Info("hello", zap.String("k", "v"))

	if logs.Len() != 1 {
		t.Fatalf("期望 1 条日志，实际为 %d", logs.Len())
	}
	if logs.All()[0].Message != "hello" {
		t.Fatalf("期望日志内容 hello，实际为 %q", logs.All()[0].Message)
	}
}

// 测试内容：验证 Init 支持 debug 与 release 两种模式并解析日志级别。
func TestInit_Modes(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	l, err := Init("debug", "warn")
	if err != nil {
		t.Fatalf("debug 模式初始化失败: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("期望 warn 级别下 info 不输出")
	}

	if _, err := Init("release", ""); err != nil {
		t.Fatalf("release 模式初始化失败: %v", err)
	}
}
