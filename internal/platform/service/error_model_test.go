package service

import (
	"errors"
	"fmt"
	"testing"
)

// 测试内容：验证包装后的 ServiceError 仍可被识别并保留错误码。
func TestAsServiceError_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewConflictError("订单已完成"))

	serviceErr, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("期望识别为 ServiceError")
	}
	if serviceErr.Code != ErrorCodeConflict {
		t.Fatalf("期望错误码 conflict，实际为 %q", serviceErr.Code)
	}
	if serviceErr.Error() != "订单已完成" {
		t.Fatalf("期望错误信息保留，实际为 %q", serviceErr.Error())
	}
}

// 测试内容：验证普通错误不会被识别为 ServiceError。
func TestAsServiceError_PlainError(t *testing.T) {
	if _, ok := AsServiceError(errors.New("boom")); ok {
		t.Fatalf("期望普通错误返回 false")
	}
}
