package seed

import (
	"testing"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"golang.org/x/crypto/bcrypt"
)

// 测试内容：验证演示数据写入后订单金额与管理员密码正确。
func TestRun_CreatesDemoData(t *testing.T) {
	gdb := testutils.SetupDB(t)
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	result, err := Run(gdb, now)
	if err != nil {
		t.Fatalf("写入演示数据失败: %v", err)
	}
	if result.Users != 3 || result.Admins != 1 || result.Orders != 2 || result.Posts != 3 {
		t.Fatalf("期望 3/1/2/3 条记录，实际为 %+v", result)
	}

	var orders []model.Order
	if err := gdb.Order("id ASC").Find(&orders).Error; err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if got := orders[0].TotalAmount.StringFixed(2); got != "70.00" {
		t.Fatalf("期望第一个订单总额 70.00，实际为 %s", got)
	}
	if orders[0].ItemCount != 2 {
		t.Fatalf("期望第一个订单 2 个菜品，实际为 %d", orders[0].ItemCount)
	}
	if orders[1].WaitingSeconds != 3600 {
		t.Fatalf("期望已完成订单等待 3600 秒，实际为 %d", orders[1].WaitingSeconds)
	}

	var admin model.AdminUser
	if err := gdb.Where("username = ?", DefaultAdminUsername).First(&admin).Error; err != nil {
		t.Fatalf("查询管理员失败: %v", err)
	}
	if !admin.IsSuperuser {
		t.Fatalf("期望演示管理员为超级管理员")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(DefaultAdminPassword)) != nil {
		t.Fatalf("期望演示管理员密码为 %s", DefaultAdminPassword)
	}
}

// 测试内容：验证重复执行时用户与管理员不会重复创建。
func TestRun_IsIdempotentForUsersAndAdmin(t *testing.T) {
	gdb := testutils.SetupDB(t)
	now := time.Now()

	if _, err := Run(gdb, now); err != nil {
		t.Fatalf("第一次写入失败: %v", err)
	}
	second, err := Run(gdb, now)
	if err != nil {
		t.Fatalf("第二次写入失败: %v", err)
	}
	if second.Users != 0 || second.Admins != 0 {
		t.Fatalf("期望第二次不新增用户与管理员，实际为 %+v", second)
	}

	var users int64
	gdb.Model(&model.User{}).Count(&users)
	if users != 3 {
		t.Fatalf("期望 3 个用户，实际为 %d", users)
	}
}
