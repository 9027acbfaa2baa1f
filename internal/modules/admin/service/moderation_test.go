package service

import (
	"strings"
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

// 测试内容：验证审核列表默认只返回 pending，并支持按提交者昵称搜索。
func TestListModeration(t *testing.T) {
	gdb := setupTestDB(t)
	createPost(t, gdb, "小明", "烤串一号", model.PostStatusPending)
	createPost(t, gdb, "小红", "烤串二号", model.PostStatusPending)
	createPost(t, gdb, "小明", "烤串三号", model.PostStatusApproved)

	posts, total, err := testService.ListModeration(moduledto.ModerationListRequest{Limit: 20})
	if err != nil {
		t.Fatalf("获取审核列表失败: %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Fatalf("期望 2 条待审核，实际为 %d", total)
	}

	posts, total, err = testService.ListModeration(moduledto.ModerationListRequest{Search: "小红", Limit: 20})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}
	if total != 1 || posts[0].ShopName != "烤串二号" || posts[0].User.Nickname != "小红" {
		t.Fatalf("期望按昵称命中 烤串二号，实际为 total=%d", total)
	}

	_, _, err = testService.ListModeration(moduledto.ModerationListRequest{Status: "unknown", Limit: 20})
	assertServiceCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证拒绝分享后状态为 rejected，并恰好写入一条包含默认原因的日志。
func TestRejectPost_WritesOneLog(t *testing.T) {
	gdb := setupTestDB(t)
	admin := createAdmin(t, gdb, "mod", "secret123", false)
	post := createPost(t, gdb, "小明", "老王烧烤", model.PostStatusPending)

	if err := testService.RejectPost(admin.ID, post.ID, "", moduledto.RequestMeta{IP: "1.2.3.4"}); err != nil {
		t.Fatalf("拒绝失败: %v", err)
	}
	var stored model.Post
	gdb.First(&stored, post.ID)
	if stored.Status != model.PostStatusRejected {
		t.Fatalf("期望状态 rejected，实际为 %s", stored.Status)
	}

	var logs []model.AdminLog
	gdb.Where("action = ? AND target_id = ?", model.AdminActionReject, post.ID).Find(&logs)
	if len(logs) != 1 {
		t.Fatalf("期望 1 条拒绝日志，实际为 %d", len(logs))
	}
	if !strings.Contains(logs[0].Description, "老王烧烤") || !strings.Contains(logs[0].Description, defaultRejectReason) {
		t.Fatalf("日志描述不正确: %s", logs[0].Description)
	}
	if logs[0].AdminID != admin.ID || logs[0].IPAddress != "1.2.3.4" {
		t.Fatalf("日志来源不正确: %+v", logs[0])
	}
}

// 测试内容：验证重复审核通过时每次都写日志，状态保持 approved。
func TestApprovePost_Idempotent(t *testing.T) {
	gdb := setupTestDB(t)
	admin := createAdmin(t, gdb, "mod", "secret123", false)
	post := createPost(t, gdb, "小明", "老王烧烤", model.PostStatusPending)

	for i := 0; i < 2; i++ {
		if err := testService.ApprovePost(admin.ID, post.ID, moduledto.RequestMeta{}); err != nil {
			t.Fatalf("审核通过失败: %v", err)
		}
	}
	var count int64
	gdb.Model(&model.AdminLog{}).Where("action = ?", model.AdminActionApprove).Count(&count)
	if count != 2 {
		t.Fatalf("期望 2 条日志，实际为 %d", count)
	}

	err := testService.ApprovePost(admin.ID, 999, moduledto.RequestMeta{})
	assertServiceCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证删除分享同时删除子记录，日志保留删除前的店铺名与原因。
func TestDeletePost(t *testing.T) {
	gdb := setupTestDB(t)
	admin := createAdmin(t, gdb, "root", "secret123", true)
	post := createPost(t, gdb, "小明", "老王烧烤", model.PostStatusApproved)
	gdb.Create(&model.PostImage{PostID: post.ID, ImageURL: "/media/a.jpg"})
	gdb.Create(&model.PostLike{PostID: post.ID, UserID: post.UserID})

	if err := testService.DeletePost(admin.ID, post.ID, "广告", moduledto.RequestMeta{}); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	var posts, images, likes int64
	gdb.Model(&model.Post{}).Count(&posts)
	gdb.Model(&model.PostImage{}).Count(&images)
	gdb.Model(&model.PostLike{}).Count(&likes)
	if posts+images+likes != 0 {
		t.Fatalf("期望分享及子记录全部删除，实际为 posts=%d images=%d likes=%d", posts, images, likes)
	}

	var log model.AdminLog
	gdb.Where("action = ?", model.AdminActionDelete).First(&log)
	if log.Description != "删除分享：老王烧烤，原因：广告" {
		t.Fatalf("日志描述不正确: %s", log.Description)
	}
}
