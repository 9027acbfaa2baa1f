package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证登录返回令牌，并可使用 Bearer 令牌访问仪表盘。
func TestAdminLogin_TokenAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	createAdmin(t, gdb, "root", "secret123", true)
	r := newRouter()

	w := callAs(r, http.MethodPost, "/api/admin/admin-users/login", 0, strings.NewReader(`{"username":"root","password":"secret123"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		Admin struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"admin"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" || resp.Admin.Username != "root" || resp.Admin.Password != "" {
		t.Fatalf("登录响应不正确: %s", w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/admin-users/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"activity_trend"`) {
		t.Fatalf("期望仪表盘 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = callAs(r, http.MethodPost, "/api/admin/admin-users/login", 0, strings.NewReader(`{"username":"root","password":"bad-pass"}`))
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "用户名或密码错误") {
		t.Fatalf("期望 401，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证普通管理员不能创建管理员或删除分享，超级管理员可以。
func TestAdminHandlers_SuperuserOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	root := createAdmin(t, gdb, "root", "secret123", true)
	mod := createAdmin(t, gdb, "mod", "secret123", false)
	r := newRouter()

	body := `{"username":"mod2","password":"123456"}`
	w := callAs(r, http.MethodPost, "/api/admin/admin-users", mod.ID, strings.NewReader(body))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
	w = callAs(r, http.MethodPost, "/api/admin/admin-users", root.ID, strings.NewReader(body))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = callAs(r, http.MethodGet, "/api/admin/admin-users", mod.ID, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":3`) {
		t.Fatalf("期望列表 count=3，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = callAs(r, http.MethodGet, "/api/admin/moderation", 0, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望未登录 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证审核接口：拒绝带原因、删除需超级管理员、日志可查询。
func TestModerationHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	root := createAdmin(t, gdb, "root", "secret123", true)
	mod := createAdmin(t, gdb, "mod", "secret123", false)
	u := &model.User{OpenID: "u1", Nickname: "小明", IsActive: true}
	gdb.Create(u)
	p1 := &model.Post{UserID: u.ID, ShopName: "老王烧烤", ShopPrice: 1, Comment: "c", Status: model.PostStatusPending}
	p2 := &model.Post{UserID: u.ID, ShopName: "老李烧烤", ShopPrice: 1, Comment: "c", Status: model.PostStatusPending}
	gdb.Create(p1)
	gdb.Create(p2)
	r := newRouter()

	w := callAs(r, http.MethodGet, "/api/admin/moderation?search=%E5%B0%8F%E6%98%8E", mod.ID, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":2`) {
		t.Fatalf("期望 2 条待审核，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = callAs(r, http.MethodPost, "/api/admin/moderation/1/reject", mod.ID, strings.NewReader(`{"reason":"图片模糊"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	w = callAs(r, http.MethodPost, "/api/admin/moderation/2/approve", mod.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	w = callAs(r, http.MethodPost, "/api/admin/moderation/99/approve", mod.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}

	w = callAs(r, http.MethodDelete, "/api/admin/moderation/2/delete_post", mod.ID, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
	w = callAs(r, http.MethodDelete, "/api/admin/moderation/2/delete_post", root.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = callAs(r, http.MethodGet, "/api/admin/admin-logs?action=reject", mod.ID, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "图片模糊") || !strings.Contains(w.Body.String(), `"admin_username":"mod"`) {
		t.Fatalf("期望日志包含拒绝原因，实际为 %s", w.Body.String())
	}
	w = callAs(r, http.MethodGet, "/api/admin/admin-logs?action=delete", mod.ID, nil)
	if !strings.Contains(w.Body.String(), "删除分享：老李烧烤，原因：违规内容") {
		t.Fatalf("期望删除日志使用默认原因，实际为 %s", w.Body.String())
	}
}
