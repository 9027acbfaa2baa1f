package handler

import (
	"net/http"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// Login 小程序登录，openid 或 code 二选一
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsers 分页获取用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page := httpx.ParsePage(c, h.userService.AppService)
	users, total, err := h.userService.ListUsers(moduledto.UserListRequest{
		Offset: page.Offset(),
		Limit:  page.PageSize,
		Search: c.Query("search"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}
	httpx.WritePage(c, page, total, users)
}

// GetUser 获取指定用户
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户失败")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser 注册用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req moduledto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	user, err := h.userService.CreateUser(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建用户失败")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateProfile 更新用户资料，PUT/PATCH 与 update_profile 共用
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	current, ok := httpx.MustUser(c)
	if !ok {
		return
	}

	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(current.ID, id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户失败")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser 停用当前用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	current, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	if err := h.userService.DeactivateUser(current.ID, id); err != nil {
		httpx.WriteServiceError(c, err, "注销用户失败")
		return
	}
	c.Status(http.StatusNoContent)
}
