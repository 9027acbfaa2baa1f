package handler

import (
	"net/http"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/modules/common/httpx"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"

	"github.com/gin-gonic/gin"
)

// ListPosts 已审核分享列表，支持 search、ordering 与位置筛选
func (h *Handler) ListPosts(c *gin.Context) {
	origin, radius, ok := parseLocation(c)
	if !ok {
		return
	}
	page := httpx.ParsePage(c, h.communityService.AppService)
	items, total, err := h.communityService.ListFeed(moduledto.FeedQuery{
		ViewerID: httpx.CurrentUserID(c),
		Search:   strings.TrimSpace(c.Query("search")),
		Ordering: c.Query("ordering"),
		Origin:   origin,
		RadiusKm: radius,
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分享列表失败")
		return
	}
	httpx.WritePage(c, page, total, items)
}

// Nearby 附近分享
func (h *Handler) Nearby(c *gin.Context) {
	if c.Query("lat") == "" || c.Query("lng") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少位置参数"})
		return
	}
	origin, radius, ok := parseLocation(c)
	if !ok {
		return
	}
	page := httpx.ParsePage(c, h.communityService.AppService)
	items, total, err := h.communityService.Nearby(moduledto.FeedQuery{
		ViewerID: httpx.CurrentUserID(c),
		Ordering: c.Query("ordering"),
		Origin:   origin,
		RadiusKm: radius,
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取附近分享失败")
		return
	}
	httpx.WritePage(c, page, total, items)
}

// MyPosts 我的分享
func (h *Handler) MyPosts(c *gin.Context) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	page := httpx.ParsePage(c, h.communityService.AppService)
	items, total, err := h.communityService.MyPosts(moduledto.FeedQuery{
		ViewerID: user.ID,
		Offset:   page.Offset(),
		Limit:    page.PageSize,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取我的分享失败")
		return
	}
	httpx.WritePage(c, page, total, items)
}

// GetPost 分享详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	origin, _, ok := parseLocation(c)
	if !ok {
		return
	}
	post, err := h.communityService.GetPost(id, httpx.CurrentUserID(c), origin)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分享失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost 发布分享
func (h *Handler) CreatePost(c *gin.Context) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return
	}
	var req moduledto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	post, err := h.communityService.CreatePost(user.ID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "发布分享失败")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost PUT/PATCH 修改自己的分享
func (h *Handler) UpdatePost(c *gin.Context) {
	userID, postID, ok := userAndPost(c)
	if !ok {
		return
	}
	var req moduledto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	post, err := h.communityService.UpdatePost(postID, userID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新分享失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost 删除自己的分享
func (h *Handler) DeletePost(c *gin.Context) {
	userID, postID, ok := userAndPost(c)
	if !ok {
		return
	}
	if err := h.communityService.DeletePost(postID, userID); err != nil {
		httpx.WriteServiceError(c, err, "删除分享失败")
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike 点赞或取消点赞
func (h *Handler) ToggleLike(c *gin.Context) {
	userID, postID, ok := userAndPost(c)
	if !ok {
		return
	}
	resp, err := h.communityService.ToggleLike(postID, userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "点赞操作失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLikes 点赞用户列表
func (h *Handler) ListLikes(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	page := httpx.ParsePage(c, h.communityService.AppService)
	items, total, err := h.communityService.ListLikes(id, page.Offset(), page.PageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取点赞列表失败")
		return
	}
	httpx.WritePage(c, page, total, items)
}

func userAndPost(c *gin.Context) (uint, uint, bool) {
	user, ok := httpx.MustUser(c)
	if !ok {
		return 0, 0, false
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	return user.ID, postID, true
}
