package router

import (
	communityhandler "github.com/1nFrastr/miao-bbq-app/internal/modules/community/handler"

	"github.com/gin-gonic/gin"
)

// 浏览接口允许匿名访问，写操作在处理器内要求用户身份。
func registerCommunityRoutes(api *gin.RouterGroup, identity gin.HandlerFunc, h *communityhandler.Handler) {
	posts := api.Group("/community/posts")
	posts.Use(identity)

	posts.GET("", h.ListPosts)
	posts.POST("", h.CreatePost)
	posts.GET("/nearby", h.Nearby)
	posts.GET("/my_posts", h.MyPosts)
	posts.GET("/:id", h.GetPost)
	posts.PUT("/:id", h.UpdatePost)
	posts.PATCH("/:id", h.UpdatePost)
	posts.DELETE("/:id", h.DeletePost)
	posts.POST("/:id/like", h.ToggleLike)
	posts.GET("/:id/likes", h.ListLikes)
}
