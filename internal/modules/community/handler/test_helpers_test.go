package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1nFrastr/miao-bbq-app/internal/middleware"
	communityrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	communityservice "github.com/1nFrastr/miao-bbq-app/internal/modules/community/service"
	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	userrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/user/repo"
	userservice "github.com/1nFrastr/miao-bbq-app/internal/modules/user/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
	testUsers   *userservice.Service
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	testUsers = userservice.New(testService, userrepo.NewUserRepository(gdb), nil)
	testHandler = New(communityservice.New(testService, communityrepo.NewPostRepository(gdb)))
	testService.ClearCache()
	return gdb
}

func newRouter() *gin.Engine {
	r := gin.New()
	g := r.Group("/api/community/posts", middleware.UserIdentity(testUsers))
	g.GET("", testHandler.ListPosts)
	g.POST("", testHandler.CreatePost)
	g.GET("/nearby", testHandler.Nearby)
	g.GET("/my_posts", testHandler.MyPosts)
	g.GET("/:id", testHandler.GetPost)
	g.PATCH("/:id", testHandler.UpdatePost)
	g.DELETE("/:id", testHandler.DeletePost)
	g.POST("/:id/like", testHandler.ToggleLike)
	g.GET("/:id/likes", testHandler.ListLikes)
	return r
}

func call(r http.Handler, method, path, openid string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if openid != "" {
		req.Header.Set("X-Openid", openid)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
