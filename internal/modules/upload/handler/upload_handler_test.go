package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	uploadservice "github.com/1nFrastr/miao-bbq-app/internal/modules/upload/service"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"github.com/gin-gonic/gin"
)

func newRouter(t *testing.T) *gin.Engine {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	disk, err := storage.NewLocalDisk(t.TempDir(), "/media/")
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}
	h := New(uploadservice.New(appService, disk))

	r := gin.New()
	r.POST("/api/upload/image", h.UploadImage)
	return r
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile(field, filename)
	_, _ = part.Write(content)
	_ = writer.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// 测试内容：验证上传接口返回 image_url 等字段，缺少 image 字段返回 400。
func TestUploadImageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "image", "a.png", testutils.MinimalPNG()))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"image_url":"/media/images/`) {
		t.Fatalf("期望 200 并返回地址，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "file", "a.png", testutils.MinimalPNG()))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "请选择图片文件") {
		t.Fatalf("期望 400，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "image", "a.gif", testutils.MinimalPNG()))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望不支持的格式返回 400，实际为 %d", w.Code)
	}
}
