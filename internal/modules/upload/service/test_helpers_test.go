package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	settingsrepo "github.com/1nFrastr/miao-bbq-app/internal/modules/settings/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/storage"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testDisk    *storage.LocalDisk
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	disk, err := storage.NewLocalDisk(t.TempDir(), "/media/")
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}
	testDisk = disk
	testService = New(appService, disk)
	testService.ClearCache()
	return gdb
}

// fileHeader 通过 multipart 表单构造一个上传文件。
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("创建表单文件失败: %v", err)
	}
	_, _ = part.Write(content)
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}
