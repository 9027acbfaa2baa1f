package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/testutils"
)

// 测试内容：验证合法 PNG 按日期分区保存并返回访问地址与文件信息。
func TestUploadImage_Success(t *testing.T) {
	setupTestDB(t)
	testService.now = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }

	png := testutils.MinimalPNG()
	resp, err := testService.UploadImage(context.Background(), fileHeader(t, "Shop.PNG", png))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(resp.ImageID) {
		t.Fatalf("期望 image_id 为 32 位十六进制，实际为 %s", resp.ImageID)
	}
	wantURL := "/media/images/2024/03/09/" + resp.ImageID + ".png"
	if resp.ImageURL != wantURL {
		t.Fatalf("期望 %s，实际为 %s", wantURL, resp.ImageURL)
	}
	if resp.FileSize != int64(len(png)) || resp.FileName != "Shop.PNG" {
		t.Fatalf("文件信息不正确: %+v", resp)
	}

	stored, err := os.ReadFile(filepath.Join(testDisk.Root(), "images", "2024", "03", "09", resp.ImageID+".png"))
	if err != nil || !bytes.Equal(stored, png) {
		t.Fatalf("期望文件已写入磁盘: %v", err)
	}
}

// 测试内容：验证扩展名不在白名单、内容与扩展名不符均返回校验错误。
func TestUploadImage_RejectsInvalidFiles(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name    string
		content []byte
	}{
		{"a.gif", testutils.MinimalPNG()},
		{"a.jpg", testutils.MinimalPNG()},
		{"noext", testutils.MinimalPNG()},
		{"a.png", []byte("plain text")},
	}
	for _, tc := range cases {
		_, err := testService.UploadImage(context.Background(), fileHeader(t, tc.name, tc.content))
		se, ok := platformservice.AsServiceError(err)
		if !ok || se.Code != platformservice.ErrorCodeValidation {
			t.Fatalf("%s: 期望校验错误，实际为 %v", tc.name, err)
		}
	}
}

// 测试内容：验证大小上限来自运行时配置。
func TestUploadImage_SizeLimitFromSettings(t *testing.T) {
	gdb := setupTestDB(t)
	if err := gdb.Create(&model.Setting{Key: consts.ConfigMaxUploadSize, Value: "1"}).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	testService.ClearCache()

	big := append(testutils.MinimalPNG(), make([]byte, 1024*1024)...)
	_, err := testService.UploadImage(context.Background(), fileHeader(t, "big.png", big))
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Message != "图片大小不能超过1MB" {
		t.Fatalf("期望超出大小限制，实际为 %v", err)
	}
}
