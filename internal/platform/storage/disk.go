// Package storage 封装上传文件的落盘位置，支持本地磁盘与 S3 兼容对象存储。
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
)

// Disk 是上传文件的存储驱动。path 一律使用 "/" 分隔的相对路径。
type Disk interface {
	// Put 写入 r 的全部内容，父目录不存在时自动创建。
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	// Delete 删除文件，文件不存在时返回 nil。
	Delete(ctx context.Context, path string) error
	// URL 返回对外访问地址。
	URL(path string) string
	Name() string
}

// New 按配置创建存储驱动。
func New(ctx context.Context, cfg config.Config) (Disk, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "", "local":
		return NewLocalDisk(cfg.Upload.Path, publicPrefix(cfg.Upload))
	case "s3":
		return NewS3Disk(ctx, cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("storage: 不支持的驱动 %q", cfg.Storage.Driver)
	}
}

func publicPrefix(cfg config.UploadConfig) string {
	prefix := cfg.URLPrefix
	if prefix == "" {
		prefix = "/media/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.TrimRight(cfg.PublicBaseURL, "/") + prefix
}

func cleanKey(path string) string {
	return strings.TrimLeft(strings.ReplaceAll(path, "\\", "/"), "/")
}
