package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/upload/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/metrics"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
	"github.com/1nFrastr/miao-bbq-app/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageKeyPrefix = "images"

const discardTimeout = 10 * time.Second

// discard 删除写入失败或无人引用的文件，不受请求取消影响。
func (s *Service) discard(ctx context.Context, key string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discardTimeout)
	defer cancel()
	if err := s.disk.Delete(cleanupCtx, key); err != nil {
		logger.L().Warn("清理上传文件失败", zap.Error(err), zap.String("driver", s.disk.Name()), zap.String("key", key))
	}
}

// MaxUploadSizeMB 单张图片大小上限 (MB)，未配置时为 2。
func (s *Service) MaxUploadSizeMB() int {
	if v := s.GetInt(consts.ConfigMaxUploadSize); v > 0 {
		return v
	}
	return 2
}

// ValidateImageFile 校验大小、扩展名与文件头，返回小写扩展名与嗅探到的 Content-Type。
func (s *Service) ValidateImageFile(file *multipart.FileHeader) (string, string, error) {
	maxSizeMB := s.MaxUploadSizeMB()
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", "", platformservice.NewValidationError(fmt.Sprintf("图片大小不能超过%dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || !s.extensionAllowed(ext) {
		return "", "", platformservice.NewValidationError("仅支持jpg、png、webp格式")
	}

	src, err := file.Open()
	if err != nil {
		return "", "", platformservice.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	contentType, ok, msg := utils.ValidateImageContent(src, ext)
	if !ok {
		return "", "", platformservice.NewValidationError(msg)
	}
	return ext, contentType, nil
}

func (s *Service) extensionAllowed(ext string) bool {
	for _, allowed := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if strings.TrimSpace(strings.ToLower(allowed)) == ext {
			return true
		}
	}
	return false
}

// UploadImage 校验并写入存储，路径按日期分区：images/YYYY/MM/DD/<uuid-hex><ext>。
func (s *Service) UploadImage(ctx context.Context, file *multipart.FileHeader) (*moduledto.UploadResponse, error) {
	ext, contentType, err := s.ValidateImageFile(file)
	if err != nil {
		return nil, err
	}

	imageID := strings.ReplaceAll(uuid.New().String(), "-", "")
	key := path.Join(imageKeyPrefix, s.now().Format("2006/01/02"), imageID+ext)

	src, err := file.Open()
	if err != nil {
		return nil, platformservice.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	if err := s.disk.Put(ctx, key, src, file.Size, contentType); err != nil {
		logger.L().Error("保存上传文件失败", zap.Error(err), zap.String("driver", s.disk.Name()), zap.String("key", key))
		s.discard(ctx, key)
		return nil, platformservice.NewInternalError("上传失败")
	}
	// 客户端已断开时地址无法返回，文件成为孤儿
	if err := ctx.Err(); err != nil {
		logger.L().Warn("上传请求已取消，删除已写入文件", zap.Error(err), zap.String("key", key))
		s.discard(ctx, key)
		return nil, platformservice.NewInternalError("上传已取消")
	}
	metrics.ObserveUpload(s.disk.Name(), file.Size)

	return &moduledto.UploadResponse{
		ImageURL: s.disk.URL(key),
		ImageID:  imageID,
		FileSize: file.Size,
		FileName: file.Filename,
	}, nil
}
