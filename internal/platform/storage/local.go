package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/1nFrastr/miao-bbq-app/internal/utils"
)

type LocalDisk struct {
	root      string
	urlPrefix string
}

func NewLocalDisk(root string, urlPrefix string) (*LocalDisk, error) {
	if root == "" {
		root = "uploads/media"
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage/local: 解析根目录失败: %w", err)
	}
	if err := utils.EnsurePathNotSymlink(absRoot); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absRoot, 0755); err != nil {
		return nil, fmt.Errorf("storage/local: 创建根目录失败: %w", err)
	}
	return &LocalDisk{root: absRoot, urlPrefix: urlPrefix}, nil
}

func (d *LocalDisk) Name() string { return "local" }

// Root 返回本地存储根目录的绝对路径，用于静态文件服务。
func (d *LocalDisk) Root() string { return d.root }

func (d *LocalDisk) Put(_ context.Context, path string, r io.Reader, _ int64, _ string) error {
	full, err := utils.SecureJoin(d.root, filepath.FromSlash(cleanKey(path)))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}

	out, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", path, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(full)
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("storage/local: close %s: %w", path, err)
	}
	return nil
}

func (d *LocalDisk) Delete(_ context.Context, path string) error {
	full, err := utils.SecureJoin(d.root, filepath.FromSlash(cleanKey(path)))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}

func (d *LocalDisk) URL(path string) string {
	return d.urlPrefix + cleanKey(path)
}
