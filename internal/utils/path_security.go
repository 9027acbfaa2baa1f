package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SecureJoin 把上传文件的相对路径拼接到存储根目录下，返回绝对路径。
// 拒绝绝对路径、越界的 ".." 以及链路上已存在的符号链接。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(relativePath, "/") {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs, err := filepath.Abs(filepath.Join(baseAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}
	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return "", err
	}

	// 从目标逐级回溯到根目录，已存在的节点都不能是符号链接
	for current := targetAbs; ; {
		if err := EnsurePathNotSymlink(current); err != nil {
			return "", err
		}
		if samePath(current, baseAbs) {
			break
		}
		parent := filepath.Dir(current)
		if samePath(parent, current) {
			return "", fmt.Errorf("非法路径: 无法定位到存储根目录")
		}
		current = parent
	}

	return targetAbs, nil
}

// EnsurePathNotSymlink 路径不存在时返回 nil，存在且为符号链接时返回错误。
func EnsurePathNotSymlink(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("检查路径失败: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("检测到符号链接穿透风险: %s", absPath)
	}
	return nil
}

func ensureWithinBase(baseAbs, targetAbs string) error {
	if !strings.EqualFold(filepath.VolumeName(baseAbs), filepath.VolumeName(targetAbs)) {
		return fmt.Errorf("非法路径: 路径跨磁盘卷")
	}
	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("非法路径: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("非法路径: 目标超出存储根目录")
	}
	return nil
}

func samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
