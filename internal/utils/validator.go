package utils

import (
	"io"
	"net/http"
	"regexp"
	"strings"
)

var adminUsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]{3,50}$`)

// ValidateAdminUsername 管理员用户名只允许常见账号字符。
func ValidateAdminUsername(username string) (bool, string) {
	if !adminUsernamePattern.MatchString(username) {
		return false, "用户名长度为 3-50，只能包含字母、数字和 _.@+-"
	}
	return true, ""
}

// ValidateAdminPassword 管理员密码最少 6 位，不能全是空白。
func ValidateAdminPassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "密码最少6位"
	}
	if strings.TrimSpace(password) == "" {
		return false, "密码不能为空白字符"
	}
	return true, ""
}

// imageContentTypes 嗅探类型到允许扩展名的映射。
var imageContentTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
}

// ValidateImageContent 读取文件头嗅探真实类型，要求与扩展名一致，结束后复位读取位置。
// 返回嗅探得到的 Content-Type，便于写入对象存储。
func ValidateImageContent(reader io.ReadSeeker, ext string) (string, bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", false, "读取文件内容失败"
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer[:n])
	for _, allowed := range imageContentTypes[contentType] {
		if allowed == ext {
			return contentType, true, ""
		}
	}
	return contentType, false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}
