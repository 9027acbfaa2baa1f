package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP 优先取 X-Forwarded-For 的第一个地址，其次取连接地址。
func ClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.RemoteIP()
}
