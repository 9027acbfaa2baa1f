package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"

	"github.com/gin-gonic/gin"
)

// parseLocation 解析 lat/lng/radius 查询参数。
// 返回的 Location 在经纬度缺失时为 nil；radius 缺失时为 0。
func parseLocation(c *gin.Context) (*moduledto.Location, float64, bool) {
	latRaw := strings.TrimSpace(c.Query("lat"))
	lngRaw := strings.TrimSpace(c.Query("lng"))
	radiusRaw := strings.TrimSpace(c.Query("radius"))

	var origin *moduledto.Location
	if latRaw != "" || lngRaw != "" {
		lat, err1 := strconv.ParseFloat(latRaw, 64)
		lng, err2 := strconv.ParseFloat(lngRaw, 64)
		if err1 != nil || err2 != nil || !isFinite(lat) || !isFinite(lng) ||
			lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "位置参数格式错误"})
			return nil, 0, false
		}
		origin = &moduledto.Location{Lat: lat, Lng: lng}
	}

	var radius float64
	if radiusRaw != "" {
		r, err := strconv.ParseFloat(radiusRaw, 64)
		if err != nil || !isFinite(r) || r <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "位置参数格式错误"})
			return nil, 0, false
		}
		radius = r
	}
	return origin, radius, true
}

// ParseFloat 接受 NaN 与 Inf，范围比较对 NaN 恒为 false，需要单独排除。
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
