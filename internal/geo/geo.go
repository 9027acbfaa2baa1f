// Package geo 提供附近搜索使用的包围盒预筛选与球面距离计算。
package geo

import "math"

// EarthRadiusKm 地球平均半径。
const EarthRadiusKm = 6371.0

// KmPerDegreeLat 纬度每度对应的近似公里数。
const KmPerDegreeLat = 111.0

const minCosLat = 1e-6

// Box 为经纬度包围盒，边界均为闭区间。
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains 判断点是否落在包围盒内。
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// BoundingBox 计算以 (lat, lng) 为中心、半径 radiusKm 的粗筛包围盒。
// 经度跨度按 |lat| 的余弦缩放；余弦趋近 0 时经度覆盖全球。
func BoundingBox(lat, lng, radiusKm float64) Box {
	if radiusKm < 0 {
		radiusKm = 0
	}
	latRange := radiusKm / KmPerDegreeLat

	box := Box{
		MinLat: lat - latRange,
		MaxLat: lat + latRange,
		MinLng: -180,
		MaxLng: 180,
	}

	cosLat := math.Cos(toRadians(math.Abs(lat)))
	if cosLat > minCosLat {
		lngRange := radiusKm / (KmPerDegreeLat * cosLat)
		if lngRange < 180 {
			box.MinLng = lng - lngRange
			box.MaxLng = lng + lngRange
		}
	}
	return box
}

// Haversine 返回两点间的大圆距离 (公里)。
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Round2 四舍五入保留两位小数。
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
