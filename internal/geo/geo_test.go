package geo

import (
	"math"
	"testing"
)

// 测试内容：验证北京两点间的距离计算结果。
func TestHaversine_BeijingExample(t *testing.T) {
	d := Round2(Haversine(39.90, 116.40, 39.9042, 116.4074))
	if d != 0.79 {
		t.Fatalf("期望距离 0.79 km，实际为 %v", d)
	}
}

// 测试内容：验证同一点距离为 0，且距离与方向无关。
func TestHaversine_SymmetricAndZero(t *testing.T) {
	if d := Haversine(30, 120, 30, 120); d != 0 {
		t.Fatalf("期望同点距离为 0，实际为 %v", d)
	}
	a := Haversine(31.23, 121.47, 39.90, 116.40)
	b := Haversine(39.90, 116.40, 31.23, 121.47)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("期望距离对称，实际为 %v 与 %v", a, b)
	}
	// 上海到北京约 1067 km
	if a < 1050 || a > 1080 {
		t.Fatalf("上海到北京距离超出预期范围: %v", a)
	}
}

// 测试内容：验证包围盒的纬度跨度与经度跨度。
func TestBoundingBox_Ranges(t *testing.T) {
	box := BoundingBox(0, 100, 111)
	if math.Abs(box.MaxLat-1) > 1e-9 || math.Abs(box.MinLat+1) > 1e-9 {
		t.Fatalf("赤道处纬度跨度应为 ±1 度: %+v", box)
	}
	if math.Abs(box.MaxLng-101) > 1e-9 || math.Abs(box.MinLng-99) > 1e-9 {
		t.Fatalf("赤道处经度跨度应为 ±1 度: %+v", box)
	}

	north := BoundingBox(60, 10, 111)
	south := BoundingBox(-60, 10, 111)
	if math.Abs((north.MaxLng-north.MinLng)-(south.MaxLng-south.MinLng)) > 1e-9 {
		t.Fatalf("南北半球同纬度经度跨度应一致")
	}
	if math.Abs((north.MaxLng-10)-2) > 1e-6 {
		t.Fatalf("60 度处经度跨度应约为 2 度，实际为 %v", north.MaxLng-10)
	}
}

// 测试内容：验证极点附近经度覆盖全球，不会出现除零。
func TestBoundingBox_PoleCoversAllLongitudes(t *testing.T) {
	box := BoundingBox(90, 10, 5)
	if box.MinLng != -180 || box.MaxLng != 180 {
		t.Fatalf("期望极点处经度覆盖全球: %+v", box)
	}
	if math.IsNaN(box.MinLat) || math.IsInf(box.MaxLat, 0) {
		t.Fatalf("纬度边界不应为 NaN/Inf: %+v", box)
	}
}

// 测试内容：验证半径内的点都落在包围盒内。
func TestBoundingBox_NoFalseNegatives(t *testing.T) {
	centerLat, centerLng, radius := 39.90, 116.40, 10.0
	box := BoundingBox(centerLat, centerLng, radius)
	for i := 0; i < 360; i += 15 {
		bearing := float64(i) * math.Pi / 180
		// 以 9.9 km 沿各方向取点
		dLat := 9.9 / KmPerDegreeLat * math.Cos(bearing)
		dLng := 9.9 / (KmPerDegreeLat * math.Cos(centerLat*math.Pi/180)) * math.Sin(bearing)
		lat, lng := centerLat+dLat, centerLng+dLng
		if Haversine(centerLat, centerLng, lat, lng) <= radius && !box.Contains(lat, lng) {
			t.Fatalf("半径内的点 (%v,%v) 未落在包围盒内", lat, lng)
		}
	}
}

// 测试内容：验证两位小数四舍五入。
func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		0.786:  0.79,
		1.234:  1.23,
		10:     10,
		0.0049: 0,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) 期望 %v，实际为 %v", in, want, got)
		}
	}
}
