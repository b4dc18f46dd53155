package edit

import "math"

const (
	MinZoom = 0   // 缩放下限（百分比增量）
	MaxZoom = 100 // 缩放上限，对应 200%
)

// ClampZoom 将缩放值限制在 [MinZoom, MaxZoom]
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// ZoomFactor 缩放值对应的倍率 1 + zoom/100
func ZoomFactor(zoom float64) float64 {
	return 1 + ClampZoom(zoom)/100
}

// ToSource 显示坐标转原图坐标（向下取整）
func ToSource(p Point, zoom float64) Point {
	return mapByRatio(p, ZoomFactor(zoom))
}

// mapByRatio 按比例反向映射坐标
func mapByRatio(p Point, ratio float64) Point {
	if ratio <= 0 {
		return p
	}
	return Point{
		X: int(math.Floor(float64(p.X) / ratio)),
		Y: int(math.Floor(float64(p.Y) / ratio)),
	}
}

// ClampToImage 超出图片范围的坐标替换为边界值，不会报错
func ClampToImage(p Point, s Size) Point {
	if p.X > s.Cols {
		p.X = s.Cols
	}
	if p.Y > s.Rows {
		p.Y = s.Rows
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

// NormalizeRect 将两个点转换为规范化的矩形（保证 x0<=x1, y0<=y1）
func NormalizeRect(a, b Point) Rect {
	return Rect{
		X0: min(a.X, b.X),
		Y0: min(a.Y, b.Y),
		X1: max(a.X, b.X),
		Y1: max(a.Y, b.Y),
	}
}
