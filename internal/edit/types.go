package edit

import "image/color"

// ReadMode 图片读取模式，加载时确定，整个会话不变
type ReadMode int

const (
	ReadColor     ReadMode = iota // 不带 alpha 读取（3 通道）
	ReadUnchanged                 // 保留 alpha 读取（4 通道）
)

// String 返回读取模式名称
func (m ReadMode) String() string {
	if m == ReadUnchanged {
		return "unchanged"
	}
	return "color"
}

// Mode 编辑模式
type Mode int

const (
	ModeNormal Mode = iota // 拖拽完成后绘制标记
	ModeUndo               // 下一次拖拽完成后从原图恢复
)

// String 返回模式名称
func (m Mode) String() string {
	if m == ModeUndo {
		return "undo"
	}
	return "normal"
}

// MarkerColor 标记色（纯绿），导出时按此颜色识别被遮罩的像素
var MarkerColor = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

// Point 坐标点（显示坐标或原图坐标，取决于上下文）
type Point struct {
	X int
	Y int
}

// Pt Point 的简写构造
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect 选区矩形，两端都包含（x0..x1, y0..y1）
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Size 图片尺寸
type Size struct {
	Rows     int      // 行数（高）
	Cols     int      // 列数（宽）
	Channels int      // 通道数 3 或 4
	Mode     ReadMode // 读取模式
}

// Scale 按倍率缩放后的行列数
func (s Size) Scale(f float64) (rows, cols int) {
	return int(float64(s.Rows) * f), int(float64(s.Cols) * f)
}

// Scaled 返回缩放后的尺寸（通道数与模式不变）
func (s Size) Scaled(f float64) Size {
	s.Rows, s.Cols = s.Scale(f)
	return s
}

// Contains 点是否在图片范围内（右/下边界包含在内）
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= s.Cols && p.Y <= s.Rows
}

// HasAlpha 是否带 alpha 通道
func (s Size) HasAlpha() bool {
	return s.Channels == 4
}
