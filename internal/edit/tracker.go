package edit

// TrackerState 选区跟踪状态
type TrackerState int

const (
	Idle     TrackerState = iota // 空闲
	Dragging                     // 拖拽中
)

// Tracker 选区跟踪器（按下 -> 拖拽 -> 释放）
// 按下时冻结缩放后的尺寸，拖拽中途改变缩放不影响映射
type Tracker struct {
	state   TrackerState
	size    Size  // 原图尺寸
	scaled  Size  // 按下时的显示尺寸
	start   Point // 显示坐标
	current Point // 显示坐标（已裁剪）
}

// State 当前状态
func (t *Tracker) State() TrackerState {
	return t.state
}

// Reset 回到空闲状态
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Down 处理按下事件，点在显示范围外时不开始拖拽
func (t *Tracker) Down(p Point, size Size, zoom float64) bool {
	scaled := size.Scaled(ZoomFactor(zoom))
	if !scaled.Contains(p) {
		t.Reset()
		return false
	}

	t.state = Dragging
	t.size = size
	t.scaled = scaled
	t.start = p
	t.current = p
	return true
}

// Move 处理拖拽事件，返回用于预览的显示坐标矩形
func (t *Tracker) Move(p Point) (Rect, bool) {
	if t.state != Dragging {
		return Rect{}, false
	}
	t.current = ClampToImage(p, t.scaled)
	return t.Overlay()
}

// Overlay 拖拽中的预览矩形（显示坐标，起点固定）
func (t *Tracker) Overlay() (Rect, bool) {
	if t.state != Dragging {
		return Rect{}, false
	}
	return NormalizeRect(t.start, t.current), true
}

// Up 处理释放事件，返回原图坐标下的选区
// 未开始拖拽时返回 false
func (t *Tracker) Up(p Point) (Rect, bool) {
	if t.state != Dragging {
		return Rect{}, false
	}
	defer t.Reset()

	ratio := 1.0
	if t.size.Rows > 0 {
		ratio = float64(t.scaled.Rows) / float64(t.size.Rows)
	}

	// 行列缩放取整不同，映射后再按原图裁剪一次
	p0 := ClampToImage(mapByRatio(t.start, ratio), t.size)
	p1 := ClampToImage(mapByRatio(ClampToImage(p, t.scaled), ratio), t.size)
	return NormalizeRect(p0, p1), true
}
