package edit

import (
	"errors"
	"fmt"
	"image"

	"maskedit/internal/imageio"
)

// Session 编辑会话：持有原图、工作图、缩放、模式与选区跟踪器
// 会话只在单一事件线程中使用，不做并发保护
type Session struct {
	original  *Buffer // 原图（导出时可能扩展为 4 通道）
	working   *Buffer // 显示/编辑副本
	baseAlpha []uint8 // 加载时的 alpha 平面，nil 表示不带 alpha 读取
	size      Size

	zoom      float64
	mode      Mode
	tracker   Tracker
	alphaText string
	quality   int
	path      string
}

// NewSession 创建空会话
func NewSession() *Session {
	return &Session{
		alphaText: DefaultAlpha,
		quality:   imageio.DefaultQuality,
	}
}

// Loaded 是否已加载图片
func (s *Session) Loaded() bool {
	return s.working != nil
}

// Size 当前图片尺寸
func (s *Session) Size() Size {
	return s.size
}

// Path 当前图片路径
func (s *Session) Path() string {
	return s.path
}

// Zoom 当前缩放值
func (s *Session) Zoom() float64 {
	return s.zoom
}

// Mode 当前编辑模式
func (s *Session) Mode() Mode {
	return s.mode
}

// Dragging 是否正在拖拽
func (s *Session) Dragging() bool {
	return s.tracker.State() == Dragging
}

// Working 工作图（调用方不得修改）
func (s *Session) Working() *Buffer {
	return s.working
}

// Original 原图（调用方不得修改）
func (s *Session) Original() *Buffer {
	return s.original
}

// AlphaText 当前 alpha 输入文本
func (s *Session) AlphaText() string {
	return s.alphaText
}

// SetAlphaText 设置 alpha 输入文本，导出时才校验
func (s *Session) SetAlphaText(text string) {
	s.alphaText = text
}

// Load 加载图片，失败时会话状态保持不变
func (s *Session) Load(path string) error {
	img, _, err := imageio.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotReadImageFile, err)
	}
	s.LoadImage(img, imageio.HasAlpha(img))
	s.path = path
	return nil
}

// LoadImage 使用已解码的图片替换会话内容
func (s *Session) LoadImage(img image.Image, withAlpha bool) {
	mode := ReadColor
	if withAlpha {
		mode = ReadUnchanged
	}

	s.original = FromImage(img, withAlpha)
	s.working = s.original.Clone()
	s.baseAlpha = s.original.AlphaPlane()
	s.size = s.original.Size(mode)
	s.zoom = 0
	s.mode = ModeNormal
	s.tracker.Reset()
	s.path = ""
}

// SetZoom 设置缩放值，超出 [0, 100] 时截断
func (s *Session) SetZoom(zoom float64) {
	s.zoom = ClampZoom(zoom)
}

// EnterUndoMode 进入恢复模式，未加载图片时忽略
func (s *Session) EnterUndoMode() bool {
	if !s.Loaded() {
		return false
	}
	changed := s.mode != ModeUndo
	s.mode = ModeUndo
	return changed
}

// PointerDown 处理按下事件（显示坐标）
func (s *Session) PointerDown(p Point) bool {
	if !s.Loaded() {
		return false
	}
	return s.tracker.Down(p, s.size, s.zoom)
}

// PointerMove 处理拖拽事件，返回预览矩形（显示坐标）
func (s *Session) PointerMove(p Point) (Rect, bool) {
	return s.tracker.Move(p)
}

// PointerUp 处理释放事件，根据模式绘制或恢复选区
func (s *Session) PointerUp(p Point) (Rect, bool) {
	r, ok := s.tracker.Up(p)
	if !ok || !s.Loaded() {
		return Rect{}, false
	}

	if s.mode == ModeUndo {
		s.Undo(r)
	} else {
		s.Draw(r)
	}
	return r, true
}

// Draw 用标记色填充选区
func (s *Session) Draw(r Rect) {
	if !s.Loaded() {
		return
	}
	s.working.FillRect(r, MarkerColor)
}

// Undo 从原图恢复选区并回到普通模式
// 原图带 alpha 时先把选区内 alpha 还原为加载时的值
func (s *Session) Undo(r Rect) {
	if !s.Loaded() {
		return
	}
	if s.original.Channels == 4 {
		s.restoreAlpha(r)
	}
	s.working.CopyRect(s.original, r)
	s.mode = ModeNormal
}

// restoreAlpha 还原原图选区内的 alpha，不带 alpha 加载的图片还原为 255
func (s *Session) restoreAlpha(r Rect) {
	r, ok := s.original.clip(r)
	if !ok {
		return
	}
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			a := uint8(255)
			if s.baseAlpha != nil {
				a = s.baseAlpha[y*s.original.Cols+x]
			}
			s.original.Pix[s.original.offset(x, y)+3] = a
		}
	}
}

// Export 校验 alpha、合成标记像素并写出文件
// alpha 无效时直接返回，不写任何文件
func (s *Session) Export(path string) (int, error) {
	if !s.Loaded() {
		return 0, ErrNoImage
	}
	alpha, err := ValidateAlpha(s.alphaText)
	if err != nil {
		return 0, err
	}

	// 先在副本上合成，写出成功后再提交到原图
	out := s.original.Clone()
	marked := Composite(out, s.working, alpha)
	if err := imageio.Write(path, out.Image(), s.quality); err != nil {
		return 0, fmt.Errorf("导出失败: %w", err)
	}

	// 只提交 alpha，原图颜色保持不变，恢复时仍能还原原色
	s.original.WidenAlpha(255)
	s.original.SetAlphaPlane(out.AlphaPlane())
	s.size.Channels = 4
	return marked, nil
}

// IsUserError 是否为需要提示用户的错误
func IsUserError(err error) bool {
	return errors.Is(err, ErrCannotReadImageFile) || errors.Is(err, ErrInvalidAlphaInput)
}
