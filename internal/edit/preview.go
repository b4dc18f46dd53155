package edit

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// overlayWidth 拖拽预览框线宽
const overlayWidth = 2

// Preview 按当前缩放渲染工作图，拖拽中时叠加预览框
func (s *Session) Preview() *image.NRGBA {
	if !s.Loaded() {
		return nil
	}

	src := s.working.Image()
	rows, cols := s.size.Scale(ZoomFactor(s.zoom))
	if rows == s.size.Rows && cols == s.size.Cols {
		s.drawOverlay(src)
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	s.drawOverlay(dst)
	return dst
}

func (s *Session) drawOverlay(img *image.NRGBA) {
	r, ok := s.tracker.Overlay()
	if !ok {
		return
	}
	drawRectStroke(img, image.Rect(r.X0, r.Y0, r.X1+1, r.Y1+1), MarkerColor, overlayWidth)
}

// drawRectStroke 绘制矩形描边（向内）
func drawRectStroke(img *image.NRGBA, r image.Rectangle, c color.NRGBA, width int) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	w := min(width, r.Dx(), r.Dy())
	src := image.NewUniform(c)

	// 上、下、左、右
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}
