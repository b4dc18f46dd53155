package edit

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer 行优先、通道交错的像素缓冲区
type Buffer struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []uint8
}

// NewBuffer 创建全零缓冲区
func NewBuffer(rows, cols, channels int) *Buffer {
	return &Buffer{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]uint8, rows*cols*channels),
	}
}

// FromImage 从 image.Image 构造缓冲区
// withAlpha 为 false 时丢弃 alpha，得到 3 通道缓冲区
func FromImage(img image.Image, withAlpha bool) *Buffer {
	b := img.Bounds()
	channels := 3
	if withAlpha {
		channels = 4
	}

	// 统一转换为非预乘 NRGBA 再逐行拷贝
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	buf := NewBuffer(b.Dy(), b.Dx(), channels)
	for y := 0; y < buf.Rows; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+buf.Cols*4]
		dst := buf.Pix[y*buf.stride() : (y+1)*buf.stride()]
		if channels == 4 {
			copy(dst, src)
			continue
		}
		for x := 0; x < buf.Cols; x++ {
			copy(dst[x*3:x*3+3], src[x*4:x*4+3])
		}
	}
	return buf
}

func (b *Buffer) stride() int {
	return b.Cols * b.Channels
}

func (b *Buffer) offset(x, y int) int {
	return y*b.stride() + x*b.Channels
}

// Size 返回缓冲区尺寸
func (b *Buffer) Size(mode ReadMode) Size {
	return Size{Rows: b.Rows, Cols: b.Cols, Channels: b.Channels, Mode: mode}
}

// At 返回 (x, y) 处的颜色，3 通道缓冲区 alpha 视为 255
func (b *Buffer) At(x, y int) color.NRGBA {
	off := b.offset(x, y)
	c := color.NRGBA{R: b.Pix[off], G: b.Pix[off+1], B: b.Pix[off+2], A: 255}
	if b.Channels == 4 {
		c.A = b.Pix[off+3]
	}
	return c
}

// Set 写入 (x, y) 处的颜色，3 通道缓冲区忽略 alpha
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	off := b.offset(x, y)
	b.Pix[off] = c.R
	b.Pix[off+1] = c.G
	b.Pix[off+2] = c.B
	if b.Channels == 4 {
		b.Pix[off+3] = c.A
	}
}

// Clone 深拷贝
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = make([]uint8, len(b.Pix))
	copy(c.Pix, b.Pix)
	return &c
}

// WidenAlpha 3 通道扩展为 4 通道，新 alpha 填充 fill；已是 4 通道时不做处理
func (b *Buffer) WidenAlpha(fill uint8) {
	if b.Channels == 4 {
		return
	}
	pix := make([]uint8, b.Rows*b.Cols*4)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		pix[j] = b.Pix[i]
		pix[j+1] = b.Pix[i+1]
		pix[j+2] = b.Pix[i+2]
		pix[j+3] = fill
	}
	b.Pix = pix
	b.Channels = 4
}

// AlphaPlane 拷贝 alpha 平面；3 通道缓冲区返回 nil
func (b *Buffer) AlphaPlane() []uint8 {
	if b.Channels != 4 {
		return nil
	}
	plane := make([]uint8, b.Rows*b.Cols)
	for i := range plane {
		plane[i] = b.Pix[i*4+3]
	}
	return plane
}

// SetAlphaPlane 用 plane 覆盖 alpha 平面；3 通道缓冲区或长度不符时忽略
func (b *Buffer) SetAlphaPlane(plane []uint8) {
	if b.Channels != 4 || len(plane) != b.Rows*b.Cols {
		return
	}
	for i, a := range plane {
		b.Pix[i*4+3] = a
	}
}

// clip 将选区裁剪到缓冲区范围内，空选区返回 false
func (b *Buffer) clip(r Rect) (Rect, bool) {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > b.Cols-1 {
		r.X1 = b.Cols - 1
	}
	if r.Y1 > b.Rows-1 {
		r.Y1 = b.Rows - 1
	}
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return r, false
	}
	return r, true
}

// FillRect 用颜色填充选区（两端包含）
func (b *Buffer) FillRect(r Rect, c color.NRGBA) {
	r, ok := b.clip(r)
	if !ok {
		return
	}
	px := []uint8{c.R, c.G, c.B, c.A}[:b.Channels]
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			off := b.offset(x, y)
			copy(b.Pix[off:off+b.Channels], px)
		}
	}
}

// CopyRect 从 src 拷贝选区到 b
// 通道数不同时只拷贝两者共有的通道
func (b *Buffer) CopyRect(src *Buffer, r Rect) {
	r, ok := b.clip(r)
	if !ok {
		return
	}
	n := b.Channels
	if src.Channels < n {
		n = src.Channels
	}

	if n == b.Channels && n == src.Channels {
		// 通道一致时按行整段拷贝
		width := (r.X1 - r.X0 + 1) * n
		for y := r.Y0; y <= r.Y1; y++ {
			copy(b.Pix[b.offset(r.X0, y):b.offset(r.X0, y)+width], src.Pix[src.offset(r.X0, y):src.offset(r.X0, y)+width])
		}
		return
	}

	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			copy(b.Pix[b.offset(x, y):b.offset(x, y)+n], src.Pix[src.offset(x, y):src.offset(x, y)+n])
		}
	}
}

// Image 转换为 *image.NRGBA，3 通道时 alpha 为 255
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Cols, b.Rows))
	if b.Channels == 4 {
		copy(img.Pix, b.Pix)
		return img
	}
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}
