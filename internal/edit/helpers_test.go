package edit

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// fixtureRGB 生成不透明渐变图，避免与标记色重合
func fixtureRGB(rows, cols int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Set(x, y, color.RGBA{R: uint8(10 + x*20), G: uint8(y * 20), B: 100, A: 255})
		}
	}
	return img
}

// fixtureNRGBA 生成带半透明像素的图
func fixtureNRGBA(rows, cols int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 + x*20), G: uint8(y * 20), B: 100, A: uint8(100 + x + y)})
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return path
}

func readNRGBA(t *testing.T, path string) func(x, y int) color.NRGBA {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	return func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
}

func loadedSession(t *testing.T, img image.Image) *Session {
	t.Helper()

	path := writePNG(t, t.TempDir(), "src.png", img)
	s := NewSession()
	if err := s.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

// drag 模拟一次完整的拖拽手势
func drag(t *testing.T, s *Session, from, to Point) Rect {
	t.Helper()

	if !s.PointerDown(from) {
		t.Fatalf("PointerDown(%v) did not start a drag", from)
	}
	s.PointerMove(to)
	r, ok := s.PointerUp(to)
	if !ok {
		t.Fatalf("PointerUp(%v) returned no selection", to)
	}
	return r
}
