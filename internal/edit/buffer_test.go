package edit

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImageDropsAlpha(t *testing.T) {
	src := fixtureNRGBA(2, 3)
	buf := FromImage(src, false)
	if buf.Channels != 3 || len(buf.Pix) != 2*3*3 {
		t.Fatalf("buffer = %dx%dx%d (%d bytes)", buf.Rows, buf.Cols, buf.Channels, len(buf.Pix))
	}
	want := src.NRGBAAt(2, 1)
	want.A = 255
	if got := buf.At(2, 1); got != want {
		t.Fatalf("At(2,1) = %v, want %v", got, want)
	}
}

func TestFromImageSubImage(t *testing.T) {
	src := fixtureRGB(6, 6).SubImage(image.Rect(2, 3, 5, 6))
	buf := FromImage(src, false)
	if buf.Rows != 3 || buf.Cols != 3 {
		t.Fatalf("sub image buffer = %dx%d, want 3x3", buf.Rows, buf.Cols)
	}
	r, g, b, _ := src.At(2, 3).RGBA()
	if got := buf.At(0, 0); got != (color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}) {
		t.Fatalf("At(0,0) = %v", got)
	}
}

func TestWidenAlpha(t *testing.T) {
	buf := FromImage(fixtureRGB(2, 2), false)
	before := buf.At(1, 1)

	buf.WidenAlpha(200)
	if buf.Channels != 4 {
		t.Fatalf("channels = %d, want 4", buf.Channels)
	}
	before.A = 200
	if got := buf.At(1, 1); got != before {
		t.Fatalf("At(1,1) = %v, want %v", got, before)
	}
}

func TestFillRectClipsToBounds(t *testing.T) {
	buf := NewBuffer(4, 4, 3)
	buf.FillRect(Rect{X0: 2, Y0: 2, X1: 10, Y1: 10}, MarkerColor)
	if got := buf.At(3, 3); got != MarkerColor {
		t.Fatalf("At(3,3) = %v, want marker", got)
	}
	if got := buf.At(1, 1); got == MarkerColor {
		t.Fatalf("pixel outside rect was filled")
	}
}

func TestCopyRectAcrossChannelCounts(t *testing.T) {
	src := FromImage(fixtureNRGBA(3, 3), true)
	dst := NewBuffer(3, 3, 3)
	dst.CopyRect(src, Rect{X0: 0, Y0: 0, X1: 2, Y1: 2})

	want := src.At(1, 2)
	want.A = 255
	if got := dst.At(1, 2); got != want {
		t.Fatalf("At(1,2) = %v, want %v", got, want)
	}
}
