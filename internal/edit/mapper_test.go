package edit

import "testing"

func TestToSourceIdentityAtZeroZoom(t *testing.T) {
	for _, p := range []Point{{0, 0}, {3, 7}, {640, 480}} {
		if got := ToSource(p, 0); got != p {
			t.Fatalf("ToSource(%v, 0) = %v, want identity", p, got)
		}
	}
}

func TestToSourceFloors(t *testing.T) {
	tests := []struct {
		p    Point
		zoom float64
		want Point
	}{
		{Pt(10, 10), 100, Pt(5, 5)},
		{Pt(11, 9), 100, Pt(5, 4)},
		{Pt(15, 14), 50, Pt(10, 9)},
		{Pt(7, 3), 25, Pt(5, 2)},
	}
	for _, tt := range tests {
		if got := ToSource(tt.p, tt.zoom); got != tt.want {
			t.Fatalf("ToSource(%v, %v) = %v, want %v", tt.p, tt.zoom, got, tt.want)
		}
	}
}

func TestToSourceRoundTripWithinOnePixel(t *testing.T) {
	for zoom := 0.0; zoom <= 100; zoom += 12.5 {
		f := ZoomFactor(zoom)
		for x := 0; x < 400; x += 7 {
			src := ToSource(Pt(x, x), zoom)
			diff := float64(x)/f - float64(src.X)
			if diff < 0 || diff >= 1 {
				t.Fatalf("zoom %v: x=%d mapped to %d, error %v", zoom, x, src.X, diff)
			}
		}
	}
}

func TestClampZoom(t *testing.T) {
	tests := map[float64]float64{-5: 0, 0: 0, 42.5: 42.5, 100: 100, 250: 100}
	for in, want := range tests {
		if got := ClampZoom(in); got != want {
			t.Fatalf("ClampZoom(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestClampToImage(t *testing.T) {
	s := Size{Rows: 10, Cols: 20}
	tests := []struct {
		in, want Point
	}{
		{Pt(5, 5), Pt(5, 5)},
		{Pt(25, 5), Pt(20, 5)},
		{Pt(5, 30), Pt(5, 10)},
		{Pt(-3, -1), Pt(0, 0)},
		{Pt(20, 10), Pt(20, 10)},
	}
	for _, tt := range tests {
		if got := ClampToImage(tt.in, s); got != tt.want {
			t.Fatalf("ClampToImage(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRect(t *testing.T) {
	got := NormalizeRect(Pt(8, 2), Pt(3, 9))
	want := Rect{X0: 3, Y0: 2, X1: 8, Y1: 9}
	if got != want {
		t.Fatalf("NormalizeRect = %+v, want %+v", got, want)
	}
}
