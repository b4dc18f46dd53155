package edit

import "testing"

func TestTrackerIgnoresDownOutsideImage(t *testing.T) {
	var tr Tracker
	size := Size{Rows: 10, Cols: 10, Channels: 3}

	if tr.Down(Pt(11, 5), size, 0) {
		t.Fatalf("Down outside image should not start a drag")
	}
	if _, ok := tr.Move(Pt(3, 3)); ok {
		t.Fatalf("Move while idle should report no overlay")
	}
	if _, ok := tr.Up(Pt(3, 3)); ok {
		t.Fatalf("Up without a drag should be a no-op")
	}
}

func TestTrackerDownOnZoomedEdge(t *testing.T) {
	var tr Tracker
	size := Size{Rows: 10, Cols: 10, Channels: 3}

	// 200% 时显示尺寸 20x20，右下角包含在内
	if !tr.Down(Pt(20, 20), size, 100) {
		t.Fatalf("Down at zoomed corner should start a drag")
	}
	r, ok := tr.Up(Pt(20, 20))
	if !ok {
		t.Fatalf("Up returned no selection")
	}
	if want := (Rect{X0: 10, Y0: 10, X1: 10, Y1: 10}); r != want {
		t.Fatalf("Up = %+v, want %+v", r, want)
	}
}

func TestTrackerNormalizesReverseDrag(t *testing.T) {
	var tr Tracker
	size := Size{Rows: 10, Cols: 10, Channels: 3}

	tr.Down(Pt(8, 7), size, 0)
	r, _ := tr.Up(Pt(2, 3))
	if want := (Rect{X0: 2, Y0: 3, X1: 8, Y1: 7}); r != want {
		t.Fatalf("Up = %+v, want %+v", r, want)
	}
	if tr.State() != Idle {
		t.Fatalf("tracker should return to Idle after Up")
	}
}

func TestTrackerClampsReleaseAndOverlay(t *testing.T) {
	var tr Tracker
	size := Size{Rows: 10, Cols: 10, Channels: 3}

	tr.Down(Pt(4, 4), size, 50)
	overlay, ok := tr.Move(Pt(100, -20))
	if !ok {
		t.Fatalf("Move while dragging should report an overlay")
	}
	if want := (Rect{X0: 4, Y0: 0, X1: 15, Y1: 4}); overlay != want {
		t.Fatalf("overlay = %+v, want %+v", overlay, want)
	}

	r, _ := tr.Up(Pt(100, 100))
	if want := (Rect{X0: 2, Y0: 2, X1: 10, Y1: 10}); r != want {
		t.Fatalf("Up = %+v, want %+v", r, want)
	}
}

func TestTrackerFreezesZoomAtDown(t *testing.T) {
	s := loadedSession(t, fixtureRGB(10, 10))

	s.SetZoom(100)
	if !s.PointerDown(Pt(8, 8)) {
		t.Fatalf("PointerDown should start a drag")
	}
	s.SetZoom(0)
	r, ok := s.PointerUp(Pt(12, 12))
	if !ok {
		t.Fatalf("PointerUp returned no selection")
	}
	if want := (Rect{X0: 4, Y0: 4, X1: 6, Y1: 6}); r != want {
		t.Fatalf("selection = %+v, want %+v", r, want)
	}
}
