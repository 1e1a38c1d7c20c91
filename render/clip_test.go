package render

import "testing"

func TestScreenClipLineFullyInside(t *testing.T) {
	a, b := screenPoint{X: 10, Y: 10, Depth: 1}, screenPoint{X: 20, Y: 20, Depth: 2}
	ca, cb, ok := screenClipLine(a, b, 100, 100)
	if !ok || ca != a || cb != b {
		t.Fatalf("fully inside segment should pass through unchanged, got %v %v ok=%v", ca, cb, ok)
	}
}

func TestScreenClipLineFullyOutside(t *testing.T) {
	a, b := screenPoint{X: -50, Y: -50, Depth: 1}, screenPoint{X: -10, Y: -10, Depth: 1}
	_, _, ok := screenClipLine(a, b, 100, 100)
	if ok {
		t.Fatalf("fully outside segment should be rejected")
	}
}

func TestScreenClipLineCrossesEdge(t *testing.T) {
	a, b := screenPoint{X: -10, Y: 50, Depth: 1}, screenPoint{X: 50, Y: 50, Depth: 2}
	ca, cb, ok := screenClipLine(a, b, 100, 100)
	if !ok {
		t.Fatalf("expected a clipped but partially visible segment")
	}
	if ca.X < 0 || cb.X < 0 {
		t.Fatalf("clipped endpoints should stay within [0, w], got %v %v", ca, cb)
	}
}

func TestClipNearPlaneBothBehind(t *testing.T) {
	a, b := viewPoint{X: 0, Y: 1, Z: 0}, viewPoint{X: 0, Y: 2, Z: 0}
	_, _, ok := clipNearPlane(a, b)
	if ok {
		t.Fatalf("expected both-behind segment to be fully clipped")
	}
}

func TestClipNearPlaneCrosses(t *testing.T) {
	a, b := viewPoint{X: 0, Y: 1, Z: 0}, viewPoint{X: 0, Y: 10, Z: 0}
	ca, cb, ok := clipNearPlane(a, b)
	if !ok {
		t.Fatalf("expected a crossing segment to clip, not reject")
	}
	if ca.Y < nearPlaneY-0.001 || cb.Y < nearPlaneY-0.001 {
		t.Fatalf("clipped endpoints should both be at or beyond the near plane: %v %v", ca, cb)
	}
}

func TestClipNearPlaneBothInFront(t *testing.T) {
	a, b := viewPoint{X: 0, Y: 10, Z: 0}, viewPoint{X: 0, Y: 20, Z: 0}
	ca, cb, ok := clipNearPlane(a, b)
	if !ok || ca != a || cb != b {
		t.Fatalf("both-in-front segment should pass through unchanged")
	}
}
