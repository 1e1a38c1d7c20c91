package render

import (
	"math"
	"testing"
)

func TestFramebufferClearResetsToSky(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.TestAndSet(1, 1, White, 10)
	fb.Clear()
	p := fb.At(1, 1)
	if p.Color != SkyColor {
		t.Fatalf("color after clear = %v, want %v", p.Color, SkyColor)
	}
	if !math.IsInf(p.Depth, 1) {
		t.Fatalf("depth after clear = %v, want +Inf", p.Depth)
	}
}

func TestFramebufferTestAndSetRespectsDepth(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if !fb.TestAndSet(0, 0, White, 10) {
		t.Fatalf("first write into an untouched pixel should succeed")
	}
	if fb.TestAndSet(0, 0, Black, 20) {
		t.Fatalf("a farther write should not overwrite a nearer pixel")
	}
	if fb.At(0, 0).Color != White {
		t.Fatalf("nearer color got overwritten")
	}
	if !fb.TestAndSet(0, 0, Black, 5) {
		t.Fatalf("a nearer write should succeed")
	}
	if fb.At(0, 0).Color != Black {
		t.Fatalf("nearer write did not take effect")
	}
}

func TestFramebufferOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if fb.TestAndSet(-1, 0, White, 1) {
		t.Fatalf("expected out-of-bounds write to fail")
	}
	if fb.TestAndSet(4, 0, White, 1) {
		t.Fatalf("expected out-of-bounds write to fail")
	}
	p := fb.At(100, 100)
	if p.Color != Black {
		t.Fatalf("out-of-bounds read should return Black, got %v", p.Color)
	}
}

func TestFramebufferResizePreservesDimensions(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Resize(8, 6)
	if fb.Width != 8 || fb.Height != 6 {
		t.Fatalf("Resize did not update dimensions: %dx%d", fb.Width, fb.Height)
	}
	if !math.IsInf(fb.At(7, 5).Depth, 1) {
		t.Fatalf("resized framebuffer should start cleared")
	}
}
