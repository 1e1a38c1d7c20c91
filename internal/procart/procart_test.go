package procart

import "testing"

func TestSkyFlatIgnoresScaleAndLight(t *testing.T) {
	s := New()
	c := s.FlatAverageColor(0, 0, SkyFlatID)
	if c.A != 255 {
		t.Fatalf("sky flat should be opaque, got A=%d", c.A)
	}
	if c.R == 0 && c.G == 0 && c.B == 0 {
		t.Fatalf("sky flat should not be black regardless of light=0")
	}
}

func TestFlatAverageColorDarkensWithLight(t *testing.T) {
	s := New()
	bright := s.FlatAverageColor(255, 1.0, 1)
	dim := s.FlatAverageColor(0, 1.0, 1)
	if dim.R > bright.R || dim.G > bright.G || dim.B > bright.B {
		t.Fatalf("light=0 should be darker than light=255: dim=%+v bright=%+v", dim, bright)
	}
}

func TestWallColumnHasFixedHeight(t *testing.T) {
	s := New()
	col := s.WallColumn(3, 0.1)
	if len(col) != 64 {
		t.Fatalf("len(WallColumn) = %d, want 64", len(col))
	}
}

func TestSpriteFrameColumnsMatchDimensions(t *testing.T) {
	s := New()
	img := s.SpriteFrame(0, 0, 0)
	if img.Width != 32 || img.Height != 32 {
		t.Fatalf("SpriteFrame dims = %dx%d, want 32x32", img.Width, img.Height)
	}
	if len(img.Columns) != img.Width {
		t.Fatalf("len(Columns) = %d, want %d", len(img.Columns), img.Width)
	}
	if got := img.Col(0); len(got) != img.Height {
		t.Fatalf("len(Col(0)) = %d, want %d", len(got), img.Height)
	}
	if img.Col(-1) != nil || img.Col(img.Width) != nil {
		t.Fatalf("Col out-of-range should return nil")
	}
}

func TestPaletteDiffersAcrossIDs(t *testing.T) {
	a := palette(1)
	b := palette(2)
	if a == b {
		t.Fatalf("palette(1) == palette(2), expected distinct procedural colors")
	}
}
