// Package procart is a stand-in picture-data collaborator for cmd/doomrun
// and cmd/doombench: real wall/flat/sprite textures come from a WAD, and
// WAD parsing is deliberately out of scope here (spec §1's "picture data is
// an external collaborator" boundary), so this package hands the renderer
// distinct procedural colors per id instead of decoded graphics. It plays
// exactly the role render/bsp_test.go's stubPictures plays in tests, just
// varied by id so a terminal preview can tell surfaces apart.
package procart

import (
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/render"
)

// SkyFlatID is the reserved flat id this package reports from SkyNum.
const SkyFlatID = -1

// Source is a render.PictureData that synthesizes every lookup from a
// small deterministic palette keyed by id, never reading any asset.
type Source struct{}

func New() Source { return Source{} }

// FlatAverageColor implements render.PictureData. Light (0-255, spec §4.1
// sector light level) and scale together darken the flat's base hue; the
// sky flat id always reports render.SkyColor regardless of light, matching
// the "sky flats ignore sector lighting" behavior the teacher's own light
// model assumes for unlit backdrops.
func (Source) FlatAverageColor(light int, scale float64, flatID int) render.RGBA {
	if flatID == SkyFlatID {
		c := render.SkyColor
		return render.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	base := palette(flatID)
	lit := base.Scale(lightFactor(light) * clamp01(scale))
	return render.RGBA{R: lit.R, G: lit.G, B: lit.B, A: 255}
}

// WallColumn implements render.PictureData: a flat-shaded column of fixed
// height, varied by u only enough to give walls a visible seam: the shade
// alternates in vertical bands every quarter of the texture width
// (grates/banding, not a real texture).
func (Source) WallColumn(texID int, u float64) []render.RGBA {
	const height = 64
	base := palette(texID + 100)
	col := make([]render.RGBA, height)
	band := base
	if int(u*4)%2 == 1 {
		band = base.Scale(0.85)
	}
	for i := range col {
		col[i] = render.RGBA{R: band.R, G: band.G, B: band.B, A: 255}
	}
	return col
}

func (Source) SkyNum() int { return SkyFlatID }

// SpriteFrame implements render.PictureData: a small solid-color square
// billboard per (sprite, frame), ignoring rotation since there is no
// directional art to pick between — every rotation bucket gets the same
// frame, which is exactly what a single-rotation (rotation 0) sprite does
// in the real format this stands in for.
func (Source) SpriteFrame(sprite info.SpriteID, frame, rotation int) render.SpriteImage {
	const size = 32
	base := palette(int(sprite)*16 + frame)
	cols := make([][]render.RGBA, size)
	for x := range cols {
		col := make([]render.RGBA, size)
		for y := range col {
			col[y] = render.RGBA{R: base.R, G: base.G, B: base.B, A: 255}
		}
		cols[x] = col
	}
	return render.SpriteImage{
		Width: size, Height: size,
		LeftOffset: size / 2, TopOffset: size,
		Columns: cols,
	}
}

// palette maps an arbitrary id to one of a small set of distinct hues by
// hashing it, so adjacent flats/textures read as visually different
// surfaces without needing any real art.
func palette(id int) render.RGB {
	hues := []render.RGB{
		{R: 140, G: 120, B: 100},
		{R: 90, G: 110, B: 130},
		{R: 120, G: 90, B: 90},
		{R: 100, G: 130, B: 100},
		{R: 130, G: 130, B: 80},
		{R: 110, G: 100, B: 140},
	}
	if id < 0 {
		id = -id
	}
	return hues[id%len(hues)]
}

func lightFactor(light int) float64 {
	if light < 0 {
		light = 0
	}
	if light > 255 {
		light = 255
	}
	return float64(light) / 255.0
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
