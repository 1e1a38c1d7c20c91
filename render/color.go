// Package render implements spec §4.7's BSP-guided software rasterizer: a
// pure function from world state (the BSP tree, sector heights/lights,
// mobj positions) plus a view position to a W×H pixel framebuffer.
// Presentation (turning that framebuffer into terminal cells, an image, a
// window) is deliberately someone else's problem — windowing/framebuffer
// presentation is an explicit Non-goal (spec §1).
package render

// RGB stores explicit 8-bit color channels, the renderer's working pixel
// type (mirrors the teacher's render.RGB, decoupled here from any
// terminal/tcell dependency since this package has none).
type RGB struct {
	R, G, B uint8
}

// RGBA adds an alpha channel, the type picture-data lookups hand back
// (spec §6 "get_flat_average_color ... -> RGBA") so middle-texture grates
// and sprite cutouts can carry transparency.
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) Opaque() bool { return c.A == 255 }
func (c RGBA) Transparent() bool { return c.A == 0 }

func (c RGBA) RGB() RGB { return RGB{c.R, c.G, c.B} }

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha).
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies every channel by a 0..1 factor, used for the constant
// "dark color" sky flats get instead of a real sky texture (spec §4.7).
func (dst RGB) Scale(f float64) RGB {
	if f < 0 {
		f = 0
	}
	return RGB{uint8(float64(dst.R) * f), uint8(float64(dst.G) * f), uint8(float64(dst.B) * f)}
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}

	// SkyColor is the "constant dark color" sky flats render as (spec §4.7
	// "Sky flats are drawn as a constant dark color / sky texture"); a real
	// sky texture is picture data this pack has none of.
	SkyColor = RGB{20, 24, 38}
)
