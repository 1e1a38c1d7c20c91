package render

import "github.com/lixenwraith/doomcore/info"

// PictureData is the read-only external collaborator supplying rendered
// pixel content for flats, wall textures and sprites (spec §6 "Consumed
// from picture data"). WAD parsing and the image data behind it are an
// explicit Non-goal (spec §1) — the renderer only ever calls through this
// interface, never touches a lump directly.
type PictureData interface {
	// FlatAverageColor implements "get_flat_average_color(light, scale,
	// flat_id) -> RGBA": one representative color for an entire flat,
	// already scaled by sector light and a renderer-chosen distance scale.
	FlatAverageColor(light int, scale float64, flatID int) RGBA

	// WallColumn implements "get_wall_column(tex_id, u) -> column": the
	// full vertical strip of texels at horizontal offset u (0..1 across
	// the texture's width), sampled top-to-bottom.
	WallColumn(texID int, u float64) []RGBA

	// SkyNum implements "sky_num()": the flat id reserved for sky, drawn
	// as SkyColor instead of a sampled flat (spec §4.7).
	SkyNum() int

	// SpriteFrame implements "sprite frame lookup by (sprite_id, frame,
	// rotation)": the billboard image for one animation frame as seen
	// from one of the historical 8 view-relative rotation buckets.
	SpriteFrame(sprite info.SpriteID, frame, rotation int) SpriteImage
}

// SpriteImage is a single billboard frame: width x height texels, sampled
// column-major like WallColumn. Col(x) returns nil for an out-of-range x.
type SpriteImage struct {
	Width, Height int
	LeftOffset    int // texel offset from the billboard's horizontal anchor
	TopOffset     int
	Columns       [][]RGBA // len == Width, each len == Height
}

func (s SpriteImage) Col(x int) []RGBA {
	if x < 0 || x >= len(s.Columns) {
		return nil
	}
	return s.Columns[x]
}
