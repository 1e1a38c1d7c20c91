package render

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// billboard is one mobj's projected sprite, collected before drawing so
// the whole frame's sprites can be depth-sorted far-to-near the way a
// painter's algorithm needs (the framebuffer depth test alone is not
// enough for sprites since transparent texels must still see whatever
// a farther, already-drawn sprite or wall left behind them).
type billboard struct {
	entity core.Entity
	sx, sy float64
	depth  float64
	scale  float64
	frame  SpriteImage
	light  int
	shadow bool
}

// drawSprites collects every live mobj's current-frame billboard,
// depth-sorts far to near, and draws each as a vertical-column strip
// (spec §4.7's sprite pass, alongside the seg/flat passes).
func (r *Renderer) drawSprites(w *engine.World) {
	boards := r.collectBillboards(w)
	for i := 1; i < len(boards); i++ {
		for j := i; j > 0 && boards[j].depth > boards[j-1].depth; j-- {
			boards[j], boards[j-1] = boards[j-1], boards[j]
		}
	}
	for i, b := range boards {
		r.drawBillboard(b, i)
	}
}

func (r *Renderer) collectBillboards(w *engine.World) []billboard {
	var boards []billboard
	for _, e := range w.Anim.All() {
		if !w.Alive(e) {
			continue
		}
		pos, ok := w.Position.Get(e)
		if !ok {
			continue
		}
		anim, _ := w.Anim.Get(e)
		state := info.States[anim.State]
		facing, _ := w.Facing.Get(e)

		vx, vy, _ := r.cam.ToView(pos.X.ToFloat(), pos.Y.ToFloat(), 0)
		sx, sy, depth, ok := r.cam.Project(vx, vy, pos.Z.ToFloat()-r.cam.Z)
		if !ok || depth <= 0 {
			continue
		}

		rotation := spriteRotation(facing.Angle, geom.BetweenPoints(pos.X, pos.Y, geom.FromFloat(r.cam.X), geom.FromFloat(r.cam.Y)))
		frame := r.pictures.SpriteFrame(state.Sprite, info.FrameIndex(state.Frame), rotation)

		light := 255
		if sec, ok := w.SectorLink.Get(e); ok {
			light = w.Map.Sectors[sec.Sector].LightLevel
		}

		shadow := false
		if flags, ok := w.FlagsC.Get(e); ok {
			shadow = flags.Bits&info.Shadow != 0
		}

		boards = append(boards, billboard{
			entity: e, sx: sx, sy: sy, depth: depth,
			scale: 1.0 / depth, frame: frame, light: light, shadow: shadow,
		})
	}
	return boards
}

// spriteRotation buckets the angle from the sprite to the viewer,
// relative to the sprite's own facing, into one of the 8 historical
// rotation frames (spec §4.7 "sprite frame lookup by (..., rotation)").
func spriteRotation(facing, toViewer geom.Angle) int {
	rel := geom.Diff(facing, toViewer)
	return int((uint32(rel) + uint32(geom.Angle180)/8) >> 29)
}

func (r *Renderer) drawBillboard(b billboard, phaseSeed int) {
	if b.frame.Width == 0 || b.frame.Height == 0 {
		return
	}
	halfW := float64(b.frame.Width) * b.scale / 2
	height := float64(b.frame.Height) * b.scale

	left := b.sx - halfW
	top := b.sy - height

	state, _ := r.world.Anim.Get(b.entity)
	fullBright := info.IsFullBright(info.States[state.State].Frame)

	for sx := int(left); sx < int(left+2*halfW); sx++ {
		if sx < 0 || sx >= r.fb.Width {
			continue
		}
		u := (float64(sx) - left) / (2 * halfW)
		col := b.frame.Col(int(u * float64(b.frame.Width)))
		if col == nil {
			continue
		}
		for sy := int(top); sy < int(top+height); sy++ {
			if sy < 0 || sy >= r.fb.Height {
				continue
			}
			v := (float64(sy) - top) / height
			idx := int(v * float64(len(col)))
			if idx < 0 || idx >= len(col) {
				continue
			}
			texel := col[idx]
			if texel.Transparent() {
				continue
			}
			background := r.fb.At(sx, sy).Color
			color := texel.RGB()
			switch {
			case b.shadow:
				color = Fuzzy(background, color, phaseSeed+sx+sy)
			case fullBright:
				color = FullBright(color)
			default:
				color = r.shade(color, b.light, b.depth)
			}
			r.fb.TestAndSet(sx, sy, color, b.depth)
		}
	}
}
