package render

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/mapdata"
)

// Renderer is the pure framebuffer function spec §4.7 describes: given a
// world and a viewpoint, it walks the BSP front-to-back and produces a
// fully painted Framebuffer. It holds no state across frames beyond the
// framebuffer and flat-triangulation cache, so one Renderer is reusable
// for every frame of a level and must be rebuilt only when the level
// (and therefore its BSP) changes.
type Renderer struct {
	fb       *Framebuffer
	pictures PictureData
	world    *engine.World
	cam      *Camera

	flatCache map[int]subsectorFlat // keyed by subsector index, built lazily

	// VisitSubsector, if set, is called once per subsector actually
	// emitted by the BSP walk, in front-to-back order. It exists purely
	// so tests can assert which subsectors a frame visited (spec §8
	// scenario 6, "verifiable by instrumenting the BSP walk") without
	// the renderer itself needing any test-only branching in its draw
	// path.
	VisitSubsector func(subsectorIdx int)
}

func NewRenderer(pictures PictureData, width, height int) *Renderer {
	return &Renderer{
		fb:        NewFramebuffer(width, height),
		pictures:  pictures,
		flatCache: make(map[int]subsectorFlat),
	}
}

// RenderFrame implements spec §4.7 end to end: build the view matrix from
// the player's (x,y,viewz) and (angle,lookdir), clear the framebuffer, walk
// the BSP emitting segs/flats, collect and draw sprites, return the frame.
func (r *Renderer) RenderFrame(w *engine.World, viewX, viewY, viewZ geom.Fixed, viewAngle, lookdir geom.Angle) *Framebuffer {
	r.world = w
	r.cam = NewCamera(viewX, viewY, viewZ, viewAngle, lookdir, r.fb.Width, r.fb.Height)
	r.fb.Clear()

	r.walkBSP(w.Map.RootNode, viewX, viewY)
	r.drawSprites(w)
	return r.fb
}

// shade is the single call-through to Diminish every wall/flat pixel goes
// through, converting a picture-data texel plus a sector light level and
// view-space depth into the final framebuffer color (spec §4.7 "texture
// and light derived from the sector").
func (r *Renderer) shade(base RGB, light int, depth float64) RGB {
	return Diminish(base, light, depth)
}

// walkBSP implements spec §4.7's traversal: recurse into the near child
// first, test the far child's bbox against the frustum, recurse only if
// potentially visible, and emit a subsector's geometry on reaching a leaf.
func (r *Renderer) walkBSP(nodeIdx int, viewX, viewY geom.Fixed) {
	if nodeIdx&mapdata.SubsectorFlag != 0 {
		r.emitSubsector(nodeIdx &^ mapdata.SubsectorFlag, viewX, viewY)
		return
	}
	node := &r.world.Map.Nodes[nodeIdx]
	side := node.Partition.PointOnSide(geom.Vec2{X: viewX, Y: viewY})

	nearChild, nearBBox, farChild, farBBox := node.FrontChild, node.FrontBBox, node.BackChild, node.BackBBox
	if side == geom.Back {
		nearChild, nearBBox, farChild, farBBox = farChild, farBBox, nearChild, nearBBox
	}

	r.walkBSP(nearChild, viewX, viewY)
	if r.cam.Frustum(farBBox) {
		r.walkBSP(farChild, viewX, viewY)
	}
}

// emitSubsector draws one BSP leaf's flats and segs, gated by the reject
// table so a subsector the player's own sector cannot possibly see is
// never rasterized (spec §8 scenario 6: a seg from a PVS-blocked subsector
// must never be emitted).
func (r *Renderer) emitSubsector(subsectorIdx int, viewX, viewY geom.Fixed) {
	m := r.world.Map
	sub := &m.Subsectors[subsectorIdx]

	viewSubIdx := m.PointInSubsector(geom.Vec2{X: viewX, Y: viewY})
	viewSector := m.Subsectors[viewSubIdx].Sector
	if m.Reject != nil && m.Reject.Blocked(viewSector, sub.Sector) {
		return
	}

	if r.VisitSubsector != nil {
		r.VisitSubsector(subsectorIdx)
	}

	r.renderFlats(subsectorIdx)

	sector := &m.Sectors[sub.Sector]
	for i := 0; i < sub.NumSegs; i++ {
		seg := &m.Segs[sub.FirstSeg+i]
		if isBackFacing(m, seg, viewX, viewY) {
			continue
		}
		for _, piece := range classifySeg(m, seg) {
			r.renderWall(seg, piece, sector.LightLevel)
		}
	}
}
