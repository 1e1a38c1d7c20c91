package render

import (
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/mapdata"
)

// wallKind is the spec §4.7 seg classification: "(a) one-sided wall (full
// height), (b) upper step (backsector ceiling lower), (c) lower step
// (backsector floor higher), (d) middle texture (transparent/grate)".
type wallKind int

const (
	wallFull wallKind = iota
	wallUpperStep
	wallLowerStep
	wallMiddleGrate
)

// wallPiece is one classified, textured vertical span of a seg ready for
// view transform and rasterization.
type wallPiece struct {
	kind           wallKind
	top, bottom    geom.Fixed
	texID          int
	unpegged       bool
	transparent    bool // middle grate: skip texel with A==0 rather than occluding
}

// classifySeg implements spec §4.7's seg classification, returning every
// piece this seg contributes (a one-sided seg yields exactly one; a
// two-sided seg yields an upper and/or lower step plus an optional middle
// grate, omitting any piece whose span is degenerate).
func classifySeg(m *mapdata.Map, seg *mapdata.Seg) []wallPiece {
	ld := &m.Linedefs[seg.Linedef]
	frontSide := &m.Sidedefs[ld.SideFront]
	side := frontSide
	if seg.Side == 1 {
		side = &m.Sidedefs[ld.SideBack]
	}
	sideSectorIdx := side.Sector
	sideSector := &m.Sectors[sideSectorIdx]

	if !ld.TwoSided() {
		return []wallPiece{{
			kind: wallFull, top: sideSector.CeilingHeight, bottom: sideSector.FloorHeight,
			texID: side.MidTex, unpegged: ld.Flags&mapdata.LineLowerUnpegged != 0,
		}}
	}

	otherSideIdx := ld.SideFront
	if seg.Side == 0 {
		otherSideIdx = ld.SideBack
	}
	otherSector := &m.Sectors[m.Sidedefs[otherSideIdx].Sector]

	var pieces []wallPiece
	if otherSector.CeilingHeight < sideSector.CeilingHeight && side.UpperTex >= 0 {
		pieces = append(pieces, wallPiece{
			kind: wallUpperStep, top: sideSector.CeilingHeight, bottom: otherSector.CeilingHeight,
			texID: side.UpperTex, unpegged: ld.Flags&mapdata.LineUpperUnpegged == 0,
		})
	}
	if otherSector.FloorHeight > sideSector.FloorHeight && side.LowerTex >= 0 {
		pieces = append(pieces, wallPiece{
			kind: wallLowerStep, top: otherSector.FloorHeight, bottom: sideSector.FloorHeight,
			texID: side.LowerTex, unpegged: ld.Flags&mapdata.LineLowerUnpegged != 0,
		})
	}
	if side.MidTex >= 0 {
		top, bottom := sideSector.CeilingHeight, sideSector.FloorHeight
		if otherSector.CeilingHeight < top {
			top = otherSector.CeilingHeight
		}
		if otherSector.FloorHeight > bottom {
			bottom = otherSector.FloorHeight
		}
		pieces = append(pieces, wallPiece{
			kind: wallMiddleGrate, top: top, bottom: bottom, texID: side.MidTex,
			unpegged: ld.Flags&mapdata.LineLowerUnpegged != 0, transparent: true,
		})
	}
	return pieces
}

// isBackFacing implements spec §4.7 "if back-facing relative to the
// player, skip": true when the player stands on the back side of the
// seg's own linedef direction, the standard Doom front/back seg cull.
func isBackFacing(m *mapdata.Map, seg *mapdata.Seg, viewX, viewY geom.Fixed) bool {
	line := m.SegLine(seg)
	return line.PointOnSide(geom.Vec2{X: viewX, Y: viewY}) == geom.Back
}

// renderWall rasterizes one classified wall piece: it walks screen
// columns across the clipped, projected seg, sampling PictureData.WallColumn
// per column and writing through the framebuffer's depth test.
func (r *Renderer) renderWall(seg *mapdata.Seg, piece wallPiece, light int) {
	line := r.world.Map.SegLine(seg)
	var a, b viewPoint
	a.X, a.Y, _ = r.cam.ToView(line.V1.X.ToFloat(), line.V1.Y.ToFloat(), 0)
	b.X, b.Y, _ = r.cam.ToView(line.V2.X.ToFloat(), line.V2.Y.ToFloat(), 0)

	ca, cb, ok := clipNearPlane(a, b)
	if !ok {
		return
	}

	topW, botW := piece.top.ToFloat(), piece.bottom.ToFloat()
	if botW >= topW {
		return
	}

	aSX, aTopSY, aDepth, aOK := r.cam.Project(ca.X, ca.Y, topW-r.cam.Z)
	bSX, bTopSY, bDepth, bOK := r.cam.Project(cb.X, cb.Y, topW-r.cam.Z)
	if !aOK || !bOK {
		return
	}
	_, aBotSY, _, _ := r.cam.Project(ca.X, ca.Y, botW-r.cam.Z)
	_, bBotSY, _, _ := r.cam.Project(cb.X, cb.Y, botW-r.cam.Z)

	topA := screenPoint{X: aSX, Y: aTopSY, Depth: aDepth}
	topB := screenPoint{X: bSX, Y: bTopSY, Depth: bDepth}
	botA := screenPoint{X: aSX, Y: aBotSY, Depth: aDepth}
	botB := screenPoint{X: bSX, Y: bBotSY, Depth: bDepth}

	ctA, ctB, visTop := screenClipLine(topA, topB, float64(r.cam.Width), float64(r.cam.Height))
	cbA, cbB, visBot := screenClipLine(botA, botB, float64(r.cam.Width), float64(r.cam.Height))
	if !visTop && !visBot {
		return
	}

	x0, x1 := int(ctA.X), int(ctB.X)
	if x0 > x1 {
		x0, x1 = x1, x0
		ctA, ctB = ctB, ctA
		cbA, cbB = cbB, cbA
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}
	span := float64(x1 - x0)
	if span <= 0 {
		span = 1
	}

	for x := x0; x < x1; x++ {
		if x < 0 || x >= r.cam.Width {
			continue
		}
		t := (float64(x) - ctA.X) / span
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		yTop := ctA.Y + t*(ctB.Y-ctA.Y)
		yBot := cbA.Y + t*(cbB.Y-cbA.Y)
		depth := ctA.Depth + t*(ctB.Depth-ctA.Depth)
		if yBot < yTop {
			continue
		}
		col := r.pictures.WallColumn(piece.texID, t)
		y0, y1 := int(yTop), int(yBot)
		if y1 <= y0 {
			y1 = y0 + 1
		}
		colSpan := y1 - y0
		for y := y0; y < y1; y++ {
			if y < 0 || y >= r.cam.Height {
				continue
			}
			var texel RGBA
			if len(col) > 0 {
				frac := float64(y-y0) / float64(colSpan)
				if piece.unpegged {
					frac = 1 - frac
				}
				idx := int(frac * float64(len(col)))
				if idx >= len(col) {
					idx = len(col) - 1
				}
				if idx < 0 {
					idx = 0
				}
				texel = col[idx]
			} else {
				texel = RGBA{R: 140, G: 140, B: 140, A: 255}
			}
			if piece.transparent && texel.Transparent() {
				continue
			}
			shaded := r.shade(texel.RGB(), light, depth)
			r.fb.TestAndSet(x, y, shaded, depth)
		}
	}
}
