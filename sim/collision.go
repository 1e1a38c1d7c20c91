package sim

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
)

// MoveResult classifies why a move was rejected (spec §4.2 "Failure modes").
type MoveResult int

const (
	MoveOK MoveResult = iota
	MoveBlockedLine
	MoveBlockedMobj
	MoveOutOfBounds
)

// PositionCheck is the result of check_position (spec §4.2): besides
// accept/reject, it carries the tightened floor/ceiling/dropoff bounds
// try_move needs to decide whether the destination is actually passable
// once every candidate line has narrowed the vertical opening.
type PositionCheck struct {
	Result    MoveResult
	BlockLine int         // valid when Result == MoveBlockedLine
	BlockMobj core.Entity // valid when Result == MoveBlockedMobj
	FloorZ    geom.Fixed
	CeilingZ  geom.Fixed
	DropOffZ  geom.Fixed
}

// CheckPosition implements spec §4.2 check_position: cylindrical
// collision against every line and mobj candidate in the prospective
// bbox, narrowing floorz/ceilingz/dropoffz across every two-sided line
// crossed so try_move can reject "short" openings the mobj's extent
// can't fit through.
func CheckPosition(w *engine.World, e core.Entity, newP geom.Vec2) PositionCheck {
	ext, _ := w.Extent.Get(e)
	pos, _ := w.Position.Get(e)
	flags, _ := w.FlagsC.Get(e)

	subIdx := w.Map.PointInSubsector(newP)
	destSector := &w.Map.Sectors[w.Map.Subsectors[subIdx].Sector]

	pc := PositionCheck{
		Result:   MoveOK,
		FloorZ:   destSector.FloorHeight,
		CeilingZ: destSector.CeilingHeight,
		DropOffZ: destSector.FloorHeight,
	}

	bbox := geom.BBoxFromCenter(newP, ext.Radius)

	w.Map.IterLinesInBBox(bbox, func(lineIdx int) bool {
		ld := &w.Map.Linedefs[lineIdx]
		line := w.Map.LinedefLine(ld)
		if line.BoxOnLineSide(bbox) != geom.Both {
			return true // box doesn't actually straddle this line
		}

		if !ld.TwoSided() || ld.Flags&mapdata.LineBlocking != 0 {
			pc.Result = MoveBlockedLine
			pc.BlockLine = lineIdx
			return false
		}

		front, back := w.Map.Sidedefs[ld.SideFront].Sector, w.Map.Sidedefs[ld.SideBack].Sector
		lo, hi := w.Map.SectorOpening(front, back)
		dropoff := w.Map.Sectors[front].FloorHeight
		if w.Map.Sectors[back].FloorHeight < dropoff {
			dropoff = w.Map.Sectors[back].FloorHeight
		}

		if lo > pc.FloorZ {
			pc.FloorZ = lo
		}
		if hi < pc.CeilingZ {
			pc.CeilingZ = hi
		}
		if dropoff < pc.DropOffZ {
			pc.DropOffZ = dropoff
		}
		return true
	})

	if pc.Result != MoveOK {
		return pc
	}

	if flags.Bits.Has(info.NoClip) {
		return pc
	}

	if w.Grid != nil {
		w.Grid.ForEachInBBox(bbox, func(other core.Entity) bool {
			if other == e {
				return true
			}
			oFlags, has := w.FlagsC.Get(other)
			if !has || !oFlags.Bits.Has(info.Solid) {
				return true
			}
			oPos, _ := w.Position.Get(other)
			oExt, _ := w.Extent.Get(other)

			dx := newP.X - oPos.X
			dy := newP.Y - oPos.Y
			distSq := dx.Mul(dx) + dy.Mul(dy)
			minDist := ext.Radius + oExt.Radius
			if distSq >= minDist.Mul(minDist) {
				return true // 2D discs don't overlap
			}
			// a mobj passes over another iff its z >= other.z + other.height
			if pos.Z >= oPos.Z+oExt.Height || oPos.Z >= pos.Z+ext.Height {
				return true
			}
			pc.Result = MoveBlockedMobj
			pc.BlockMobj = other
			return false
		})
	}
	return pc
}

// TryMove implements spec §4.2 try_move: check_position, then (unless
// NOCLIP) reject destinations whose opening is too short for the mobj's
// height or whose dropoff exceeds the step-down limit for a mobj lacking
// DROPOFF; otherwise commits the new (x,y), relinks the spatial grid cell
// and the owning sector.
func TryMove(w *engine.World, e core.Entity, newP geom.Vec2) PositionCheck {
	pc := CheckPosition(w, e, newP)
	if pc.Result != MoveOK {
		return pc
	}

	ext, _ := w.Extent.Get(e)
	flags, _ := w.FlagsC.Get(e)
	pos, _ := w.Position.Get(e)

	if !flags.Bits.Has(info.NoClip) {
		if pc.CeilingZ-pc.FloorZ < ext.Height {
			pc.Result = MoveBlockedLine
			return pc
		}
		if pos.Z+ext.Height > pc.CeilingZ {
			pc.Result = MoveBlockedLine
			return pc
		}
		const maxStepDown = 24 << 16 // 24 map units, the historical step-down limit
		if !flags.Bits.Has(info.DropOff) && pc.FloorZ-pc.DropOffZ > geom.Fixed(maxStepDown) {
			pc.Result = MoveBlockedLine
			return pc
		}
	}

	oldP := geom.Vec2{X: pos.X, Y: pos.Y}
	w.Position.Mutate(e, func(p *component.Position) { p.X = newP.X; p.Y = newP.Y })
	if w.Grid != nil && !flags.Bits.Has(info.NoBlockMap) {
		w.Grid.Move(e, oldP, newP)
	}
	subIdx := w.Map.PointInSubsector(newP)
	w.SectorLink.Mutate(e, func(sl *component.SectorLink) { sl.Sector = w.Map.Subsectors[subIdx].Sector })
	reportLineCrossings(w, e, oldP, newP)
	return pc
}

// reportLineCrossings pushes spec §4.6's "walk over" trigger (spec §4.8
// step 4 "process queued triggers") for every specialed line the step
// from oldP to newP actually crosses. Package sim has no dependency on
// package sector — it only reports the crossing; package sector is the
// one that knows what Special opcodes mean and decides what to spawn.
func reportLineCrossings(w *engine.World, e core.Entity, oldP, newP geom.Vec2) {
	if oldP == newP {
		return
	}
	step := geom.Line{V1: oldP, V2: newP}
	bbox := geom.BBox{
		MinX: minFixed(oldP.X, newP.X), MaxX: maxFixed(oldP.X, newP.X),
		MinY: minFixed(oldP.Y, newP.Y), MaxY: maxFixed(oldP.Y, newP.Y),
	}
	w.Map.IterLinesInBBox(bbox, func(lineIdx int) bool {
		ld := &w.Map.Linedefs[lineIdx]
		if ld.Special == 0 {
			return true
		}
		if _, ok := geom.SegmentIntersect(step, w.Map.LinedefLine(ld)); ok {
			w.PushEvent(engine.EventLineCrossed, lineIdx, e, w.Tic())
		}
		return true
	})
}
