package sim

import (
	"sort"

	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// TraceFlags selects which candidate kinds path_trace enumerates.
type TraceFlags uint32

const (
	TraceLines TraceFlags = 1 << iota
	TraceMobjs
)

// InterceptKind distinguishes a path_trace hit's candidate kind, used for
// the line-before-mobj tie-break on equal t (spec §4.1 "Tie-break policy").
type InterceptKind int

const (
	InterceptLine InterceptKind = iota
	InterceptMobj
)

// Intercept is one crossing path_trace reports, in increasing t.
type Intercept struct {
	T    geom.Fixed // parametric position along the ray, 0..Unit
	Kind InterceptKind
	Line int         // valid when Kind == InterceptLine
	Mobj core.Entity // valid when Kind == InterceptMobj
}

// PathTrace implements spec §4.1 path_trace: enumerates every line and
// mobj intercept along the segment start->end, sorted by increasing t
// with line intercepts preceding mobj intercepts on an exact tie. f
// returns false to halt the trace early.
func PathTrace(w *engine.World, start, end geom.Vec2, flags TraceFlags, f func(Intercept) bool) {
	ray := geom.Line{V1: start, V2: end}
	bbox := geom.BBox{
		MinX: minFixed(start.X, end.X), MaxX: maxFixed(start.X, end.X),
		MinY: minFixed(start.Y, end.Y), MaxY: maxFixed(start.Y, end.Y),
	}

	var hits []Intercept

	if flags&TraceLines != 0 {
		w.Map.IterLinesInBBox(bbox, func(lineIdx int) bool {
			ld := &w.Map.Linedefs[lineIdx]
			line := w.Map.LinedefLine(ld)
			if t, ok := geom.SegmentIntersect(ray, line); ok {
				hits = append(hits, Intercept{T: t, Kind: InterceptLine, Line: lineIdx})
			}
			return true
		})
	}

	if flags&TraceMobjs != 0 && w.Grid != nil {
		w.Grid.ForEachInBBox(bbox, func(e core.Entity) bool {
			pos, ok := w.Position.Get(e)
			if !ok {
				return true
			}
			ext, _ := w.Extent.Get(e)
			if t, ok := raySphereT(ray, geom.Vec2{X: pos.X, Y: pos.Y}, ext.Radius); ok {
				hits = append(hits, Intercept{T: t, Kind: InterceptMobj, Mobj: e})
			}
			return true
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].T != hits[j].T {
			return hits[i].T < hits[j].T
		}
		return hits[i].Kind < hits[j].Kind // Line(0) before Mobj(1)
	})

	for _, h := range hits {
		if !f(h) {
			return
		}
	}
}

// raySphereT finds the parametric t where ray passes within radius of
// center, clamped to the segment's own extent — a 2D circle intercept
// used to approximate a mobj's cylindrical footprint for hitscan/sight
// purposes (full 3D capsule testing is left to check_position).
func raySphereT(ray geom.Line, center geom.Vec2, radius geom.Fixed) (geom.Fixed, bool) {
	d := ray.Delta()
	length := d.Length()
	if length == 0 {
		return 0, false
	}
	dir := d.Normalize()
	toCenter := center.Sub(ray.V1)
	proj := toCenter.Dot(dir)
	if proj < 0 || proj > length {
		return 0, false
	}
	closest := ray.V1.Add(dir.Scale(proj))
	if geom.Distance(closest, center) > radius {
		return 0, false
	}
	return proj.Div(length), true
}

func minFixed(a, b geom.Fixed) geom.Fixed {
	if a < b {
		return a
	}
	return b
}

func maxFixed(a, b geom.Fixed) geom.Fixed {
	if a > b {
		return a
	}
	return b
}

// CheckSight implements spec §4.3 check_sight: a reject-table quick-out,
// then a blockmap line trace (PathTrace, not a BSP walk) over every line
// the ray crosses that checks the sight ray's linearly interpolated z against that line's
// sector opening. A one-sided (fully solid) line anywhere along the ray
// blocks sight outright.
func CheckSight(w *engine.World, a, b core.Entity) bool {
	la, lok := w.SectorLink.Get(a)
	lb, bok := w.SectorLink.Get(b)
	if lok && bok && w.Map.Reject.Blocked(la.Sector, lb.Sector) {
		return false
	}

	pa, ok1 := w.Position.Get(a)
	pb, ok2 := w.Position.Get(b)
	if !ok1 || !ok2 {
		return false
	}
	extA, _ := w.Extent.Get(a)
	extB, _ := w.Extent.Get(b)
	eyeA := pa.Z + extA.Height.Mul(geom.FromFloat(0.75))
	eyeB := pb.Z + extB.Height.Mul(geom.FromFloat(0.75))

	start := geom.Vec2{X: pa.X, Y: pa.Y}
	end := geom.Vec2{X: pb.X, Y: pb.Y}

	blocked := false
	PathTrace(w, start, end, TraceLines, func(ic Intercept) bool {
		ld := &w.Map.Linedefs[ic.Line]
		if !ld.TwoSided() {
			blocked = true
			return false
		}
		front, back := w.Map.Sidedefs[ld.SideFront].Sector, w.Map.Sidedefs[ld.SideBack].Sector
		lo, hi := w.Map.SectorOpening(front, back)
		sightZ := eyeA + (eyeB - eyeA).Mul(ic.T)
		if sightZ < lo || sightZ > hi {
			blocked = true
			return false
		}
		return true
	})
	return !blocked
}

// autoaimCone is the horizontal half-width of the narrow cone autoaim
// scans, either side of the shooter's facing angle. Autoaim computes no
// vertical aim: targets are not filtered by slope.
var autoaimCone = geom.FromDegrees(9)

// Autoaim implements spec §4.3 autoaim: scans the shooter's facing angle
// and a narrow cone either side of it for the first shootable mobj the
// ray reaches before any solid line, returning the target and the exact
// angle that hit it so hitscan/missile spawn can reuse the same direction.
func Autoaim(w *engine.World, shooter core.Entity, rangeDist geom.Fixed) (core.Entity, geom.Angle, bool) {
	pos, ok := w.Position.Get(shooter)
	if !ok {
		return core.NoEntity, 0, false
	}
	facing, _ := w.Facing.Get(shooter)
	origin := geom.Vec2{X: pos.X, Y: pos.Y}

	for _, da := range [...]geom.Angle{0, autoaimCone, -autoaimCone} {
		ang := facing.Angle + da
		dx, dy := ang.ToVertex()
		end := origin.Add(geom.Vec2{X: dx.Mul(rangeDist), Y: dy.Mul(rangeDist)})

		var found core.Entity
		PathTrace(w, origin, end, TraceLines|TraceMobjs, func(ic Intercept) bool {
			if ic.Kind == InterceptLine {
				return w.Map.Linedefs[ic.Line].TwoSided() // solid wall stops the trace
			}
			if ic.Mobj == shooter {
				return true
			}
			flags, ok := w.FlagsC.Get(ic.Mobj)
			if !ok || !flags.Bits.Has(info.Shootable) {
				return true
			}
			found = ic.Mobj
			return false
		})
		if found.Valid() {
			return found, ang, true
		}
	}
	return core.NoEntity, 0, false
}
