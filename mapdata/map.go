package mapdata

import "github.com/lixenwraith/doomcore/geom"

// Map is the fully loaded, process-wide-immutable level geometry plus the
// mutable-in-place Sectors slice sector thinkers operate on. A Map is safe
// for concurrent read from many goroutines (e.g. render running off the
// simulation thread, spec §5) as long as sector field writes go through
// the sector package's thinkers, which the tick orchestrator serializes.
type Map struct {
	Vertices   []Vertex
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Sectors    []Sector
	Subsectors []Subsector
	Segs       []Seg
	Nodes      []Node
	Things     []Thing

	Blockmap *Blockmap
	Reject   *Reject

	RootNode int // index into Nodes, or SubsectorFlag|index if the whole map is one subsector
}

// SegLine returns the geom.Line for a seg, in seg-traversal order.
func (m *Map) SegLine(s *Seg) geom.Line {
	return geom.Line{V1: m.Vertices[s.V1], V2: m.Vertices[s.V2]}
}

// LinedefLine returns the full linedef's line, v1->v2 regardless of seg side.
func (m *Map) LinedefLine(ld *Linedef) geom.Line {
	return ld.Line(m.Vertices)
}

// SectorOpening returns the vertical gap a mobj can pass through when
// crossing a two-sided linedef: max(floor) .. min(ceiling) across the two
// neighboring sectors, per spec §4.2 "reject through short openings" and
// §4.3 sight-check opening test.
func (m *Map) SectorOpening(front, back int) (lo, hi geom.Fixed) {
	fs, bs := &m.Sectors[front], &m.Sectors[back]
	lo = fs.FloorHeight
	if bs.FloorHeight > lo {
		lo = bs.FloorHeight
	}
	hi = fs.CeilingHeight
	if bs.CeilingHeight < hi {
		hi = bs.CeilingHeight
	}
	return lo, hi
}

// LowestNeighborCeiling/HighestNeighborFloor etc. are used by the floor
// and ceiling thinkers (package sector) to compute target heights (spec
// §4.6 "lowest neighbor, highest neighbor").
func (m *Map) LowestNeighborCeiling(sectorIdx int) geom.Fixed {
	best := geom.FromInt(1 << 20)
	found := false
	for _, li := range m.Sectors[sectorIdx].LineIndices {
		ld := &m.Linedefs[li]
		if !ld.TwoSided() {
			continue
		}
		for _, other := range []int{m.Sidedefs[ld.SideFront].Sector, m.Sidedefs[ld.SideBack].Sector} {
			if other == sectorIdx {
				continue
			}
			c := m.Sectors[other].CeilingHeight
			if !found || c < best {
				best = c
				found = true
			}
		}
	}
	if !found {
		return m.Sectors[sectorIdx].CeilingHeight
	}
	return best
}

func (m *Map) HighestNeighborFloor(sectorIdx int) geom.Fixed {
	best := geom.FromInt(-(1 << 20))
	found := false
	for _, li := range m.Sectors[sectorIdx].LineIndices {
		ld := &m.Linedefs[li]
		if !ld.TwoSided() {
			continue
		}
		for _, other := range []int{m.Sidedefs[ld.SideFront].Sector, m.Sidedefs[ld.SideBack].Sector} {
			if other == sectorIdx {
				continue
			}
			f := m.Sectors[other].FloorHeight
			if !found || f > best {
				best = f
				found = true
			}
		}
	}
	if !found {
		return m.Sectors[sectorIdx].FloorHeight
	}
	return best
}

func (m *Map) LowestNeighborFloor(sectorIdx int) geom.Fixed {
	best := geom.FromInt(1 << 20)
	found := false
	for _, li := range m.Sectors[sectorIdx].LineIndices {
		ld := &m.Linedefs[li]
		if !ld.TwoSided() {
			continue
		}
		for _, other := range []int{m.Sidedefs[ld.SideFront].Sector, m.Sidedefs[ld.SideBack].Sector} {
			if other == sectorIdx {
				continue
			}
			f := m.Sectors[other].FloorHeight
			if !found || f < best {
				best = f
				found = true
			}
		}
	}
	if !found {
		return m.Sectors[sectorIdx].FloorHeight
	}
	return best
}
