package mapdata

import (
	"github.com/lixenwraith/doomcore/geom"
	"github.com/pkg/errors"
)

// RawLump is the external map-loader contract (spec §6 "Consumed from map
// loader"): WAD parsing and lump extraction are out of scope for this
// module (spec §1 Non-goals) — the loader hands us already-parsed arrays
// and we only validate indices and assemble the BSP-ready Map.
type RawLump struct {
	Vertices []Vertex
	Linedefs []Linedef
	Sidedefs []Sidedef
	Sectors  []Sector
	Subsectors []Subsector
	Segs     []Seg
	Nodes    []Node
	Things   []Thing
	RootNode int

	// BlockmapOrigin/Width/Height describe the pre-built blockmap header;
	// BlockmapLines[cellIndex] lists the linedef indices in that cell, in
	// the on-disk cell order (row-major, OriginY-first). May be nil, in
	// which case Load derives a blockmap from the linedef bboxes directly.
	BlockmapOriginX, BlockmapOriginY geom.Fixed
	BlockmapWidth, BlockmapHeight    int
	BlockmapLines                    [][]int

	// Reject is the raw sector×sector bitmap, row-major, numSectors bits
	// per row padded to a byte boundary; may be nil or all-zero (spec §6).
	Reject []byte
}

// Load validates a RawLump and assembles the immutable Map used by every
// other package. Data errors (spec §7) are fatal at load time, surfaced
// with a human-readable reason via errors.Wrap so the caller can log a
// full cause chain; the level is never entered on a load error.
func Load(raw RawLump) (*Map, error) {
	if len(raw.Vertices) == 0 {
		return nil, errors.New("mapdata: load failed: zero vertices")
	}
	if err := validateIndices(raw); err != nil {
		return nil, errors.Wrap(err, "mapdata: load failed")
	}

	m := &Map{
		Vertices:   raw.Vertices,
		Linedefs:   raw.Linedefs,
		Sidedefs:   raw.Sidedefs,
		Sectors:    raw.Sectors,
		Subsectors: raw.Subsectors,
		Segs:       raw.Segs,
		Nodes:      raw.Nodes,
		Things:     raw.Things,
		RootNode:   raw.RootNode,
	}

	attachSectorLines(m)

	if raw.BlockmapLines != nil {
		m.Blockmap = buildBlockmapFromLumps(raw)
	} else {
		m.Blockmap = deriveBlockmap(m)
	}

	m.Reject = deriveReject(raw, len(m.Sectors))

	return m, nil
}

func validateIndices(raw RawLump) error {
	nv := len(raw.Vertices)
	for i, ld := range raw.Linedefs {
		if ld.V1 < 0 || ld.V1 >= nv || ld.V2 < 0 || ld.V2 >= nv {
			return errors.Errorf("linedef %d references out-of-range vertex", i)
		}
		if ld.SideFront < 0 || ld.SideFront >= len(raw.Sidedefs) {
			return errors.Errorf("linedef %d has invalid front sidedef %d", i, ld.SideFront)
		}
		if ld.TwoSided() && (ld.SideBack < 0 || ld.SideBack >= len(raw.Sidedefs)) {
			return errors.Errorf("linedef %d flagged two-sided but has invalid back sidedef %d", i, ld.SideBack)
		}
	}
	for i, sd := range raw.Sidedefs {
		if sd.Sector < 0 || sd.Sector >= len(raw.Sectors) {
			return errors.Errorf("sidedef %d references out-of-range sector %d", i, sd.Sector)
		}
	}
	for i, ss := range raw.Subsectors {
		if ss.Sector < 0 || ss.Sector >= len(raw.Sectors) {
			return errors.Errorf("subsector %d references out-of-range sector %d", i, ss.Sector)
		}
	}
	return nil
}

// attachSectorLines populates Sector.LineIndices from the sidedef->sector
// back-reference, used by neighbor-height queries and crush/damage scans.
func attachSectorLines(m *Map) {
	for i, ld := range m.Linedefs {
		front := m.Sidedefs[ld.SideFront].Sector
		m.Sectors[front].LineIndices = append(m.Sectors[front].LineIndices, i)
		if ld.TwoSided() {
			back := m.Sidedefs[ld.SideBack].Sector
			if back != front {
				m.Sectors[back].LineIndices = append(m.Sectors[back].LineIndices, i)
			}
		}
	}
}

// buildBlockmapFromLumps honors the loader's own authored cell membership
// (spec §6 "blockmap header + lump") instead of re-deriving it: each
// raw.BlockmapLines[cellIdx] is the exact line list the on-disk blockmap
// lump assigns to that cell, in row-major, OriginY-first order.
func buildBlockmapFromLumps(raw RawLump) *Blockmap {
	bm := NewBlockmap(raw.BlockmapOriginX, raw.BlockmapOriginY, raw.BlockmapWidth, raw.BlockmapHeight)
	for cellIdx, lines := range raw.BlockmapLines {
		y := cellIdx / raw.BlockmapWidth
		x := cellIdx % raw.BlockmapWidth
		bm.SetCell(x, y, lines)
	}
	return bm
}

// deriveBlockmap builds a blockmap from scratch when the loader did not
// supply one, covering the map's full vertex extent.
func deriveBlockmap(m *Map) *Blockmap {
	minX, minY := m.Vertices[0].X, m.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range m.Vertices {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	width := (maxX-minX).ToInt()/BlockSize + 2
	height := (maxY-minY).ToInt()/BlockSize + 2
	bm := NewBlockmap(minX-geom.FromInt(BlockSize/2), minY-geom.FromInt(BlockSize/2), width, height)
	for i, ld := range m.Linedefs {
		bm.AddLine(i, ld.BBox(m.Vertices))
	}
	return bm
}

func deriveReject(raw RawLump, numSectors int) *Reject {
	r := NewReject(numSectors)
	if len(raw.Reject) == 0 {
		return r // all-zero: fast reject disabled, every check_sight falls through to the real trace
	}
	rowBytes := (numSectors + 7) / 8
	for a := 0; a < numSectors; a++ {
		for b := 0; b < numSectors; b++ {
			byteIdx := a*rowBytes + b/8
			if byteIdx >= len(raw.Reject) {
				continue
			}
			if raw.Reject[byteIdx]&(1<<uint(b%8)) != 0 {
				r.setOne(a, b)
			}
		}
	}
	return r
}
