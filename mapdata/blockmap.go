package mapdata

import "github.com/lixenwraith/doomcore/geom"

// BlockSize is the uniform grid cell size in world units, a fixed power of
// two per spec §3 "Blockmap". 128 matches the historical Doom blockmap and
// keeps the radius of any mobj (at most ~64 units) within a couple of cells.
const BlockSize = 128
const blockShift = 7 // log2(BlockSize)

// Blockmap is a uniform grid over the map indexing linedefs by cell (spec
// §3). Mobj indexing uses the same cell size but lives in package sim's
// MobjGrid, since mobjs move every tic and the static Blockmap here is
// built once at load time and never mutated — mirroring the teacher's
// split between the static SpatialGrid shape and a per-entity store that
// updates it (engine/position_store.go's Add/Remove/Move idiom).
type Blockmap struct {
	OriginX, OriginY geom.Fixed
	Width, Height    int // in cells
	cells            [][]int
}

func NewBlockmap(originX, originY geom.Fixed, width, height int) *Blockmap {
	cells := make([][]int, width*height)
	return &Blockmap{OriginX: originX, OriginY: originY, Width: width, Height: height, cells: cells}
}

func (b *Blockmap) cellOf(p geom.Vec2) (x, y int, ok bool) {
	x = int((p.X - b.OriginX).ToInt()) >> blockShift
	y = int((p.Y - b.OriginY).ToInt()) >> blockShift
	return x, y, x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// CellOf exposes the cell a world-space point falls in, for callers
// outside this package that index their own per-cell data alongside the
// blockmap's line cells (package sim's MobjGrid).
func (b *Blockmap) CellOf(p geom.Vec2) (x, y int, ok bool) { return b.cellOf(p) }

func (b *Blockmap) index(x, y int) int { return y*b.Width + x }

// AddLine inserts a linedef index into every cell its bbox spans.
func (b *Blockmap) AddLine(lineIdx int, bbox geom.BBox) {
	minX, minY, ok1 := b.cellOf(geom.Vec2{X: bbox.MinX, Y: bbox.MinY})
	maxX, maxY, ok2 := b.cellOf(geom.Vec2{X: bbox.MaxX, Y: bbox.MaxY})
	if !ok1 {
		minX = clamp(minX, 0, b.Width-1)
		minY = clamp(minY, 0, b.Height-1)
	}
	if !ok2 {
		maxX = clamp(maxX, 0, b.Width-1)
		maxY = clamp(maxY, 0, b.Height-1)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			idx := b.index(x, y)
			b.cells[idx] = append(b.cells[idx], lineIdx)
		}
	}
}

// SetCell replaces cell (x, y)'s line list outright, for a caller that
// already knows the authored per-cell membership (Load's lump path)
// rather than one deriving it from bboxes (AddLine).
func (b *Blockmap) SetCell(x, y int, lines []int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.cells[b.index(x, y)] = lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ForEachLineInBBox calls f for every linedef index registered in a cell
// overlapping bbox. May call f more than once for the same line (callers
// needing uniqueness wrap with a seen-set, as IterLinesInBBox does).
func (b *Blockmap) ForEachLineInBBox(bbox geom.BBox, f func(lineIdx int) bool) {
	minX, minY, _ := b.cellOf(geom.Vec2{X: bbox.MinX, Y: bbox.MinY})
	maxX, maxY, _ := b.cellOf(geom.Vec2{X: bbox.MaxX, Y: bbox.MaxY})
	minX, minY = clamp(minX, 0, b.Width-1), clamp(minY, 0, b.Height-1)
	maxX, maxY = clamp(maxX, 0, b.Width-1), clamp(maxY, 0, b.Height-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for _, lineIdx := range b.cells[b.index(x, y)] {
				if !f(lineIdx) {
					return
				}
			}
		}
	}
}

// CellsAlong returns the sequence of (x,y) cell coordinates a ray from a
// to b passes through, in order — a DDA walk used by path_trace to avoid
// scanning the whole blockmap for long sight/hitscan rays.
func (b *Blockmap) CellsAlong(a, bPt geom.Vec2) []struct{ X, Y int } {
	x0, y0, _ := b.cellOf(a)
	x1, y1, _ := b.cellOf(bPt)
	var out []struct{ X, Y int }
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		out = append(out, struct{ X, Y int }{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
