// Package sim implements the mobj/thinker simulation (spec §4.2, §4.3):
// spawning, the state machine, damage, collision-validated movement, and
// the trace operations (path_trace, check_sight, autoaim) that sit above
// the map's blockmap.
package sim

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/mapdata"
)

// MobjGrid indexes live mobjs by the same blockmap cell addressing
// mapdata.Blockmap uses for lines, so try_move/path_trace can enumerate
// "every mobj candidate in this bbox" alongside line candidates (spec
// §4.1 iter_mobjs_in_bbox). Grounded on engine/spatial_grid.go's
// cell-grid shape, generalized from a fixed 15-per-cell dense array to
// an unbounded per-cell slice: a capped "soft clip" silently drops
// collision candidates, which spec §4.2's try_move (exhaustive bbox
// validation) cannot tolerate.
type MobjGrid struct {
	bm    *mapdata.Blockmap
	cells map[int][]core.Entity
}

func NewMobjGrid(bm *mapdata.Blockmap) *MobjGrid {
	return &MobjGrid{bm: bm, cells: make(map[int][]core.Entity)}
}

func (g *MobjGrid) cellKey(x, y int) int { return y*g.bm.Width + x }

func (g *MobjGrid) Add(e core.Entity, p geom.Vec2) {
	x, y, ok := g.bm.CellOf(p)
	if !ok {
		return
	}
	key := g.cellKey(x, y)
	g.cells[key] = append(g.cells[key], e)
}

func (g *MobjGrid) Remove(e core.Entity, p geom.Vec2) {
	x, y, ok := g.bm.CellOf(p)
	if !ok {
		return
	}
	key := g.cellKey(x, y)
	bucket := g.cells[key]
	for i, v := range bucket {
		if v == e {
			bucket[i] = bucket[len(bucket)-1]
			g.cells[key] = bucket[:len(bucket)-1]
			return
		}
	}
}

func (g *MobjGrid) Move(e core.Entity, oldP, newP geom.Vec2) {
	ox, oy, ook := g.bm.CellOf(oldP)
	nx, ny, nok := g.bm.CellOf(newP)
	if ook && nok && ox == nx && oy == ny {
		return
	}
	if ook {
		g.Remove(e, oldP)
	}
	if nok {
		g.Add(e, newP)
	}
}

// ForEachInBBox calls f for every mobj whose last-recorded cell overlaps
// bbox; f returns false to stop early (spec §4.1 iter_mobjs_in_bbox).
func (g *MobjGrid) ForEachInBBox(bbox geom.BBox, f func(core.Entity) bool) {
	minX, minY, _ := g.bm.CellOf(geom.Vec2{X: bbox.MinX, Y: bbox.MinY})
	maxX, maxY, _ := g.bm.CellOf(geom.Vec2{X: bbox.MaxX, Y: bbox.MaxY})

	seen := make(map[core.Entity]bool)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if cx < 0 || cy < 0 || cx >= g.bm.Width || cy >= g.bm.Height {
				continue
			}
			for _, e := range g.cells[g.cellKey(cx, cy)] {
				if seen[e] {
					continue
				}
				seen[e] = true
				if !f(e) {
					return
				}
			}
		}
	}
}
