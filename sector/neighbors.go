package sector

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
)

// adjacentSectors visits every sector on the other side of one of
// sectorIdx's bordering two-sided lines (mapdata.Sector.LineIndices),
// skipping a line whose "other side" is sectorIdx itself (a line can
// border the same sector on both sides in a degenerate map).
func adjacentSectors(w *engine.World, sectorIdx int, f func(other int)) {
	sec := &w.Map.Sectors[sectorIdx]
	for _, li := range sec.LineIndices {
		ld := &w.Map.Linedefs[li]
		if !ld.TwoSided() {
			continue
		}
		front := w.Map.Sidedefs[ld.SideFront].Sector
		back := w.Map.Sidedefs[ld.SideBack].Sector
		other := front
		if other == sectorIdx {
			other = back
		}
		if other == sectorIdx {
			continue
		}
		f(other)
	}
}

// lowestAdjacentCeiling, lowestAdjacentFloor and highestAdjacentFloor are
// already provided by mapdata.Map; only highestAdjacentCeiling and
// minAdjacentLight need the local adjacentSectors walk.
func lowestAdjacentCeiling(w *engine.World, sectorIdx int) geom.Fixed {
	return w.Map.LowestNeighborCeiling(sectorIdx)
}

func lowestAdjacentFloor(w *engine.World, sectorIdx int) geom.Fixed {
	return w.Map.LowestNeighborFloor(sectorIdx)
}

func highestAdjacentFloor(w *engine.World, sectorIdx int) geom.Fixed {
	return w.Map.HighestNeighborFloor(sectorIdx)
}

func highestAdjacentCeiling(w *engine.World, sectorIdx int) geom.Fixed {
	best, found := geom.Fixed(0), false
	adjacentSectors(w, sectorIdx, func(other int) {
		h := w.Map.Sectors[other].CeilingHeight
		if !found || h > best {
			best, found = h, true
		}
	})
	if !found {
		return w.Map.Sectors[sectorIdx].CeilingHeight
	}
	return best
}

func minAdjacentLight(w *engine.World, sectorIdx int) int {
	sec := &w.Map.Sectors[sectorIdx]
	best, found := sec.LightLevel, false
	adjacentSectors(w, sectorIdx, func(other int) {
		l := w.Map.Sectors[other].LightLevel
		if !found || l < best {
			best, found = l, true
		}
	})
	if !found {
		return 0
	}
	return best
}
