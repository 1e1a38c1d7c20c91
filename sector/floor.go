package sector

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/mapdata"
)

var floorSpeed geom.Fixed = 1 << 16

// SetFloorSpeed lets internal/config override the default floor-mover
// speed at level load time.
func SetFloorSpeed(v geom.Fixed) { floorSpeed = v }

// FloorTargetKind names the spec §4.6 "lowest/highest neighbor, shortest
// texture, specific delta" family of floor-move targets.
type FloorTargetKind int

const (
	FloorToLowestAdjacent FloorTargetKind = iota
	FloorToHighestAdjacent
	FloorByDelta
)

// FloorMover is a floor-family thinker driving a sector's floor toward a
// computed or fixed target height, optionally changing the floor texture
// and sector special once it arrives (spec §4.6 "Floors/ceilings").
type FloorMover struct {
	sectorIdx  int
	target     geom.Fixed
	speed      geom.Fixed
	crush      bool
	newFloorPic  int // -1 = no change
	newSpecial   mapdata.SectorSpecial
	changeOnStop bool
}

func NewFloorMover(w *engine.World, sectorIdx int, kind FloorTargetKind, delta geom.Fixed, speed geom.Fixed) *FloorMover {
	s := &w.Map.Sectors[sectorIdx]
	f := &FloorMover{
		sectorIdx:  sectorIdx,
		speed:      speed,
		newFloorPic: -1,
	}
	switch kind {
	case FloorToLowestAdjacent:
		f.target = lowestAdjacentFloor(w, sectorIdx)
	case FloorToHighestAdjacent:
		f.target = highestAdjacentFloor(w, sectorIdx)
	case FloorByDelta:
		f.target = s.FloorHeight + delta
	}
	return f
}

// WithTextureChange arms a floorpic/special swap that takes effect once
// the floor reaches target (spec §4.6 "floors may change floorpic/sector
// special on arrival").
func (f *FloorMover) WithTextureChange(floorPic int, special mapdata.SectorSpecial) *FloorMover {
	f.newFloorPic = floorPic
	f.newSpecial = special
	f.changeOnStop = true
	return f
}

func (f *FloorMover) Family() Family { return FamilyFloor }
func (f *FloorMover) SectorIdx() int { return f.sectorIdx }

func (f *FloorMover) Tick(w *engine.World) bool {
	s := &w.Map.Sectors[f.sectorIdx]
	if s.FloorHeight < f.target {
		s.FloorHeight += f.speed
		if s.FloorHeight > f.target {
			s.FloorHeight = f.target
		}
	} else if s.FloorHeight > f.target {
		s.FloorHeight -= f.speed
		if s.FloorHeight < f.target {
			s.FloorHeight = f.target
		}
	}
	if s.FloorHeight != f.target {
		return true
	}
	if f.changeOnStop {
		if f.newFloorPic >= 0 {
			s.FloorPic = f.newFloorPic
		}
		s.Special = f.newSpecial
	}
	return false
}
