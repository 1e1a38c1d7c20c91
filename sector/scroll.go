package sector

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
)

// Scroll is a scroll-family thinker accumulating a per-tic texture offset
// delta for one linedef into the Manager's OffsetTable (spec §4.6 "Scroll
// thinkers (texture offset scrolling)"). It has no owning sector — a
// scroller lives for as long as the line exists, never competing for the
// one-thinker-per-sector slot — so SectorIdx returns -1 and it is never
// installed into Sector.ActiveCeiling/ActiveFloor.
type Scroll struct {
	line    int
	delta   geom.Vec2
	offsets *OffsetTable
}

func NewScroll(line int, delta geom.Vec2, offsets *OffsetTable) *Scroll {
	return &Scroll{line: line, delta: delta, offsets: offsets}
}

func (s *Scroll) Family() Family { return FamilyScroll }
func (s *Scroll) SectorIdx() int { return -1 }

func (s *Scroll) Tick(w *engine.World) bool {
	s.offsets.add(s.line, s.delta)
	return true
}
