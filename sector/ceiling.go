package sector

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

var ceilingSpeed geom.Fixed = 1 << 16
const crushDamage = 10

// SetCeilingSpeed lets internal/config override the default ceiling-mover
// speed at level load time.
func SetCeilingSpeed(v geom.Fixed) { ceilingSpeed = v }

// CeilingKind selects a one-shot move to a computed target, or a
// perpetual up/down crusher (spec §4.6 "crushing ceilings damage mobjs
// and slow on contact").
type CeilingKind int

const (
	CeilingLowerToFloor CeilingKind = iota
	CeilingRaiseToHighest
	CeilingPerpetualCrush
)

// CeilingMover is a ceiling-family thinker. Perpetual crushers reverse at
// both stops instead of finishing; this implementation does not model the
// original's slow-down-on-contact (see DESIGN.md), it simply re-applies
// crush damage to every mobj still in contact each tic.
type CeilingMover struct {
	sectorIdx int
	kind      CeilingKind
	low, high geom.Fixed
	speed     geom.Fixed
	goingUp   bool
	crush     bool
}

func NewCeilingMover(w *engine.World, sectorIdx int, kind CeilingKind) *CeilingMover {
	s := &w.Map.Sectors[sectorIdx]
	c := &CeilingMover{
		sectorIdx: sectorIdx,
		kind:      kind,
		speed:     ceilingSpeed,
	}
	switch kind {
	case CeilingLowerToFloor:
		c.low = s.FloorHeight
		c.high = s.CeilingHeight
		c.goingUp = false
	case CeilingRaiseToHighest:
		c.low = s.CeilingHeight
		c.high = highestAdjacentCeiling(w, sectorIdx)
		c.goingUp = true
	case CeilingPerpetualCrush:
		c.low = s.FloorHeight + (8 << 16)
		c.high = s.CeilingHeight
		c.goingUp = false
		c.crush = true
	}
	return c
}

func (c *CeilingMover) Family() Family { return FamilyCeiling }
func (c *CeilingMover) SectorIdx() int { return c.sectorIdx }

func (c *CeilingMover) Tick(w *engine.World) bool {
	s := &w.Map.Sectors[c.sectorIdx]
	if c.crush {
		crushMobjsInSector(w, c.sectorIdx, crushDamage)
	}
	if c.goingUp {
		s.CeilingHeight += c.speed
		if s.CeilingHeight < c.high {
			return true
		}
		s.CeilingHeight = c.high
	} else {
		s.CeilingHeight -= c.speed
		if s.CeilingHeight > c.low {
			return true
		}
		s.CeilingHeight = c.low
	}
	if c.kind == CeilingPerpetualCrush {
		c.goingUp = !c.goingUp
		return true
	}
	return false
}

// crushMobjsInSector applies crush damage to every shootable mobj in
// sectorIdx whose top currently touches or exceeds the ceiling (spec
// §4.6 "crushing ceilings damage mobjs").
func crushMobjsInSector(w *engine.World, sectorIdx int, damage int) {
	s := &w.Map.Sectors[sectorIdx]
	for _, e := range w.SectorLink.All() {
		link, ok := w.SectorLink.Get(e)
		if !ok || link.Sector != sectorIdx {
			continue
		}
		flags, ok := w.FlagsC.Get(e)
		if !ok || !flags.Bits.Has(info.Shootable) {
			continue
		}
		pos, ok := w.Position.Get(e)
		if !ok {
			continue
		}
		ext, ok := w.Extent.Get(e)
		if !ok {
			continue
		}
		if pos.Z+ext.Height < s.CeilingHeight {
			continue
		}
		sim.Damage(w, e, core.NoEntity, core.NoEntity, damage)
	}
}
