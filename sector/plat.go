package sector

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

var platSpeed geom.Fixed = 4 << 16
const platWaitTics = 105 // 3 seconds at 35Hz

// SetPlatSpeed lets internal/config override the default lift speed at
// level load time.
func SetPlatSpeed(v geom.Fixed) { platSpeed = v }

// PlatKind selects whether a Plat stops for good at the top (spec §4.6
// "Plats/lifts ... optional perpetual") or keeps cycling.
type PlatKind int

const (
	PlatDownWaitUp PlatKind = iota
	PlatPerpetual
)

type platState int

const (
	platMoving platState = iota
	platWaiting
)

// Plat is a floor-family thinker shuttling a sector's floor between its
// low and high stop, starting downward (spec §4.6 "Plats/lifts").
type Plat struct {
	sectorIdx int
	kind      PlatKind
	low, high geom.Fixed
	speed     geom.Fixed
	state     platState
	goingUp   bool
	waitLeft  int
}

func NewPlat(w *engine.World, sectorIdx int) *Plat {
	s := &w.Map.Sectors[sectorIdx]
	p := &Plat{
		sectorIdx: sectorIdx,
		kind:      PlatDownWaitUp,
		high:      s.FloorHeight,
		low:       lowestAdjacentFloor(w, sectorIdx),
		speed:     platSpeed,
		state:     platMoving,
		goingUp:   false,
	}
	w.PushEvent(engine.EventSoundRequest, info.SfxPlatStart, core.NoEntity, w.Tic())
	return p
}

func NewPerpetualPlat(w *engine.World, sectorIdx int) *Plat {
	p := NewPlat(w, sectorIdx)
	p.kind = PlatPerpetual
	return p
}

func (p *Plat) Family() Family { return FamilyFloor }
func (p *Plat) SectorIdx() int { return p.sectorIdx }

func (p *Plat) Tick(w *engine.World) bool {
	s := &w.Map.Sectors[p.sectorIdx]
	switch p.state {
	case platMoving:
		if p.goingUp {
			s.FloorHeight += p.speed
			if s.FloorHeight < p.high {
				return true
			}
			s.FloorHeight = p.high
		} else {
			s.FloorHeight -= p.speed
			if s.FloorHeight > p.low {
				return true
			}
			s.FloorHeight = p.low
		}
		w.PushEvent(engine.EventSoundRequest, info.SfxPlatStop, core.NoEntity, w.Tic())
		if p.kind == PlatDownWaitUp && p.goingUp {
			return false
		}
		p.state = platWaiting
		p.waitLeft = platWaitTics
		return true

	case platWaiting:
		p.waitLeft--
		if p.waitLeft > 0 {
			return true
		}
		p.goingUp = !p.goingUp
		p.state = platMoving
		w.PushEvent(engine.EventSoundRequest, info.SfxPlatStart, core.NoEntity, w.Tic())
		return true
	}
	return false
}
