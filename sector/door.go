package sector

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// doorGap is how far short of the lowest adjacent ceiling an opened door
// stops (spec §8 scenario 1: "lowest adjacent ceiling minus 4 world units").
const doorGap = 4 << 16

// doorWaitTics is how long a door sits fully open before auto-closing
// (spec §8 scenario 1: "after 150 tics").
const doorWaitTics = 150

var doorSpeed geom.Fixed = 2 << 16

func doorSpeedBlazing() geom.Fixed { return doorSpeed * 4 }

// SetDoorSpeed lets internal/config override the door travel speed at
// level load time.
func SetDoorSpeed(v geom.Fixed) { doorSpeed = v }

// DoorKind selects which of the fixed door behaviors a Door runs (spec
// §4.6 "type: open, close, open-wait-close, raise-with-delay, blazing").
type DoorKind int

const (
	DoorOpen DoorKind = iota
	DoorClose
	DoorRaise       // open-wait-close
	DoorBlazeRaise  // same as DoorRaise, at doorSpeedBlazing
)

type doorState int

const (
	doorOpening doorState = iota
	doorWaiting
	doorClosing
)

// Door is a ceiling-family thinker that drives a sector's ceiling between
// its closed height and the lowest adjacent ceiling (spec §4.6 "Doors").
type Door struct {
	sectorIdx   int
	kind        DoorKind
	state       doorState
	speed       geom.Fixed
	topHeight   geom.Fixed
	closeHeight geom.Fixed
	waitLeft    int
}

func NewDoor(w *engine.World, sectorIdx int, kind DoorKind) *Door {
	s := &w.Map.Sectors[sectorIdx]
	speed := doorSpeed
	if kind == DoorBlazeRaise {
		speed = doorSpeedBlazing()
	}
	d := &Door{
		sectorIdx:   sectorIdx,
		kind:        kind,
		speed:       speed,
		topHeight:   lowestAdjacentCeiling(w, sectorIdx) - doorGap,
		closeHeight: s.CeilingHeight,
	}
	if kind == DoorClose {
		d.state = doorClosing
		w.PushEvent(engine.EventSoundRequest, info.SfxDoorClose, core.NoEntity, w.Tic())
	} else {
		d.state = doorOpening
		w.PushEvent(engine.EventSoundRequest, info.SfxDoorOpen, core.NoEntity, w.Tic())
	}
	return d
}

// Retrigger implements spec §4.6 "re-triggering reverses direction or
// extends wait": hitting an already-raised door resets its open timer,
// hitting one mid-close reverses it back to opening.
func (d *Door) Retrigger(w *engine.World) {
	switch d.state {
	case doorWaiting:
		d.waitLeft = doorWaitTics
	case doorClosing:
		d.state = doorOpening
		w.PushEvent(engine.EventSoundRequest, info.SfxDoorOpen, core.NoEntity, w.Tic())
	}
}

func (d *Door) Family() Family { return FamilyCeiling }
func (d *Door) SectorIdx() int { return d.sectorIdx }

func (d *Door) Tick(w *engine.World) bool {
	s := &w.Map.Sectors[d.sectorIdx]
	switch d.state {
	case doorOpening:
		s.CeilingHeight += d.speed
		if s.CeilingHeight < d.topHeight {
			return true
		}
		s.CeilingHeight = d.topHeight
		if d.kind == DoorOpen {
			return false
		}
		d.state = doorWaiting
		d.waitLeft = doorWaitTics
		return true

	case doorWaiting:
		d.waitLeft--
		if d.waitLeft <= 0 {
			d.state = doorClosing
			w.PushEvent(engine.EventSoundRequest, info.SfxDoorClose, core.NoEntity, w.Tic())
		}
		return true

	case doorClosing:
		s.CeilingHeight -= d.speed
		if s.CeilingHeight > d.closeHeight {
			return true
		}
		s.CeilingHeight = d.closeHeight
		return false
	}
	return false
}
