package sector

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
	"github.com/lixenwraith/doomcore/sim"
)

// LineSpecial enumerates the line-action opcodes this pack recognizes in
// Linedef.Special (spec §4.6 "Line specials ... map to these families").
// The numbering is this pack's own, not vanilla Doom's ldnum table.
type LineSpecial int

const (
	SpecialNone LineSpecial = iota
	SpecialDoorRaiseWalk
	SpecialDoorRaiseSwitch
	SpecialDoorOpenSwitch
	SpecialDoorCloseSwitch
	SpecialDoorRaiseFastSwitch
	SpecialPlatDownWaitUpWalk
	SpecialPlatDownWaitUpSwitch
	SpecialPlatPerpetualSwitch
	SpecialFloorLowerToLowestSwitch
	SpecialFloorRaiseToHighestWalk
	SpecialCeilingCrushSwitch
	SpecialTeleportWalk
)

type triggerKind int

const (
	triggerWalk triggerKind = iota
	triggerSwitch
)

type specialEntry struct {
	kind       triggerKind
	repeatable bool
}

// specialTable classifies each opcode's actuation (walk-over vs
// switch/use) and whether it may re-fire (spec §4.6 "walk, switch/use,
// gun, repeat variants"). Gun-type (hitscan/missile impact) actuation is
// out of scope: this pack's representative mobj set has no weapon whose
// impact needs to trigger a line, so no opcode here maps to it.
var specialTable = map[int]specialEntry{
	int(SpecialDoorRaiseWalk):            {triggerWalk, true},
	int(SpecialDoorRaiseSwitch):          {triggerSwitch, true},
	int(SpecialDoorOpenSwitch):           {triggerSwitch, false},
	int(SpecialDoorCloseSwitch):          {triggerSwitch, false},
	int(SpecialDoorRaiseFastSwitch):      {triggerSwitch, true},
	int(SpecialPlatDownWaitUpWalk):       {triggerWalk, true},
	int(SpecialPlatDownWaitUpSwitch):     {triggerSwitch, true},
	int(SpecialPlatPerpetualSwitch):      {triggerSwitch, false},
	int(SpecialFloorLowerToLowestSwitch): {triggerSwitch, false},
	int(SpecialFloorRaiseToHighestWalk):  {triggerWalk, true},
	int(SpecialCeilingCrushSwitch):       {triggerSwitch, false},
	int(SpecialTeleportWalk):             {triggerWalk, true},
}

const switchRevertTics = 35 // spec §4.6 "optionally revert after a delay"
const teleportDestDoomedNum = 14

// switchRevert is a scroll-family (unbounded, no owning sector) thinker
// that flips a switch's texture back after switchRevertTics.
type switchRevert struct {
	line     int
	ticsLeft int
}

func (s *switchRevert) Family() Family { return FamilyScroll }
func (s *switchRevert) SectorIdx() int { return -1 }

func (s *switchRevert) Tick(w *engine.World) bool {
	s.ticsLeft--
	if s.ticsLeft > 0 {
		return true
	}
	flipSwitchTexture(w, s.line)
	return false
}

// flipSwitchTexture toggles a switch's face texture between its "off"
// and "on" id. This pack has no SWITCHES-lump texture-pair table, so it
// assumes the simplified convention that a switch's two texture ids are
// adjacent (even = off, odd = on); see DESIGN.md.
func flipSwitchTexture(w *engine.World, lineIdx int) {
	ld := &w.Map.Linedefs[lineIdx]
	sd := &w.Map.Sidedefs[ld.SideFront]
	if sd.MidTex < 0 {
		return
	}
	if sd.MidTex%2 == 0 {
		sd.MidTex++
	} else {
		sd.MidTex--
	}
}

// spawnForSpecial installs the thinker(s) an opcode implies into sectorIdx,
// re-triggering an already-running door instead of refusing outright
// (spec §4.6 "re-triggering reverses direction or extends wait").
func spawnForSpecial(w *engine.World, mgr *Manager, sectorIdx int, special LineSpecial) bool {
	switch special {
	case SpecialDoorRaiseWalk, SpecialDoorRaiseSwitch, SpecialDoorRaiseFastSwitch:
		if t, ok := mgr.Lookup(w, sectorIdx, FamilyCeiling); ok {
			if d, ok := t.(*Door); ok {
				d.Retrigger(w)
				return true
			}
			return false
		}
		kind := DoorRaise
		if special == SpecialDoorRaiseFastSwitch {
			kind = DoorBlazeRaise
		}
		_, ok := mgr.Spawn(w, NewDoor(w, sectorIdx, kind))
		return ok

	case SpecialDoorOpenSwitch:
		_, ok := mgr.Spawn(w, NewDoor(w, sectorIdx, DoorOpen))
		return ok

	case SpecialDoorCloseSwitch:
		_, ok := mgr.Spawn(w, NewDoor(w, sectorIdx, DoorClose))
		return ok

	case SpecialPlatDownWaitUpWalk, SpecialPlatDownWaitUpSwitch:
		_, ok := mgr.Spawn(w, NewPlat(w, sectorIdx))
		return ok

	case SpecialPlatPerpetualSwitch:
		_, ok := mgr.Spawn(w, NewPerpetualPlat(w, sectorIdx))
		return ok

	case SpecialFloorLowerToLowestSwitch:
		_, ok := mgr.Spawn(w, NewFloorMover(w, sectorIdx, FloorToLowestAdjacent, 0, floorSpeed))
		return ok

	case SpecialFloorRaiseToHighestWalk:
		_, ok := mgr.Spawn(w, NewFloorMover(w, sectorIdx, FloorToHighestAdjacent, 0, floorSpeed))
		return ok

	case SpecialCeilingCrushSwitch:
		_, ok := mgr.Spawn(w, NewCeilingMover(w, sectorIdx, CeilingPerpetualCrush))
		return ok
	}
	return false
}

// TriggerHandler implements engine.EventHandler, consuming the generic
// line-crossing/use-trigger facts package sim reports and turning them
// into spawned sector thinkers, switch texture flips and teleports (spec
// §4.8 step 4 "process queued triggers").
type TriggerHandler struct {
	Mgr  *Manager
	used map[int]bool
}

func NewTriggerHandler(mgr *Manager) *TriggerHandler {
	return &TriggerHandler{Mgr: mgr, used: make(map[int]bool)}
}

func (h *TriggerHandler) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventLineCrossed, engine.EventSwitchUsed}
}

func (h *TriggerHandler) HandleEvent(w *engine.World, ev engine.GameEvent) {
	lineIdx, ok := ev.Payload.(int)
	if !ok {
		return
	}
	ld := &w.Map.Linedefs[lineIdx]
	entry, known := specialTable[ld.Special]
	if !known {
		return
	}
	isSwitchEvent := ev.Type == engine.EventSwitchUsed
	if (entry.kind == triggerSwitch) != isSwitchEvent {
		return
	}
	if h.used[lineIdx] {
		return
	}

	if LineSpecial(ld.Special) == SpecialTeleportWalk {
		h.teleport(w, ld, ev.Source)
		if !entry.repeatable {
			h.used[lineIdx] = true
		}
		return
	}

	spawned := false
	if ld.Tag != 0 {
		for secIdx := range w.Map.Sectors {
			if w.Map.Sectors[secIdx].Tag != ld.Tag {
				continue
			}
			if spawnForSpecial(w, h.Mgr, secIdx, LineSpecial(ld.Special)) {
				spawned = true
			}
		}
	}
	if !spawned {
		return
	}
	if entry.kind == triggerSwitch {
		flipSwitchTexture(w, lineIdx)
		h.Mgr.Spawn(w, &switchRevert{line: lineIdx, ticsLeft: switchRevertTics})
	}
	if !entry.repeatable {
		h.used[lineIdx] = true
	}
}

// teleport implements spec §4.6 "Teleporters" / §8 scenario 5: relocate e
// to the first MT_TELEPORTMAN-equivalent map Thing inside the tagged
// destination sector, spawning TFOG at both source and destination,
// zeroing momentum and facing the target's angle (sim.TeleportMove does
// the relocation itself; this only supplies the fog/sound side effects
// sim has no business knowing about).
func (h *TriggerHandler) teleport(w *engine.World, ld *mapdata.Linedef, e core.Entity) {
	if !e.Valid() || ld.Tag == 0 {
		return
	}
	destPos, destAngle, ok := findTeleportDestination(w, ld.Tag)
	if !ok {
		return
	}
	pos, ok := w.Position.Get(e)
	if !ok {
		return
	}
	sim.Spawn(w, info.MT_TFOG, pos.X, pos.Y, pos.Z)
	if !sim.TeleportMove(w, e, destPos, destAngle) {
		return
	}
	sim.Spawn(w, info.MT_TFOG, destPos.X, destPos.Y, pos.Z)
	w.PushEvent(engine.EventSoundRequest, info.SfxTeleport, e, w.Tic())
}

func findTeleportDestination(w *engine.World, tag int) (geom.Vec2, geom.Angle, bool) {
	for _, t := range w.Map.Things {
		if t.DoomedNum != teleportDestDoomedNum {
			continue
		}
		p := geom.Vec2{X: t.X, Y: t.Y}
		sub := w.Map.PointInSubsector(p)
		if w.Map.Sectors[w.Map.Subsectors[sub].Sector].Tag == tag {
			return p, t.Angle, true
		}
	}
	return geom.Vec2{}, 0, false
}
