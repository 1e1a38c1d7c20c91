package sector

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/mapdata"
)

const strobeBrightTics = 5
const strobeSlowDarkTics = 35
const strobeFastDarkTics = 15

// LightKind is the runtime behavior a sector's SectorSpecial maps to
// (spec §4.6 "Light effects: blink/strobe/flicker/oscillate").
type LightKind int

const (
	LightBlinkRandom LightKind = iota // SectorLightBlink1
	LightStrobeSlow
	LightStrobeFast
	LightFlicker
	LightOscillate
)

// LightKindForSpecial maps a sector's static Special to the LightKind its
// Light thinker should run, or false if that special carries no light
// effect (e.g. damage-only or door-timer specials).
func LightKindForSpecial(sp mapdata.SectorSpecial) (LightKind, bool) {
	switch sp {
	case mapdata.SectorLightBlink1:
		return LightBlinkRandom, true
	case mapdata.SectorLightSlowStrobe, mapdata.SectorLightSlowStrobeSync:
		return LightStrobeSlow, true
	case mapdata.SectorLightFast, mapdata.SectorLightFastStrobeUnsync, mapdata.SectorLightFastStrobeSync:
		return LightStrobeFast, true
	case mapdata.SectorLightFlicker, mapdata.SectorDamage20Flicker:
		return LightFlicker, true
	case mapdata.SectorLightOscillate:
		return LightOscillate, true
	}
	return 0, false
}

// Light is an unbounded (FamilyLight) thinker moving a sector's light
// level between minLight (the darkest adjacent sector's level, 0 with no
// neighbors) and maxLight (the sector's own level at spawn). It never
// finishes on its own; Tick always returns true.
type Light struct {
	sectorIdx int
	kind      LightKind
	minLight  int
	maxLight  int
	dark      bool
	ticsLeft  int
}

func NewLight(w *engine.World, sectorIdx int, kind LightKind) *Light {
	s := &w.Map.Sectors[sectorIdx]
	l := &Light{
		sectorIdx: sectorIdx,
		kind:      kind,
		minLight:  minAdjacentLight(w, sectorIdx),
		maxLight:  s.LightLevel,
		dark:      false,
		ticsLeft:  1,
	}
	return l
}

func (l *Light) Family() Family { return FamilyLight }
func (l *Light) SectorIdx() int { return l.sectorIdx }

func (l *Light) Tick(w *engine.World) bool {
	s := &w.Map.Sectors[l.sectorIdx]
	l.ticsLeft--
	if l.ticsLeft > 0 {
		return true
	}

	switch l.kind {
	case LightBlinkRandom:
		l.dark = !l.dark
		if l.dark {
			s.LightLevel = l.minLight
			l.ticsLeft = 1 + w.Rand.Intn(64)
		} else {
			s.LightLevel = l.maxLight
			l.ticsLeft = 1 + w.Rand.Intn(32)
		}

	case LightStrobeSlow, LightStrobeFast:
		l.dark = !l.dark
		if l.dark {
			s.LightLevel = l.minLight
			if l.kind == LightStrobeFast {
				l.ticsLeft = strobeFastDarkTics
			} else {
				l.ticsLeft = strobeSlowDarkTics
			}
		} else {
			s.LightLevel = l.maxLight
			l.ticsLeft = strobeBrightTics
		}

	case LightFlicker:
		l.dark = !l.dark
		if l.dark {
			s.LightLevel = l.minLight
			l.ticsLeft = 1 + w.Rand.Intn(8)
		} else {
			s.LightLevel = l.maxLight
			l.ticsLeft = 1 + w.Rand.Intn(8)
		}

	case LightOscillate:
		if l.dark {
			s.LightLevel--
			if s.LightLevel <= l.minLight {
				s.LightLevel = l.minLight
				l.dark = false
			}
		} else {
			s.LightLevel++
			if s.LightLevel >= l.maxLight {
				s.LightLevel = l.maxLight
				l.dark = true
			}
		}
		l.ticsLeft = 1
	}
	return true
}
