package ai

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
)

// Scream implements spec §4.4 A_Scream: plays the mobj's death sound.
func Scream(w *engine.World, e core.Entity, _ info.StateID) {
	tInfo, ok := w.Info.Get(e)
	if !ok {
		return
	}
	mi := &info.MobjInfos[tInfo.Type]
	w.PushEvent(engine.EventSoundRequest, mi.DeathSound, e, w.Tic())
}

// XScream implements spec §4.4 A_XScream: the gib variant plays the same
// death sound (the pack carries no distinct gib sound set).
func XScream(w *engine.World, e core.Entity, state info.StateID) {
	Scream(w, e, state)
}

// Pain implements spec §4.4 A_Pain: plays the mobj's pain sound.
func Pain(w *engine.World, e core.Entity, _ info.StateID) {
	tInfo, ok := w.Info.Get(e)
	if !ok {
		return
	}
	mi := &info.MobjInfos[tInfo.Type]
	w.PushEvent(engine.EventSoundRequest, mi.PainSound, e, w.Tic())
}

// corpseShrink is how much A_Fall reduces a corpse's collision height by,
// so dead mobjs stack and settle into floor clutter instead of still
// blocking movement at full standing height.
const corpseShrink = 4

// Fall implements spec §4.4 A_Fall: shrinks the corpse's collision height
// (Damage already cleared Solid/Shootable on death).
func Fall(w *engine.World, e core.Entity, _ info.StateID) {
	w.Extent.Mutate(e, func(ext *component.Extent) {
		ext.Height /= corpseShrink
	})
}

// ActiveSound implements spec §4.4 A_ActiveSound: an occasional ambient
// noise while a monster is active (rolled 1-in-3 so it doesn't fire every
// single state tic it's attached to).
func ActiveSound(w *engine.World, e core.Entity, _ info.StateID) {
	if w.Rand.Intn(3) != 0 {
		return
	}
	tInfo, ok := w.Info.Get(e)
	if !ok {
		return
	}
	mi := &info.MobjInfos[tInfo.Type]
	w.PushEvent(engine.EventSoundRequest, mi.ActiveSound, e, w.Tic())
}
