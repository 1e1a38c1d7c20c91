package sim

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
)

// ActionFunc is the shape every state action callback takes (spec §4.2
// set_state, §4.4 AI actions, §4.5 weapon state machine): the world, the
// mobj the state belongs to, and the StateID that triggered it (a
// callback reads Misc1/Misc2 off info.States[state] itself when it needs
// per-state parameters, e.g. A_Light1's light-add amount).
type ActionFunc func(w *engine.World, e core.Entity, state info.StateID)

// dispatch is the process-wide table ActionID resolves through, populated
// externally by package ai (Actor arms) and package player (PlayerWeapon
// arms) so this package never imports either — the same import-cycle
// avoidance the ActionID tagged enum exists for (info/action.go).
var dispatch = make(map[info.ActionID]ActionFunc)

// RegisterActor installs a callback for an Actor-kind ActionID (package ai).
func RegisterActor(id info.ActionID, fn ActionFunc) {
	if id.Kind() != info.ActionKindActor {
		panic("sim: RegisterActor given a non-actor ActionID")
	}
	dispatch[id] = fn
}

// RegisterPlayerWeapon installs a callback for a PlayerWeapon-kind
// ActionID (package player).
func RegisterPlayerWeapon(id info.ActionID, fn ActionFunc) {
	if id.Kind() != info.ActionKindPlayerWeapon {
		panic("sim: RegisterPlayerWeapon given a non-weapon ActionID")
	}
	dispatch[id] = fn
}

// Dispatch invokes the callback registered for id. A no-op for
// ActionNone or an ActionID nothing has registered yet.
func Dispatch(w *engine.World, e core.Entity, id info.ActionID, state info.StateID) {
	if fn, ok := dispatch[id]; ok {
		fn(w, e, state)
	}
}
