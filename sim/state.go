package sim

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
)

// SetState implements spec §4.2 set_state: transition e to state, run the
// state's action callback (which may call SetState again, recursively —
// e.g. A_Pain re-entering its own state's chain), and chase through any
// run of tics==0 states immediately rather than waiting for a tic to pass.
// Reaching S_NULL queues the mobj for end-of-tic removal (spec §3
// invariant (e)) and returns false; any other terminal state returns true.
func SetState(w *engine.World, e core.Entity, state info.StateID) bool {
	for {
		if state == info.S_NULL {
			w.Anim.Mutate(e, func(a *component.Anim) {
				a.State = info.S_NULL
				a.TicsLeft = 0
			})
			w.QueueRemoval(e)
			return false
		}

		st := &info.States[state]
		w.Anim.Mutate(e, func(a *component.Anim) {
			a.State = state
			a.TicsLeft = st.Tics
		})

		if st.Action != info.ActionNone {
			Dispatch(w, e, st.Action, state)
			if !w.Alive(e) {
				return false
			}
			// The callback may have re-entered SetState on this same
			// entity (A_Pain, A_Look's target-acquired transition); if the
			// recorded state no longer matches what we just set, the
			// chain below belongs to that inner call, not this one.
			anim, ok := w.Anim.Get(e)
			if !ok || anim.State != state {
				return true
			}
		}

		if st.Tics != 0 {
			return true
		}
		state = st.NextState
	}
}

// TickAnim decrements e's TicsLeft by one and advances to NextState once
// it reaches zero; a permanent state (TicsLeft < 0, e.g. S_PLAY) never
// advances on its own. This is the per-tic half of spec §4.2's "tics
// countdown"; SetState is the transition half.
func TickAnim(w *engine.World, e core.Entity) {
	anim, ok := w.Anim.Get(e)
	if !ok || anim.TicsLeft < 0 {
		return
	}
	if anim.TicsLeft > 0 {
		anim.TicsLeft--
		w.Anim.Mutate(e, func(a *component.Anim) { a.TicsLeft = anim.TicsLeft })
		if anim.TicsLeft > 0 {
			return
		}
	}
	st := &info.States[anim.State]
	SetState(w, e, st.NextState)
}
