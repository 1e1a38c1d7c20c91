package player

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// advancePSprite is package sim's SetState, generalized to run over a
// PSprite store instead of the Anim store — the weapon-view and
// gun-flash sprites are each their own small state machine (spec §4.5
// "a second state machine for the held weapon sprite") layered on top of
// the mobj's own, so they need their own chase-through-zero-tics advance
// rather than reusing sim.SetState directly.
func advancePSprite(w *engine.World, e core.Entity, store *engine.Store[component.PSprite], state info.StateID) bool {
	for {
		if state == info.S_NULL {
			store.Mutate(e, func(p *component.PSprite) {
				p.State = info.S_NULL
				p.TicsLeft = 0
			})
			return false
		}

		st := &info.States[state]
		store.Mutate(e, func(p *component.PSprite) {
			p.State = state
			p.TicsLeft = st.Tics
		})

		if st.Action != info.ActionNone {
			sim.Dispatch(w, e, st.Action, state)
			if !w.Alive(e) {
				return false
			}
			cur, ok := store.Get(e)
			if !ok || cur.State != state {
				return true
			}
		}

		if st.Tics != 0 {
			return true
		}
		state = st.NextState
	}
}

// SetWeaponState advances the weapon-body sprite (spec §4.5 ready/down/
// up/fire chain).
func SetWeaponState(w *engine.World, e core.Entity, state info.StateID) bool {
	return advancePSprite(w, e, w.WeaponView, state)
}

// SetFlashState advances the muzzle-flash overlay sprite (spec §4.5
// "Gunflash states animate the screen flash on top of the weapon sprite").
func SetFlashState(w *engine.World, e core.Entity, state info.StateID) bool {
	return advancePSprite(w, e, w.GunFlash, state)
}

func tickPSprite(w *engine.World, e core.Entity, store *engine.Store[component.PSprite], onNull func()) {
	cur, ok := store.Get(e)
	if !ok || cur.TicsLeft < 0 {
		return
	}
	if cur.TicsLeft > 0 {
		cur.TicsLeft--
		store.Mutate(e, func(p *component.PSprite) { p.TicsLeft = cur.TicsLeft })
		if cur.TicsLeft > 0 {
			return
		}
	}
	st := &info.States[cur.State]
	if st.NextState == info.S_NULL && onNull != nil {
		onNull()
	}
	advancePSprite(w, e, store, st.NextState)
}

// WeaponSystem ticks every player's weapon-view and gun-flash sprites
// once per tic (spec §4.8 step 2), the PlayerWeapon counterpart of
// sim.AnimSystem.
type WeaponSystem struct{ engine.SystemBase }

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{SystemBase: engine.NewSystemBase(15)}
}

func (s *WeaponSystem) Update(w *engine.World) {
	for _, e := range w.PlayerC.All() {
		if !w.Alive(e) {
			continue
		}
		tickPSprite(w, e, w.WeaponView, nil)
		tickPSprite(w, e, w.GunFlash, func() {
			w.PlayerC.Mutate(e, func(p *component.Player) { p.ExtraLight = 0 })
		})
	}
}
