package sim

import "github.com/lixenwraith/doomcore/engine"

// PhysicsSystem runs xy_movement/z_movement for every mobj holding
// momentum, once per tic (spec §4.8 step 2 "mobj thinkers"). It makes no
// assumption about what put momentum there — gravity, player input,
// thrust from damage, and missile launch all just mutate the Momentum
// store; this system is the only place that integrates it.
type PhysicsSystem struct{ engine.SystemBase }

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{SystemBase: engine.NewSystemBase(10)}
}

func (s *PhysicsSystem) Update(w *engine.World) {
	for _, e := range w.Position.All() {
		if !w.Alive(e) {
			continue
		}
		XYMovement(w, e)
		if w.Alive(e) {
			ZMovement(w, e)
		}
	}
}

// AnimSystem advances every mobj's state-machine tic countdown, chasing
// through zero-tic states and invoking action callbacks via set_state
// (spec §4.2 set_state, §4.8 step 2). Registered after PhysicsSystem so an
// action fired this tic (e.g. a melee hit) sees this tic's already-settled
// position rather than last tic's.
type AnimSystem struct{ engine.SystemBase }

func NewAnimSystem() *AnimSystem {
	return &AnimSystem{SystemBase: engine.NewSystemBase(20)}
}

func (s *AnimSystem) Update(w *engine.World) {
	for _, e := range w.Anim.All() {
		if !w.Alive(e) {
			continue
		}
		TickAnim(w, e)
	}
}

// Register installs PhysicsSystem and AnimSystem as mobj-phase systems —
// the minimum every level needs on top of InitLevel before its first tic.
func Register(w *engine.World) {
	w.AddMobjSystem(NewPhysicsSystem())
	w.AddMobjSystem(NewAnimSystem())
}
