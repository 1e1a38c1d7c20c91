package ai

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// sightRange is how far a dormant monster scans for a player (spec §4.4
// A_Look "acquires a target"); beyond this, check_sight is never even
// attempted.
const sightRange = geom.Fixed(1000 << 16)

// meleeRange is how close a target must be for a melee attack to connect
// (spec §4.4 A_*Attack).
const meleeRange = geom.Fixed(64 << 16)

// Look implements spec §4.4 A_Look: scans for the nearest visible player,
// and on finding one sets Refs.Target and re-enters the mobj's SeeState
// (a fresh SetState call, not a fall-through — the see-state's own tics
// and sprite take over from here).
func Look(w *engine.World, e core.Entity, _ info.StateID) {
	pos, ok := w.Position.Get(e)
	if !ok {
		return
	}

	var target core.Entity
	best := sightRange
	for _, p := range w.PlayerC.All() {
		if !w.Alive(p) || p == e {
			continue
		}
		ppos, ok := w.Position.Get(p)
		if !ok {
			continue
		}
		d := geom.Distance(geom.Vec2{X: pos.X, Y: pos.Y}, geom.Vec2{X: ppos.X, Y: ppos.Y})
		if d >= best {
			continue
		}
		if !sim.CheckSight(w, e, p) {
			continue
		}
		target, best = p, d
	}
	if !target.Valid() {
		return
	}

	tInfo, _ := w.Info.Get(e)
	mi := &info.MobjInfos[tInfo.Type]

	w.Refs.Mutate(e, func(r *component.Refs) { r.Target = target })
	w.AIState.Mutate(e, func(ai *component.AI) { ai.ReactionTime = mi.ReactionTime })
	w.PushEvent(engine.EventSoundRequest, mi.SeeSound, e, w.Tic())
	if mi.SeeState != info.S_NULL {
		sim.SetState(w, e, mi.SeeState)
	}
}

// FaceTarget implements spec §4.4 A_FaceTarget: turns e to face Refs.Target.
func FaceTarget(w *engine.World, e core.Entity, _ info.StateID) {
	refs, ok := w.Refs.Get(e)
	if !ok || !refs.Target.Valid() || !w.Alive(refs.Target) {
		return
	}
	pos, _ := w.Position.Get(e)
	tpos, ok := w.Position.Get(refs.Target)
	if !ok {
		return
	}
	ang := geom.BetweenPoints(pos.X, pos.Y, tpos.X, tpos.Y)
	w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = ang })
}

// Chase implements a simplified spec §4.4 A_Chase: counts down reaction
// time, drops back to the spawn (Look) state if the target is gone,
// attacks once in range, and otherwise tries one step toward the target
// through try_move; a blocked step leaves the mobj where it is. Threshold
// is not read or decremented here.
func Chase(w *engine.World, e core.Entity, state info.StateID) {
	ai, ok := w.AIState.Get(e)
	if !ok {
		return
	}
	if ai.ReactionTime > 0 {
		w.AIState.Mutate(e, func(a *component.AI) { a.ReactionTime-- })
		return
	}

	refs, ok := w.Refs.Get(e)
	if !ok || !refs.Target.Valid() || !w.Alive(refs.Target) {
		tInfo, _ := w.Info.Get(e)
		mi := &info.MobjInfos[tInfo.Type]
		if mi.SpawnState != info.S_NULL {
			sim.SetState(w, e, mi.SpawnState)
		}
		return
	}

	pos, _ := w.Position.Get(e)
	tpos, _ := w.Position.Get(refs.Target)
	d := geom.Distance(geom.Vec2{X: pos.X, Y: pos.Y}, geom.Vec2{X: tpos.X, Y: tpos.Y})

	tInfo, _ := w.Info.Get(e)
	mi := &info.MobjInfos[tInfo.Type]

	if d <= meleeRange && mi.MeleeState != info.S_NULL {
		sim.SetState(w, e, mi.MeleeState)
		return
	}
	if mi.MissileState != info.S_NULL && sim.CheckSight(w, e, refs.Target) && w.Rand.Intn(256) < 100 {
		sim.SetState(w, e, mi.MissileState)
		return
	}

	FaceTarget(w, e, state)
	facing, _ := w.Facing.Get(e)
	dx, dy := facing.Angle.ToVertex()
	step := geom.Vec2{X: pos.X, Y: pos.Y}.Add(geom.Vec2{X: dx.Mul(mi.Speed), Y: dy.Mul(mi.Speed)})
	sim.TryMove(w, e, step)
}
