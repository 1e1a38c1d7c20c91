package ai

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// hitscan rolls a hitscan attack against e's target: a clear line of
// sight is required, damage is a flat dice roll, and a miss (no sight)
// does nothing — spec §4.4 A_PosAttack/A_SPosAttack/A_CPosAttack share
// this exact shape, differing only in shot count and per-shot damage.
func hitscan(w *engine.World, e core.Entity, shots int, damagePerShot func() int) {
	refs, ok := w.Refs.Get(e)
	if !ok || !refs.Target.Valid() || !w.Alive(refs.Target) {
		return
	}
	FaceTarget(w, e, 0)
	for i := 0; i < shots; i++ {
		if !sim.CheckSight(w, e, refs.Target) {
			continue
		}
		sim.Damage(w, refs.Target, e, e, damagePerShot())
	}
}

// PosAttack implements spec §4.4 A_PosAttack (zombieman pistol shot).
func PosAttack(w *engine.World, e core.Entity, _ info.StateID) {
	hitscan(w, e, 1, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// SPosAttack implements spec §4.4 A_SPosAttack (shotgun-zombie, three
// pellets per trigger pull).
func SPosAttack(w *engine.World, e core.Entity, _ info.StateID) {
	hitscan(w, e, 3, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// CPosAttack implements spec §4.4 A_CPosAttack (chaingunner, one round
// per call — the state chain itself loops the calls across tics).
func CPosAttack(w *engine.World, e core.Entity, _ info.StateID) {
	hitscan(w, e, 1, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// meleeOrMissile implements the shared shape of spec §4.4
// A_TroopAttack/A_SargAttack/A_HeadAttack: a melee swing if the target is
// in range and visible, otherwise (for mobjs with a MissileState) a
// projectile of missileType is launched toward it.
func meleeOrMissile(w *engine.World, e core.Entity, meleeDamage func() int, missileType info.MobjType, hasMissile bool) {
	refs, ok := w.Refs.Get(e)
	if !ok || !refs.Target.Valid() || !w.Alive(refs.Target) {
		return
	}
	FaceTarget(w, e, 0)
	if !sim.CheckSight(w, e, refs.Target) {
		return
	}
	pos, _ := w.Position.Get(e)
	tpos, _ := w.Position.Get(refs.Target)
	d := geom.Distance(geom.Vec2{X: pos.X, Y: pos.Y}, geom.Vec2{X: tpos.X, Y: tpos.Y})

	if d <= meleeRange {
		sim.Damage(w, refs.Target, e, e, meleeDamage())
		return
	}
	if !hasMissile {
		return
	}
	launchMissile(w, e, refs.Target, missileType)
}

// launchMissile spawns a missile-type mobj at e's position, aimed at
// target, with momentum set from the missile's own Speed (spec §4.4 "spawn
// a missile mobj toward the target").
func launchMissile(w *engine.World, e, target core.Entity, t info.MobjType) {
	pos, _ := w.Position.Get(e)
	tpos, _ := w.Position.Get(target)
	ext, _ := w.Extent.Get(e)

	mi := &info.MobjInfos[t]
	spawnZ := pos.Z + ext.Height/2 + geom.FromInt(8)
	m := sim.Spawn(w, t, pos.X, pos.Y, spawnZ)

	ang := geom.BetweenPoints(pos.X, pos.Y, tpos.X, tpos.Y)
	dx, dy := ang.ToVertex()
	dist := geom.Distance(geom.Vec2{X: pos.X, Y: pos.Y}, geom.Vec2{X: tpos.X, Y: tpos.Y})
	dz := geom.Fixed(0)
	if dist > 0 {
		dz = (tpos.Z - spawnZ).Mul(mi.Speed).Div(dist)
	}

	w.Facing.Mutate(m, func(f *component.Facing) { f.Angle = ang })
	w.Momentum.Mutate(m, func(mm *component.Momentum) {
		mm.X, mm.Y, mm.Z = dx.Mul(mi.Speed), dy.Mul(mi.Speed), dz
	})
	w.Refs.Mutate(m, func(r *component.Refs) { r.Target = target })
}

// TroopAttack implements spec §4.4 A_TroopAttack (imp).
func TroopAttack(w *engine.World, e core.Entity, _ info.StateID) {
	meleeOrMissile(w, e, func() int { return (w.Rand.Intn(8) + 1) * 3 }, info.MT_TROOPSHOT, true)
}

// SargAttack implements spec §4.4 A_SargAttack (melee-only; the pack has
// no ranged variant, so hasMissile is false).
func SargAttack(w *engine.World, e core.Entity, _ info.StateID) {
	meleeOrMissile(w, e, func() int { return (w.Rand.Intn(10) + 1) * 4 }, info.MT_TROOPSHOT, false)
}

// HeadAttack implements spec §4.4 A_HeadAttack, reusing the plasma bolt
// mobj type as this pack's representative flying-monster projectile.
func HeadAttack(w *engine.World, e core.Entity, _ info.StateID) {
	meleeOrMissile(w, e, func() int { return (w.Rand.Intn(6) + 1) * 10 }, info.MT_PLASMA, true)
}

// skullChargeSpeed is the lost soul's charge velocity (spec §8 scenario
// 4: "travels in a straight line at 20 world-units/tic") — its own fixed
// constant rather than derived from MobjInfo.Speed, the same way vanilla
// Doom's SKULLSPEED is independent of the skull's normal walk speed.
const skullChargeSpeed = geom.Fixed(20 << 16)

// SkullAttack implements spec §4.4 A_SkullAttack: a lost soul charges its
// target directly, setting momentum toward it at skullChargeSpeed rather
// than walking there tic by tic (spec §3 SkullFly flag: "moving under
// charge momentum, not normal thinker movement").
func SkullAttack(w *engine.World, e core.Entity, _ info.StateID) {
	refs, ok := w.Refs.Get(e)
	if !ok || !refs.Target.Valid() || !w.Alive(refs.Target) {
		return
	}
	FaceTarget(w, e, 0)

	pos, _ := w.Position.Get(e)
	tpos, _ := w.Position.Get(refs.Target)

	ang := geom.BetweenPoints(pos.X, pos.Y, tpos.X, tpos.Y)
	dx, dy := ang.ToVertex()
	dist := geom.Distance(geom.Vec2{X: pos.X, Y: pos.Y}, geom.Vec2{X: tpos.X, Y: tpos.Y})
	dz := geom.Fixed(0)
	if dist > 0 {
		dz = (tpos.Z - pos.Z).Mul(skullChargeSpeed).Div(dist)
	}
	w.Momentum.Mutate(e, func(m *component.Momentum) {
		m.X, m.Y, m.Z = dx.Mul(skullChargeSpeed), dy.Mul(skullChargeSpeed), dz
	})
}
