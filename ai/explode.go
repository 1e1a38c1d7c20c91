package ai

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// blastRadius is how far spec §4.4 A_Explode/A_BarrelExplode's splash
// damage reaches.
const blastRadius = geom.Fixed(128 << 16)

// blastDamage is the splash damage dealt at zero distance; damage falls
// off linearly to 0 at blastRadius, the same shape the teacher's
// retrieval pack has no equivalent of but spec §4.4 calls "radius damage,
// falling off with distance".
const blastDamage = 128

// radiusDamage implements spec §4.4's shared A_Explode/A_BarrelExplode
// body: every Shootable mobj within blastRadius of e takes damage scaled
// by 1 - distance/blastRadius, provided check_sight confirms it isn't
// behind a wall from the blast. Damage is attributed to e's Refs.Target
// (the "bombsource" - whoever last damaged e, e.g. the player who fired
// the rocket or chain-reacted a neighboring barrel) rather than to e
// itself: a barrel's splash would otherwise be infighting-suppressed by
// sim.Damage whenever it catches a same-species neighbor, and credit for
// a kill should land on the player even when it traveled through a chain
// of barrels.
func radiusDamage(w *engine.World, e core.Entity) {
	pos, ok := w.Position.Get(e)
	if !ok || w.Grid == nil {
		return
	}
	source := e
	if refs, ok := w.Refs.Get(e); ok && refs.Target.Valid() {
		source = refs.Target
	}
	origin := geom.Vec2{X: pos.X, Y: pos.Y}
	bbox := geom.BBoxFromCenter(origin, blastRadius)

	var victims []core.Entity
	w.Grid.ForEachInBBox(bbox, func(other core.Entity) bool {
		if other != e {
			victims = append(victims, other)
		}
		return true
	})

	for _, v := range victims {
		flags, ok := w.FlagsC.Get(v)
		if !ok || !flags.Bits.Has(info.Shootable) {
			continue
		}
		vpos, ok := w.Position.Get(v)
		if !ok {
			continue
		}
		d := geom.Distance(origin, geom.Vec2{X: vpos.X, Y: vpos.Y})
		if d >= blastRadius {
			continue
		}
		if !sim.CheckSight(w, e, v) {
			continue
		}
		falloff := geom.Unit - d.Div(blastRadius)
		dmg := geom.FromInt(blastDamage).Mul(falloff).ToInt()
		if dmg <= 0 {
			continue
		}
		sim.Damage(w, v, e, source, dmg)
	}
}

// Explode implements spec §4.4 A_Explode (rocket/plasma impact).
func Explode(w *engine.World, e core.Entity, _ info.StateID) {
	radiusDamage(w, e)
}

// BarrelExplode implements spec §4.4 A_BarrelExplode — physically the
// same splash as A_Explode, kept as its own dispatch entry since a barrel
// chain-reacting into its neighbors is a distinct spec §8 scenario
// ("barrel chain") from a rocket's direct impact.
func BarrelExplode(w *engine.World, e core.Entity, state info.StateID) {
	radiusDamage(w, e)
}
