package sim

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// GibThreshold is the damage-below-zero-health magnitude past which a
// kill transitions to XDeathState instead of DeathState (spec §4.3
// "damage exceeds the gib threshold, typically 1000"). A var so
// internal/config can override it per level.
var GibThreshold = 1000

// SetGibThreshold lets internal/config override GibThreshold at load time.
func SetGibThreshold(v int) { GibThreshold = v }

// thrustScale converts raw damage into a knockback momentum magnitude
// (spec §4.3 "applies thrust in the attacker's direction").
var thrustScale = geom.FromFloat(0.0625)

// Damage implements spec §4.3 damage: reduces target health, applies
// thrust, rolls pain chance, marks target/reactiontime so AI reacts, and
// on death selects xdeathstate (gib) or deathstate. An attacker of the
// same species as the target is ignored (infighting) unless the target is
// already engaged with someone other than that attacker.
func Damage(w *engine.World, target, inflictor, source core.Entity, amount int) {
	tFlags, ok := w.FlagsC.Get(target)
	if !ok || !tFlags.Bits.Has(info.Shootable) {
		return
	}
	tHealth, ok := w.HealthC.Get(target)
	if !ok || tHealth.HP <= 0 {
		return
	}

	if source.Valid() && source != target {
		tInfo, _ := w.Info.Get(target)
		sInfo, sok := w.Info.Get(source)
		if sok && sInfo.Type == tInfo.Type && tInfo.Type != info.MT_PLAYER {
			refs, _ := w.Refs.Get(target)
			if !refs.Target.Valid() || refs.Target == source {
				return // infighting: not already fighting someone else
			}
		}
	}

	tHealth.HP -= amount
	w.HealthC.Mutate(target, func(h *component.Health) { h.HP = tHealth.HP })

	if !tFlags.Bits.Has(info.NoClip) && inflictor.Valid() {
		if ip, ok := w.Position.Get(inflictor); ok {
			tp, _ := w.Position.Get(target)
			ang := geom.BetweenPoints(ip.X, ip.Y, tp.X, tp.Y)
			thrust := geom.FromInt(amount).Mul(thrustScale)
			dx, dy := ang.ToVertex()
			w.Momentum.Mutate(target, func(m *component.Momentum) {
				m.X += dx.Mul(thrust)
				m.Y += dy.Mul(thrust)
			})
		}
	}

	if source.Valid() {
		w.Refs.Mutate(target, func(r *component.Refs) { r.Attacker = source; r.Target = source })
	}
	w.AIState.Mutate(target, func(ai *component.AI) { ai.ReactionTime = 0; ai.Threshold = 100 })

	tInfo, _ := w.Info.Get(target)
	mi := &info.MobjInfos[tInfo.Type]

	if tHealth.HP <= 0 {
		w.FlagsC.Mutate(target, func(f *component.Flags) { f.Bits &^= info.Shootable | info.Solid })
		if tHealth.HP < -GibThreshold && mi.XDeathState != info.S_NULL {
			SetState(w, target, mi.XDeathState)
		} else {
			SetState(w, target, mi.DeathState)
		}
		w.PushEvent(engine.EventMobjDamaged, amount, target, w.Tic())
		return
	}

	if mi.PainState != info.S_NULL && mi.PainChance > 0 && w.Rand.Intn(256) < mi.PainChance {
		SetState(w, target, mi.PainState)
	}
	w.PushEvent(engine.EventMobjDamaged, amount, target, w.Tic())
}
