package ai

import (
	"testing"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// tickAll drives every entity's animation one tic forward via
// sim.TickAnim, the same per-tic half AnimSystem.Update runs, without
// needing a full Orchestrator (no sectors/input/events involved here).
func tickAll(w *engine.World, entities ...core.Entity) {
	for _, e := range entities {
		if w.Alive(e) {
			sim.TickAnim(w, e)
		}
	}
}

// TestBarrelChainReactionReachesExplodeStateWithinEightTics exercises
// spec §8 scenario 3: a rocket hit on the first of three barrels takes
// it to the state whose action fires the splash (S_BEXP3,
// ActionBarrelExplode) within 8 tics of its death, and that splash
// damages the other two barrels and a shootable mobj within radius 128,
// passing the bombsource on to the barrels. Only the first barrel's
// state is checked; the other two are checked for damage taken.
func TestBarrelChainReactionReachesExplodeStateWithinEightTics(t *testing.T) {
	w := openRoomWorld(t)
	player := sim.SpawnPlayer(w, geom.FromInt(-300), 0, 0, 0)

	barrel1 := sim.Spawn(w, info.MT_BARREL, geom.FromInt(0), 0, 0)
	barrel2 := sim.Spawn(w, info.MT_BARREL, geom.FromInt(40), 0, 0)
	barrel3 := sim.Spawn(w, info.MT_BARREL, geom.FromInt(80), 0, 0)
	victim := sim.Spawn(w, info.MT_TROOP, geom.FromInt(40), geom.FromInt(20), 0)

	hBefore2, _ := w.HealthC.Get(barrel2)
	hBefore3, _ := w.HealthC.Get(barrel3)
	hBeforeVictim, _ := w.HealthC.Get(victim)

	// A direct rocket hit: the player is the bombsource, the same as
	// launchPlayerMissile setting Refs.Target on a fired projectile.
	sim.Damage(w, barrel1, player, player, 20)

	anim1, _ := w.Anim.Get(barrel1)
	if anim1.State != info.S_BEXP {
		t.Fatalf("barrel1 Anim.State = %v, want S_BEXP immediately on death", anim1.State)
	}

	for tic := 0; tic < 8; tic++ {
		tickAll(w, barrel1, barrel2, barrel3)
	}

	anim1, _ = w.Anim.Get(barrel1)
	if anim1.State != info.S_BEXP3 {
		t.Fatalf("after 8 tics barrel1 Anim.State = %v, want S_BEXP3 (ActionBarrelExplode fired)", anim1.State)
	}

	hAfter2, _ := w.HealthC.Get(barrel2)
	hAfter3, _ := w.HealthC.Get(barrel3)
	hAfterVictim, _ := w.HealthC.Get(victim)
	if hAfter2.HP >= hBefore2.HP {
		t.Fatalf("barrel2 HP = %d, want less than %d (caught in barrel1's splash)", hAfter2.HP, hBefore2.HP)
	}
	if hAfter3.HP >= hBefore3.HP {
		t.Fatalf("barrel3 HP = %d, want less than %d (caught in barrel1's splash)", hAfter3.HP, hBefore3.HP)
	}
	if hAfterVictim.HP >= hBeforeVictim.HP {
		t.Fatalf("victim HP = %d, want less than %d (within radius 128 of barrel1's blast)", hAfterVictim.HP, hBeforeVictim.HP)
	}

	refs2, _ := w.Refs.Get(barrel2)
	if refs2.Target != player {
		t.Fatalf("barrel2 Refs.Target = %v, want player (bombsource propagated through the chain)", refs2.Target)
	}
}

// TestSkullAttackTravelsStraightAndRevertsOnContact exercises spec §8
// scenario 4: a Lost Soul charging its missilestate attack moves in a
// straight line at its speed and reverts to seestate the instant it
// hits a solid, instead of detonating like an actual missile.
func TestSkullAttackTravelsStraightAndRevertsOnContact(t *testing.T) {
	w := openRoomWorld(t)
	player := sim.SpawnPlayer(w, geom.FromInt(300), 0, 0, 0)
	skull := sim.Spawn(w, info.MT_SKULL, 0, 0, 0)
	w.Refs.Mutate(skull, func(r *component.Refs) { r.Target = player })

	SkullAttack(w, skull, info.S_SKULL_ATK1)

	mom, ok := w.Momentum.Get(skull)
	if !ok || (mom.X == 0 && mom.Y == 0) {
		t.Fatalf("SkullAttack should set straight-line momentum toward the target")
	}

	// Charge toward a barrel placed well short of the player so the skull
	// hits a solid mid-flight rather than ever reaching its target.
	sim.Spawn(w, info.MT_BARREL, geom.FromInt(60), 0, 0)

	for tic := 0; tic < 30; tic++ {
		sim.XYMovement(w, skull)
		if !w.Alive(skull) {
			break
		}
		anim, _ := w.Anim.Get(skull)
		if anim.State == info.S_SKULL_RUN1 {
			break
		}
	}

	anim, _ := w.Anim.Get(skull)
	if anim.State != info.S_SKULL_RUN1 {
		t.Fatalf("skull Anim.State = %v, want S_SKULL_RUN1 (SeeState) after hitting a solid", anim.State)
	}
	mom, _ = w.Momentum.Get(skull)
	if mom.X != 0 || mom.Y != 0 {
		t.Fatalf("skull momentum = (%v, %v), want zeroed after contact", mom.X, mom.Y)
	}
}
