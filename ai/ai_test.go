package ai

import (
	"testing"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
	"github.com/lixenwraith/doomcore/sim"
)

func init() { Register() }

func openRoomWorld(t *testing.T) *engine.World {
	t.Helper()
	raw := mapdata.RawLump{
		Vertices: []mapdata.Vertex{
			{X: geom.FromInt(-500), Y: geom.FromInt(-500)},
			{X: geom.FromInt(500), Y: geom.FromInt(-500)},
			{X: geom.FromInt(500), Y: geom.FromInt(500)},
			{X: geom.FromInt(-500), Y: geom.FromInt(500)},
		},
		Sectors: []mapdata.Sector{
			{FloorHeight: 0, CeilingHeight: geom.FromInt(128), LightLevel: 200},
		},
		Subsectors: []mapdata.Subsector{
			{FirstSeg: 0, NumSegs: 0, Sector: 0},
		},
		RootNode: mapdata.SubsectorFlag | 0,
	}
	m, err := mapdata.Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := engine.NewWorldSeeded(m, 7)
	sim.InitLevel(w)
	return w
}

func setTarget(w *engine.World, e, target core.Entity) {
	w.Refs.Mutate(e, func(r *component.Refs) { r.Target = target })
}

func TestLookAcquiresVisiblePlayer(t *testing.T) {
	w := openRoomWorld(t)
	player := sim.SpawnPlayer(w, 0, 0, 0, 0)
	troop := sim.Spawn(w, info.MT_TROOP, geom.FromInt(100), 0, 0)

	Look(w, troop, info.S_TROO_STND)

	refs, ok := w.Refs.Get(troop)
	if !ok || refs.Target != player {
		t.Fatalf("Refs.Target = %v, want %v", refs.Target, player)
	}
	anim, _ := w.Anim.Get(troop)
	if anim.State != info.S_TROO_RUN1 {
		t.Fatalf("Anim.State = %v, want S_TROO_RUN1 (SeeState)", anim.State)
	}
}

func TestChaseEntersMeleeStateInRange(t *testing.T) {
	w := openRoomWorld(t)
	player := sim.SpawnPlayer(w, 0, 0, 0, 0)
	troop := sim.Spawn(w, info.MT_TROOP, geom.FromInt(10), 0, 0)
	setTarget(w, troop, player)
	w.AIState.Mutate(troop, func(a *component.AI) { a.ReactionTime = 0 })

	Chase(w, troop, info.S_TROO_RUN1)
	anim, _ := w.Anim.Get(troop)
	if anim.State != info.S_TROO_MELEE1 {
		t.Fatalf("Anim.State = %v, want S_TROO_MELEE1 (target in melee range)", anim.State)
	}
}

func TestPosAttackDamagesVisibleTarget(t *testing.T) {
	w := openRoomWorld(t)
	player := sim.SpawnPlayer(w, 0, 0, 0, 0)
	zombie := sim.Spawn(w, info.MT_POSSESSED, geom.FromInt(200), 0, 0)
	setTarget(w, zombie, player)

	hBefore, _ := w.HealthC.Get(player)
	PosAttack(w, zombie, info.S_POSS_ATK2)
	hAfter, _ := w.HealthC.Get(player)
	if hAfter.HP >= hBefore.HP {
		t.Fatalf("HP after PosAttack = %d, want less than %d", hAfter.HP, hBefore.HP)
	}
}

func TestExplodeDamagesNearbyMobjs(t *testing.T) {
	w := openRoomWorld(t)
	barrel := sim.Spawn(w, info.MT_BARREL, 0, 0, 0)
	victim := sim.Spawn(w, info.MT_TROOP, geom.FromInt(50), 0, 0)

	hBefore, _ := w.HealthC.Get(victim)
	Explode(w, barrel, info.S_BEXP)
	hAfter, _ := w.HealthC.Get(victim)
	if hAfter.HP >= hBefore.HP {
		t.Fatalf("HP after Explode = %d, want less than %d", hAfter.HP, hBefore.HP)
	}
}
