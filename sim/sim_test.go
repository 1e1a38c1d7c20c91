package sim

import (
	"testing"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
)

// openRoomWorld builds a single-sector, line-free room (spec §8 scenario
// fixtures need geometry only where a test exercises it) with an
// initialized MobjGrid, ready for spawn/move/damage tests.
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
	w := engine.NewWorldSeeded(m, 42)
	InitLevel(w)
	return w
}

func TestSpawnAttachesComponentsAndGrid(t *testing.T) {
	w := openRoomWorld(t)
	e := Spawn(w, info.MT_TROOP, geom.FromInt(10), geom.FromInt(20), 0)

	if !w.Alive(e) {
		t.Fatalf("spawned entity should be alive")
	}
	pos, ok := w.Position.Get(e)
	if !ok || pos.X != geom.FromInt(10) || pos.Y != geom.FromInt(20) {
		t.Fatalf("Position = %+v, ok=%v", pos, ok)
	}
	ext, _ := w.Extent.Get(e)
	if ext.Radius != info.MobjInfos[info.MT_TROOP].Radius {
		t.Fatalf("Extent.Radius = %v, want %v", ext.Radius, info.MobjInfos[info.MT_TROOP].Radius)
	}
	anim, ok := w.Anim.Get(e)
	if !ok || anim.State != info.S_TROO_STND {
		t.Fatalf("Anim = %+v, want spawn state S_TROO_STND", anim)
	}

	found := false
	bbox := geom.BBoxFromCenter(geom.Vec2{X: geom.FromInt(10), Y: geom.FromInt(20)}, geom.FromInt(5))
	w.Grid.ForEachInBBox(bbox, func(got core.Entity) bool {
		if got == e {
			found = true
		}
		return true
	})
	if !found {
		t.Fatalf("Spawn did not add the mobj to the spatial grid")
	}
}

func TestSetStateHoldsStateWithNonZeroTics(t *testing.T) {
	w := openRoomWorld(t)
	e := Spawn(w, info.MT_BARREL, 0, 0, 0)

	// S_BEXP's action (ActionScream) has no registered callback in this
	// test (package ai isn't imported here), so it is a silent no-op; the
	// state should still be entered and held for its 4 tics.
	if ok := SetState(w, e, info.S_BEXP); !ok {
		t.Fatalf("SetState(S_BEXP) should not request removal")
	}
	anim, _ := w.Anim.Get(e)
	if anim.State != info.S_BEXP {
		t.Fatalf("Anim.State = %v, want S_BEXP (tics=4, should not auto-chase)", anim.State)
	}
}

func TestSetStateNullQueuesRemoval(t *testing.T) {
	w := openRoomWorld(t)
	e := Spawn(w, info.MT_PUFF, 0, 0, 0)

	SetState(w, e, info.S_NULL)
	if !w.Alive(e) {
		t.Fatalf("removal must be deferred to end of tic, not immediate")
	}
	w.FlushRemovals()
	if w.Alive(e) {
		t.Fatalf("entity should be gone after FlushRemovals")
	}
}

func TestDamageAppliesPainAndDeath(t *testing.T) {
	w := openRoomWorld(t)
	target := Spawn(w, info.MT_POSSESSED, 0, 0, 0)

	Damage(w, target, core.NoEntity, core.NoEntity, 5)
	h, _ := w.HealthC.Get(target)
	if h.HP != 15 {
		t.Fatalf("HP = %d, want 15", h.HP)
	}

	Damage(w, target, core.NoEntity, core.NoEntity, 100)
	h, _ = w.HealthC.Get(target)
	if h.HP > 0 {
		t.Fatalf("HP = %d, want <= 0", h.HP)
	}
	anim, _ := w.Anim.Get(target)
	if anim.State != info.S_POSS_DIE1 {
		t.Fatalf("Anim.State = %v, want S_POSS_DIE1 on death", anim.State)
	}
	flags, _ := w.FlagsC.Get(target)
	if flags.Bits.Has(info.Shootable) {
		t.Fatalf("dead mobj should no longer be Shootable")
	}
}

func TestTryMoveAcceptsOpenFloor(t *testing.T) {
	w := openRoomWorld(t)
	e := Spawn(w, info.MT_TROOP, 0, 0, 0)

	pc := TryMove(w, e, geom.Vec2{X: geom.FromInt(50), Y: geom.FromInt(50)})
	if pc.Result != MoveOK {
		t.Fatalf("TryMove in an open room = %v, want MoveOK", pc.Result)
	}
	pos, _ := w.Position.Get(e)
	if pos.X != geom.FromInt(50) || pos.Y != geom.FromInt(50) {
		t.Fatalf("Position after accepted move = %+v", pos)
	}
}

func TestXYMovementIntegratesMomentum(t *testing.T) {
	w := openRoomWorld(t)
	e := Spawn(w, info.MT_TROOP, 0, 0, 0)
	w.Momentum.Mutate(e, func(m *component.Momentum) { m.X = geom.FromInt(4) })

	XYMovement(w, e)
	pos, _ := w.Position.Get(e)
	if pos.X <= 0 {
		t.Fatalf("Position.X = %v, want > 0 after XYMovement with positive x-momentum", pos.X)
	}
}

func TestAutoaimFindsShootableTarget(t *testing.T) {
	w := openRoomWorld(t)
	shooter := Spawn(w, info.MT_PLAYER, 0, 0, 0)
	Spawn(w, info.MT_TROOP, geom.FromInt(100), 0, 0)

	target, _, ok := Autoaim(w, shooter, geom.FromInt(500))
	if !ok {
		t.Fatalf("Autoaim should find the troop directly ahead")
	}
	if tInfo, _ := w.Info.Get(target); tInfo.Type != info.MT_TROOP {
		t.Fatalf("Autoaim target type = %v, want MT_TROOP", tInfo.Type)
	}
}

func TestSpawnThingsSpawnsPlayerAndMonstersOntoFloor(t *testing.T) {
	w := openRoomWorld(t)
	w.Map.Things = []mapdata.Thing{
		{X: geom.FromInt(0), Y: geom.FromInt(0), DoomedNum: info.MobjInfos[info.MT_PLAYER].Doomednum},
		{X: geom.FromInt(50), Y: geom.FromInt(50), DoomedNum: info.MobjInfos[info.MT_TROOP].Doomednum},
		{X: geom.FromInt(-50), Y: geom.FromInt(-50), DoomedNum: 99999}, // no matching MobjInfo
	}

	player := SpawnThings(w)
	if player == core.NoEntity {
		t.Fatalf("SpawnThings did not spawn a player")
	}
	pInfo, ok := w.Info.Get(player)
	if !ok || pInfo.Type != info.MT_PLAYER {
		t.Fatalf("player entity Info = %+v, ok=%v", pInfo, ok)
	}

	troopCount := 0
	for _, e := range w.Info.All() {
		if inf, _ := w.Info.Get(e); inf.Type == info.MT_TROOP {
			troopCount++
		}
	}
	if troopCount != 1 {
		t.Fatalf("troop count = %d, want 1", troopCount)
	}
	if w.Position.Count() != 2 {
		t.Fatalf("Position.Count() = %d, want 2 (unmatched doomednum should not spawn)", w.Position.Count())
	}
}
