package sector

import (
	"testing"

	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
	"github.com/lixenwraith/doomcore/sim"
)

// twoRoomWorld builds a north/south pair of sectors split at y=0, the
// same shape as mapdata's own twoRoomMap fixture (here oriented
// horizontally: sector 0 is south, sector 1 is north, joined by a single
// two-sided line). Sector 1 carries tag 5 and starts with a lower
// ceiling so door tests have somewhere to raise toward sector 0's.
func twoRoomWorld(t *testing.T) (*engine.World, int, int) {
	t.Helper()
	verts := []mapdata.Vertex{
		{X: geom.FromInt(-100), Y: geom.FromInt(-100)}, // 0
		{X: geom.FromInt(100), Y: geom.FromInt(-100)},  // 1
		{X: geom.FromInt(100), Y: geom.FromInt(0)},     // 2
		{X: geom.FromInt(-100), Y: geom.FromInt(0)},    // 3
		{X: geom.FromInt(100), Y: geom.FromInt(100)},   // 4
		{X: geom.FromInt(-100), Y: geom.FromInt(100)},  // 5
	}
	sectors := []mapdata.Sector{
		{FloorHeight: 0, CeilingHeight: geom.FromInt(256), LightLevel: 200},        // 0: south, tall
		{FloorHeight: 0, CeilingHeight: geom.FromInt(64), LightLevel: 200, Tag: 5}, // 1: north, low, tagged
	}
	sides := []mapdata.Sidedef{
		{Sector: 0, MidTex: -1},
		{Sector: 1, MidTex: -1},
		{Sector: 0, MidTex: 10}, // the shared line's front face, for switch tests
	}
	linedefs := []mapdata.Linedef{
		{V1: 2, V2: 3, Flags: mapdata.LineTwoSided, SideFront: 2, SideBack: 1}, // 0: shared line, front=sector0
	}
	subsectors := []mapdata.Subsector{
		{FirstSeg: 0, NumSegs: 1, Sector: 0},
		{FirstSeg: 1, NumSegs: 1, Sector: 1},
	}
	segs := []mapdata.Seg{
		{V1: 2, V2: 3, Linedef: 0, Side: 0},
		{V1: 3, V2: 2, Linedef: 0, Side: 1},
	}
	nodes := []mapdata.Node{
		{
			Partition:  geom.Line{V1: verts[2], V2: verts[3]},
			FrontBBox:  geom.BBox{MinX: geom.FromInt(-100), MaxX: geom.FromInt(100), MinY: geom.FromInt(0), MaxY: geom.FromInt(100)},
			BackBBox:   geom.BBox{MinX: geom.FromInt(-100), MaxX: geom.FromInt(100), MinY: geom.FromInt(-100), MaxY: geom.FromInt(0)},
			FrontChild: mapdata.SubsectorFlag | 1,
			BackChild:  mapdata.SubsectorFlag | 0,
		},
	}
	raw := mapdata.RawLump{
		Vertices: verts, Linedefs: linedefs, Sidedefs: sides, Sectors: sectors,
		Subsectors: subsectors, Segs: segs, Nodes: nodes, RootNode: 0,
	}
	m, err := mapdata.Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := engine.NewWorldSeeded(m, 7)
	sim.InitLevel(w)
	return w, 0, 1
}

func TestDoorRaisesThenReturns(t *testing.T) {
	w, south, north := twoRoomWorld(t)
	d := NewDoor(w, north, DoorRaise)
	want := w.Map.Sectors[south].CeilingHeight - doorGap

	for i := 0; i < 500 && w.Map.Sectors[north].CeilingHeight != want; i++ {
		if !d.Tick(w) {
			t.Fatalf("door finished before reaching open height")
		}
	}
	if got := w.Map.Sectors[north].CeilingHeight; got != want {
		t.Fatalf("ceiling = %v, want %v", got, want)
	}

	for i := 0; i < doorWaitTics; i++ {
		if !d.Tick(w) {
			t.Fatalf("door closed early at wait tic %d", i)
		}
	}
	closeHeight := geom.Fixed(64 << 16)
	for i := 0; i < 500 && w.Map.Sectors[north].CeilingHeight != closeHeight; i++ {
		if !d.Tick(w) {
			break
		}
	}
	if got := w.Map.Sectors[north].CeilingHeight; got != closeHeight {
		t.Fatalf("ceiling after close = %v, want %v", got, closeHeight)
	}
}

func TestDoorOpenNeverCloses(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	d := NewDoor(w, north, DoorOpen)
	alive := true
	for i := 0; i < 1000 && alive; i++ {
		alive = d.Tick(w)
	}
	if alive {
		t.Fatalf("DoorOpen thinker should finish once fully open")
	}
}

func TestPlatPerpetualCyclesUpAndDown(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	w.Map.Sectors[north].FloorHeight = geom.FromInt(32)
	p := NewPerpetualPlat(w, north)

	sawUp, sawDown := false, false
	for i := 0; i < 2000; i++ {
		p.Tick(w)
		if p.goingUp && p.state == platWaiting {
			sawUp = true
		}
		if !p.goingUp && p.state == platWaiting {
			sawDown = true
		}
		if sawUp && sawDown {
			break
		}
	}
	if !sawUp || !sawDown {
		t.Fatalf("perpetual plat never completed a full cycle: up=%v down=%v", sawUp, sawDown)
	}
}

func TestPlatDownWaitUpFinishes(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	w.Map.Sectors[north].FloorHeight = geom.FromInt(32)
	p := NewPlat(w, north)
	alive := true
	for i := 0; i < 2000 && alive; i++ {
		alive = p.Tick(w)
	}
	if alive {
		t.Fatalf("DownWaitUp plat never finished")
	}
	if w.Map.Sectors[north].FloorHeight != p.high {
		t.Fatalf("plat floor = %v, want back at %v", w.Map.Sectors[north].FloorHeight, p.high)
	}
}

func TestCeilingCrusherDamagesShootableMobj(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	w.Map.Sectors[north].FloorHeight = 0
	w.Map.Sectors[north].CeilingHeight = geom.FromInt(48)

	e := sim.Spawn(w, info.MT_POSSESSED, geom.FromInt(150), geom.FromInt(50), geom.FromInt(40))
	hp, _ := w.HealthC.Get(e)
	start := hp.HP

	c := NewCeilingMover(w, north, CeilingPerpetualCrush)
	for i := 0; i < 40; i++ {
		c.Tick(w)
	}
	hp, _ = w.HealthC.Get(e)
	if hp.HP >= start {
		t.Fatalf("crusher never damaged the mobj: %d -> %d", start, hp.HP)
	}
}

func TestLightStrobeAlternates(t *testing.T) {
	w, south, north := twoRoomWorld(t)
	w.Map.Sectors[north].LightLevel = 200
	w.Map.Sectors[south].LightLevel = 50
	l := NewLight(w, north, LightStrobeFast)
	sawDark, sawBright := false, false
	for i := 0; i < 200; i++ {
		l.Tick(w)
		lvl := w.Map.Sectors[north].LightLevel
		if lvl == l.minLight {
			sawDark = true
		}
		if lvl == l.maxLight {
			sawBright = true
		}
	}
	if !sawDark || !sawBright {
		t.Fatalf("strobe never alternated: dark=%v bright=%v", sawDark, sawBright)
	}
}

func TestManagerRefusesSecondCeilingThinker(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	mgr := NewManager()
	_, ok1 := mgr.Spawn(w, NewDoor(w, north, DoorRaise))
	_, ok2 := mgr.Spawn(w, NewDoor(w, north, DoorRaise))
	if !ok1 || ok2 {
		t.Fatalf("expected first spawn to succeed and second to be refused, got %v %v", ok1, ok2)
	}
	if mgr.Count() != 1 {
		t.Fatalf("Count = %d, want 1", mgr.Count())
	}
}

func TestScrollAccumulatesOffset(t *testing.T) {
	w, _, _ := twoRoomWorld(t)
	mgr := NewManager()
	s := NewScroll(0, geom.Vec2{X: geom.FromInt(1), Y: 0}, mgr.Offsets)
	mgr.Spawn(w, s)
	for i := 0; i < 5; i++ {
		mgr.Update(w)
	}
	got := mgr.Offsets.Get(0)
	if got.X != geom.FromInt(5) {
		t.Fatalf("offset.X = %v, want 5", got.X)
	}
}

func TestTriggerHandlerWalkOpensDoor(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	w.Map.Linedefs[0].Special = int(SpecialDoorRaiseWalk)
	w.Map.Linedefs[0].Tag = 5

	mgr := NewManager()
	h := NewTriggerHandler(mgr)
	w.PushEvent(engine.EventLineCrossed, 0, core.NoEntity, w.Tic())
	ev := w.Events.Consume()
	if len(ev) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(ev))
	}
	h.HandleEvent(w, ev[0])

	if mgr.Count() != 1 {
		t.Fatalf("expected a door thinker spawned, Count = %d", mgr.Count())
	}
	if w.Map.Sectors[north].ActiveCeiling == 0 {
		t.Fatalf("sector %d has no active ceiling thinker", north)
	}
}

func TestTriggerHandlerSwitchFlipsTextureAndReverts(t *testing.T) {
	w, _, _ := twoRoomWorld(t)
	w.Map.Linedefs[0].Special = int(SpecialDoorOpenSwitch)
	w.Map.Linedefs[0].Tag = 5

	mgr := NewManager()
	h := NewTriggerHandler(mgr)
	before := w.Map.Sidedefs[2].MidTex
	w.PushEvent(engine.EventSwitchUsed, 0, core.NoEntity, w.Tic())
	h.HandleEvent(w, w.Events.Consume()[0])

	after := w.Map.Sidedefs[2].MidTex
	if after == before {
		t.Fatalf("switch texture did not flip")
	}

	for i := 0; i < switchRevertTics+1; i++ {
		mgr.Update(w)
	}
	if w.Map.Sidedefs[2].MidTex != before {
		t.Fatalf("switch texture did not revert: got %d, want %d", w.Map.Sidedefs[2].MidTex, before)
	}
}

func TestTriggerHandlerTeleportsMobj(t *testing.T) {
	w, _, _ := twoRoomWorld(t)
	w.Map.Linedefs[0].Special = int(SpecialTeleportWalk)
	w.Map.Linedefs[0].Tag = 5
	w.Map.Things = append(w.Map.Things, mapdata.Thing{
		X: geom.FromInt(80), Y: geom.FromInt(80), Angle: geom.Angle90, DoomedNum: teleportDestDoomedNum,
	})

	e := sim.SpawnPlayer(w, geom.FromInt(-80), geom.FromInt(-80), 0, 0)
	mgr := NewManager()
	h := NewTriggerHandler(mgr)
	w.PushEvent(engine.EventLineCrossed, 0, e, w.Tic())
	h.HandleEvent(w, w.Events.Consume()[0])

	pos, _ := w.Position.Get(e)
	if pos.X != geom.FromInt(80) || pos.Y != geom.FromInt(80) {
		t.Fatalf("player did not teleport: pos = %v", pos)
	}
	facing, _ := w.Facing.Get(e)
	if facing.Angle != geom.Angle90 {
		t.Fatalf("facing = %v, want Angle90", facing.Angle)
	}
	mom, _ := w.Momentum.Get(e)
	if mom.X != 0 || mom.Y != 0 {
		t.Fatalf("momentum not zeroed: %v", mom)
	}
	if _, ok := w.SectorLink.Get(e); !ok {
		t.Fatalf("missing sector link after teleport")
	}
}

func TestManagerLookupRetriggerExtendsWait(t *testing.T) {
	w, _, north := twoRoomWorld(t)
	mgr := NewManager()
	mgr.Spawn(w, NewDoor(w, north, DoorRaise))
	th, _ := mgr.Lookup(w, north, FamilyCeiling)
	d := th.(*Door)

	top := d.topHeight
	for i := 0; i < 500 && w.Map.Sectors[north].CeilingHeight != top; i++ {
		d.Tick(w)
	}
	d.waitLeft = 1
	d.Retrigger(w)
	if d.waitLeft != doorWaitTics {
		t.Fatalf("waitLeft = %d, want reset to %d", d.waitLeft, doorWaitTics)
	}
}
