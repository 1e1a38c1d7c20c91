package render

import (
	"testing"

	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
)

// stubPictures is a minimal PictureData good enough to exercise the
// renderer without any real picture data: every lookup returns a flat
// mid-gray, matching spec §1's "picture data is an external collaborator"
// boundary — this package never needs to know what a real wall looks like.
type stubPictures struct{}

func (stubPictures) FlatAverageColor(light int, scale float64, flatID int) RGBA {
	return RGBA{R: 128, G: 128, B: 128, A: 255}
}

func (stubPictures) WallColumn(texID int, u float64) []RGBA {
	col := make([]RGBA, 8)
	for i := range col {
		col[i] = RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return col
}

func (stubPictures) SkyNum() int { return -1 }

func (stubPictures) SpriteFrame(sprite info.SpriteID, frame, rotation int) SpriteImage {
	return SpriteImage{}
}

// twoRoomMap builds a north/south pair of sectors split at y=0 (the same
// shape as mapdata's own bsp_test.go fixture and sector's twoRoomWorld),
// joined by a single two-sided line later marked reject-blocked to stand
// in for a closed door: the reject table, not distance, is what spec §8
// scenario 6 requires the BSP walk to respect.
func twoRoomMap(t *testing.T) *mapdata.Map {
	t.Helper()
	verts := []mapdata.Vertex{
		{X: geom.FromInt(-100), Y: geom.FromInt(-100)}, // 0
		{X: geom.FromInt(100), Y: geom.FromInt(-100)},  // 1
		{X: geom.FromInt(100), Y: geom.FromInt(0)},     // 2
		{X: geom.FromInt(-100), Y: geom.FromInt(0)},     // 3
		{X: geom.FromInt(100), Y: geom.FromInt(100)},    // 4
		{X: geom.FromInt(-100), Y: geom.FromInt(100)},   // 5
	}
	sectors := []mapdata.Sector{
		{FloorHeight: 0, CeilingHeight: geom.FromInt(128), LightLevel: 200}, // 0: south (player's room)
		{FloorHeight: 0, CeilingHeight: geom.FromInt(128), LightLevel: 200}, // 1: north (behind the closed door)
	}
	sides := []mapdata.Sidedef{
		{Sector: 0, MidTex: -1, UpperTex: -1, LowerTex: -1},
		{Sector: 1, MidTex: -1, UpperTex: -1, LowerTex: -1},
	}
	linedefs := []mapdata.Linedef{
		{V1: 2, V2: 3, Flags: mapdata.LineTwoSided, SideFront: 0, SideBack: 1},
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
	return m
}

func TestBSPWalkNeverEmitsRejectBlockedSubsector(t *testing.T) {
	m := twoRoomMap(t)
	m.Reject.Set(0, 1) // simulate the closed door: the two rooms cannot see each other

	w := engine.NewWorldSeeded(m, 1)
	r := NewRenderer(stubPictures{}, 64, 48)

	var visited []int
	r.VisitSubsector = func(idx int) { visited = append(visited, idx) }

	// Player stands in the south room (sector 0), looking north toward
	// the door at y=0.
	viewX, viewY := geom.FromInt(0), geom.FromInt(-50)
	r.RenderFrame(w, viewX, viewY, geom.FromInt(41), geom.Angle90, 0)

	for _, idx := range visited {
		if m.Subsectors[idx].Sector == 1 {
			t.Fatalf("BSP walk emitted subsector %d in the reject-blocked north room", idx)
		}
	}
	sawSouth := false
	for _, idx := range visited {
		if m.Subsectors[idx].Sector == 0 {
			sawSouth = true
		}
	}
	if !sawSouth {
		t.Fatalf("BSP walk never emitted the player's own subsector")
	}
}

func TestBSPWalkEmitsBothRoomsWhenNotRejectBlocked(t *testing.T) {
	m := twoRoomMap(t)
	// no Reject.Set call: the two rooms see each other (door open / no door)

	w := engine.NewWorldSeeded(m, 1)
	r := NewRenderer(stubPictures{}, 64, 48)

	var visited []int
	r.VisitSubsector = func(idx int) { visited = append(visited, idx) }

	viewX, viewY := geom.FromInt(0), geom.FromInt(-50)
	r.RenderFrame(w, viewX, viewY, geom.FromInt(41), geom.Angle90, 0)

	sawNorth := false
	for _, idx := range visited {
		if m.Subsectors[idx].Sector == 1 {
			sawNorth = true
		}
	}
	if !sawNorth {
		t.Fatalf("expected the north room to be visited once the reject table permits it")
	}
}
