// Package demolevel builds a small, entirely synthetic two-room map for
// cmd/doomrun and cmd/doombench to run against. WAD parsing and lump
// extraction are an explicit Non-goal (spec §1: "deliberately out of
// scope ... the core consumes pre-parsed map lumps ... through read-only
// interfaces"), so this package plays the part of that external
// collaborator with a hand-built mapdata.RawLump instead of a real file
// reader, the same way sector/sector_test.go's twoRoomWorld and
// mapdata's own test fixtures stand in for a loader in tests.
package demolevel

import (
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/mapdata"
	"github.com/lixenwraith/doomcore/sector"
)

// Build returns a two-sector level: a tall south starting room and a
// low-ceilinged north room behind a walk-triggered door (spec §4.6 door
// family), populated with a player start and a zombieman (spec §8
// scenario fixtures use the same doomed-numbers as info.MobjInfos).
func Build() (*mapdata.Map, error) {
	verts := []mapdata.Vertex{
		{X: geom.FromInt(-256), Y: geom.FromInt(-256)}, // 0
		{X: geom.FromInt(256), Y: geom.FromInt(-256)},  // 1
		{X: geom.FromInt(256), Y: geom.FromInt(0)},     // 2
		{X: geom.FromInt(-256), Y: geom.FromInt(0)},     // 3
		{X: geom.FromInt(256), Y: geom.FromInt(256)},   // 4
		{X: geom.FromInt(-256), Y: geom.FromInt(256)},  // 5
	}
	sectors := []mapdata.Sector{
		{FloorHeight: 0, CeilingHeight: geom.FromInt(256), LightLevel: 220, FloorPic: 1, CeilingPic: 1}, // 0: south start room
		{FloorHeight: 0, CeilingHeight: geom.FromInt(72), LightLevel: 160, FloorPic: 2, CeilingPic: 2, Tag: 1}, // 1: north room, low ceiling, door tag
	}
	sides := []mapdata.Sidedef{
		{Sector: 0, UpperTex: -1, LowerTex: -1, MidTex: -1},    // 0: south room perimeter
		{Sector: 1, UpperTex: -1, LowerTex: -1, MidTex: -1},    // 1: north room perimeter
		{Sector: 0, UpperTex: 3, LowerTex: -1, MidTex: -1},     // 2: door line, front (south) face
		{Sector: 1, UpperTex: 3, LowerTex: -1, MidTex: -1},     // 3: door line, back (north) face
	}
	linedefs := []mapdata.Linedef{
		// south perimeter
		{V1: 0, V2: 1, Flags: mapdata.LineBlocking, SideFront: 0, SideBack: -1},
		{V1: 1, V2: 2, Flags: mapdata.LineBlocking, SideFront: 0, SideBack: -1},
		{V1: 3, V2: 0, Flags: mapdata.LineBlocking, SideFront: 0, SideBack: -1},
		// door line, two-sided, walk-triggered door raise (spec §4.6 "walk" variant)
		{V1: 2, V2: 3, Flags: mapdata.LineTwoSided, Special: int(sector.SpecialDoorRaiseWalk), Tag: 1, SideFront: 2, SideBack: 3},
		// north perimeter
		{V1: 2, V2: 4, Flags: mapdata.LineBlocking, SideFront: 1, SideBack: -1},
		{V1: 4, V2: 5, Flags: mapdata.LineBlocking, SideFront: 1, SideBack: -1},
		{V1: 5, V2: 3, Flags: mapdata.LineBlocking, SideFront: 1, SideBack: -1},
	}
	subsectors := []mapdata.Subsector{
		{FirstSeg: 0, NumSegs: 1, Sector: 0},
		{FirstSeg: 1, NumSegs: 1, Sector: 1},
	}
	segs := []mapdata.Seg{
		{V1: 2, V2: 3, Linedef: 3, Side: 0},
		{V1: 3, V2: 2, Linedef: 3, Side: 1},
	}
	nodes := []mapdata.Node{
		{
			Partition: geom.Line{V1: verts[2], V2: verts[3]},
			FrontBBox: geom.BBox{MinX: geom.FromInt(-256), MaxX: geom.FromInt(256), MinY: 0, MaxY: geom.FromInt(256)},
			BackBBox:  geom.BBox{MinX: geom.FromInt(-256), MaxX: geom.FromInt(256), MinY: geom.FromInt(-256), MaxY: 0},
			FrontChild: mapdata.SubsectorFlag | 1,
			BackChild:  mapdata.SubsectorFlag | 0,
		},
	}
	things := []mapdata.Thing{
		{X: geom.FromInt(0), Y: geom.FromInt(-128), Angle: geom.Angle90, DoomedNum: info.MobjInfos[info.MT_PLAYER].Doomednum},
		{X: geom.FromInt(0), Y: geom.FromInt(128), Angle: geom.Angle270, DoomedNum: info.MobjInfos[info.MT_POSSESSED].Doomednum},
	}

	raw := mapdata.RawLump{
		Vertices: verts, Linedefs: linedefs, Sidedefs: sides, Sectors: sectors,
		Subsectors: subsectors, Segs: segs, Nodes: nodes, Things: things,
		RootNode: 0,
	}
	return mapdata.Load(raw)
}
