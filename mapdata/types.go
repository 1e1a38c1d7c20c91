// Package mapdata holds the level geometry: vertices, linedefs, sidedefs,
// sectors, subsectors, segs, nodes, the blockmap and the reject table
// (spec §3, §4.1). It is populated once by Load from the external
// map-loader interfaces (spec §6). Two parts change in place afterward:
// package sector's thinkers change sector heights, light levels and
// specials in Map.Sectors, and its switch handling flips Sidedef MidTex
// ids. Everything else stays as Load left it.
package mapdata

import "github.com/lixenwraith/doomcore/geom"

// LineFlag bits, a fixed enumeration bit-exact with the map format (spec §6).
type LineFlag uint32

const (
	LineBlocking LineFlag = 1 << iota
	LineBlockMonsters
	LineTwoSided
	LineUpperUnpegged
	LineLowerUnpegged
	LineSecret
	LineBlockSound
	LineDontDraw
	LineMapped
)

// Vertex is a 2D point shared by one or more linedefs.
type Vertex = geom.Vec2

// Linedef is an ordered pair of vertices plus the flags/special/tag the
// map format attaches to it, and references to one or two sidedefs.
type Linedef struct {
	V1, V2    int // vertex indices
	Flags     LineFlag
	Special   int // action code, spec §6 "line/sector specials"
	Tag       int
	SideFront int // sidedef index, always valid
	SideBack  int // sidedef index, -1 if one-sided
}

func (l *Linedef) Line(verts []Vertex) geom.Line {
	return geom.Line{V1: verts[l.V1], V2: verts[l.V2]}
}

// BBox returns the linedef's axis-aligned bounding box, used by
// boxes_on_line_side pruning and blockmap insertion.
func (l *Linedef) BBox(verts []Vertex) geom.BBox {
	v1, v2 := verts[l.V1], verts[l.V2]
	b := geom.BBox{MinX: v1.X, MaxX: v1.X, MinY: v1.Y, MaxY: v1.Y}
	if v2.X < b.MinX {
		b.MinX = v2.X
	}
	if v2.X > b.MaxX {
		b.MaxX = v2.X
	}
	if v2.Y < b.MinY {
		b.MinY = v2.Y
	}
	if v2.Y > b.MaxY {
		b.MaxY = v2.Y
	}
	return b
}

func (l *Linedef) TwoSided() bool { return l.Flags&LineTwoSided != 0 && l.SideBack >= 0 }

// Sidedef carries texture ids/offsets and the sector it faces.
type Sidedef struct {
	OffsetX, OffsetY        int
	UpperTex, LowerTex, MidTex int // texture ids, -1 = none
	Sector                   int
}

// SectorSpecial is a fixed enumeration of the damage/flicker kinds a
// sector can carry (spec §3 sector.special).
type SectorSpecial int

const (
	SectorNormal SectorSpecial = iota
	SectorLightBlink1          // random off
	SectorLightFast
	SectorLightSlowStrobe
	SectorDamage20Flicker
	SectorLightFastStrobeUnsync
	SectorDamage10
	SectorDamage5
	SectorLightOscillate
	SectorSecret
	SectorDoorCloseIn30
	SectorDamage20End
	SectorLightSlowStrobeSync
	SectorLightFastStrobeSync
	SectorDoorRaiseIn300
	SectorDamage20
	SectorLightFlicker
)

// Sector is the mutable-at-runtime floor/ceiling record. The static
// geometry load populates the initial values; sector-action thinkers
// (package sector) mutate FloorHeight/CeilingHeight/LightLevel/FloorPic
// in place during play, and record back-references to the thinker
// currently driving this sector so spec §3 invariant (f) — "non-null iff a
// corresponding thinker exists" — can be checked directly.
type Sector struct {
	FloorHeight, CeilingHeight geom.Fixed
	FloorPic, CeilingPic       int
	LightLevel                 int // 0-255
	Special                    SectorSpecial
	Tag                        int

	// ActiveCeiling/ActiveFloor hold an opaque thinker handle (see
	// sector.Handle) or the zero value when no thinker owns this sector.
	ActiveCeiling uint64
	ActiveFloor   uint64

	LineIndices []int // linedefs bordering this sector, for reject/sight and crush scans
}

// Seg is a subsector-bounding portion of a linedef.
type Seg struct {
	V1, V2   int // vertex indices, in seg-traversal order (may be line.V2->V1)
	Angle    geom.Angle
	Linedef  int
	Side     int // 0 = front of linedef, 1 = back
	Offset   geom.Fixed
}

// Subsector is a convex BSP leaf: a contiguous run of segs, belonging to
// exactly one sector.
type Subsector struct {
	FirstSeg, NumSegs int
	Sector            int
}

// node child encoding: a high bit marks a subsector index (spec §3 "Node").
const SubsectorFlag = 1 << 31

// Node is a BSP internal node: a splitting line (as partition origin +
// direction, the on-disk Doom convention) and two child bboxes.
type Node struct {
	Partition geom.Line // partition origin/direction; only the ray matters, not its length
	FrontBBox, BackBBox geom.BBox
	FrontChild, BackChild int // high bit (SubsectorFlag) set => subsector index in low bits
}

func (n *Node) FrontIsSubsector() bool { return n.FrontChild&SubsectorFlag != 0 }
func (n *Node) BackIsSubsector() bool  { return n.BackChild&SubsectorFlag != 0 }
func (n *Node) FrontIndex() int        { return n.FrontChild &^ SubsectorFlag }
func (n *Node) BackIndex() int         { return n.BackChild &^ SubsectorFlag }

// Thing is a spawn directive from the map's things list (spec §6).
type Thing struct {
	X, Y        geom.Fixed
	Angle       geom.Angle
	DoomedNum   int
	SpawnFlags  int
}
