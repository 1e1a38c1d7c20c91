package mapdata

import "github.com/lixenwraith/doomcore/geom"

// PointInSubsector implements spec §4.1: descend from the root node,
// evaluating the signed side of p against each splitter and recursing
// into the matching child, terminating on a subsector leaf. O(tree depth).
func (m *Map) PointInSubsector(p geom.Vec2) int {
	idx := m.RootNode
	for idx&SubsectorFlag == 0 {
		node := &m.Nodes[idx]
		if node.Partition.PointOnSide(p) == geom.Back {
			idx = node.BackChild
		} else {
			idx = node.FrontChild
		}
	}
	return idx &^ SubsectorFlag
}

// PointOnLineSide is the geom.Line.PointOnSide test specialized to a
// stored linedef, spec §4.1 point_on_line_side.
func (m *Map) PointOnLineSide(p geom.Vec2, ld *Linedef) geom.Side {
	return m.LinedefLine(ld).PointOnSide(p)
}

// BoxOnLineSide implements spec §4.1 boxes_on_line_side for a stored linedef.
func (m *Map) BoxOnLineSide(b geom.BBox, ld *Linedef) geom.Side {
	return m.LinedefLine(ld).BoxOnLineSide(b)
}

// boxesIntersect reports whether a bbox can possibly intersect the
// subtree rooted at a node's bbox — used to prune iterBBoxSubsectors'
// walk below.
func boxesIntersect(a, b geom.BBox) bool { return a.Intersects(b) }

// iterBBoxSubsectors visits every subsector whose node-bbox intersects
// bbox, calling f(subsectorIdx). Stops early if f returns false. Nothing
// in the module calls it: IterLinesInBBox and the mobj queries in package
// sim use the blockmap, and the renderer's walkBSP prunes with its own
// frustum test.
func (m *Map) iterBBoxSubsectors(bbox geom.BBox, f func(subsector int) bool) {
	var walk func(idx int, nodeBBox geom.BBox) bool
	walk = func(idx int, nodeBBox geom.BBox) bool {
		if idx&SubsectorFlag != 0 {
			return f(idx &^ SubsectorFlag)
		}
		node := &m.Nodes[idx]
		if boxesIntersect(bbox, node.FrontBBox) {
			if !walk(node.FrontChild, node.FrontBBox) {
				return false
			}
		}
		if boxesIntersect(bbox, node.BackBBox) {
			if !walk(node.BackChild, node.BackBBox) {
				return false
			}
		}
		return true
	}
	rootBBox := geom.BBox{MinX: -geom.FromInt(1 << 20), MinY: -geom.FromInt(1 << 20), MaxX: geom.FromInt(1 << 20), MaxY: geom.FromInt(1 << 20)}
	walk(m.RootNode, rootBBox)
}

// IterLinesInBBox implements spec §4.1 iter_lines_in_bbox via the
// blockmap: enumerates candidate linedefs whose cell overlaps bbox,
// de-duplicated, calling f for each. f returns false to stop.
func (m *Map) IterLinesInBBox(bbox geom.BBox, f func(lineIdx int) bool) {
	seen := make(map[int]bool)
	m.Blockmap.ForEachLineInBBox(bbox, func(lineIdx int) bool {
		if seen[lineIdx] {
			return true
		}
		seen[lineIdx] = true
		return f(lineIdx)
	})
}
