package geom

// Line is a directed segment from V1 to V2, the shape every linedef and
// seg specializes. Kept separate from mapdata.Linedef so BSP-adjacent math
// (side tests, box clipping) has no dependency on map-loading types.
type Line struct {
	V1, V2 Vec2
}

func (l Line) Delta() Vec2 { return l.V2.Sub(l.V1) }

// Side is the result of a point/line or box/line side test.
type Side int

const (
	Front Side = iota
	Back
	Both
)

// PointOnSide implements spec §4.1 point_on_line_side: the signed cross
// product of the line's direction with p-v1, taken in 64 bits so long
// lines and distant points cannot overflow it. A point to the right of
// the direction is Front, one to the left is Back. Ties (p exactly on the
// line) break toward Front, matching the historical R_PointOnSide
// convention BSP descent relies on to always make progress.
func (l Line) PointOnSide(p Vec2) Side {
	d := l.Delta()
	r := p.Sub(l.V1)
	cross := int64(d.X)*int64(r.Y) - int64(d.Y)*int64(r.X)
	if cross > 0 {
		return Back
	}
	return Front
}

// BBox is an axis-aligned bounding box in map units.
type BBox struct {
	MinX, MinY, MaxX, MaxY Fixed
}

func (b BBox) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

func (b BBox) Expand(r Fixed) BBox {
	return BBox{b.MinX - r, b.MinY - r, b.MaxX + r, b.MaxY + r}
}

func BBoxFromCenter(center Vec2, radius Fixed) BBox {
	return BBox{center.X - radius, center.Y - radius, center.X + radius, center.Y + radius}
}

// corners in a fixed, side-test-friendly order: the four combinations of
// (min|max)X × (min|max)Y, used by BoxOnLineSide to classify quickly
// without allocating a slice per call.
func (b BBox) corner(i int) Vec2 {
	switch i {
	case 0:
		return Vec2{b.MinX, b.MinY}
	case 1:
		return Vec2{b.MinX, b.MaxY}
	case 2:
		return Vec2{b.MaxX, b.MinY}
	default:
		return Vec2{b.MaxX, b.MaxY}
	}
}

// BoxOnLineSide implements spec §4.1 boxes_on_line_side: Front, Back or
// Both depending on whether the box's corners straddle the line. Used to
// prune BSP descents (a box entirely on one side of a splitter need not
// recurse into the far child) and to gate collision sweeps against a
// candidate linedef before doing a full intersection test.
func (l Line) BoxOnLineSide(b BBox) Side {
	var sawFront, sawBack bool
	for i := 0; i < 4; i++ {
		switch l.PointOnSide(b.corner(i)) {
		case Front:
			sawFront = true
		case Back:
			sawBack = true
		}
		if sawFront && sawBack {
			return Both
		}
	}
	if sawBack {
		return Back
	}
	return Front
}

// SegmentIntersect finds the parametric position t along `a` (0..Unit)
// where it crosses line `b`, returning ok=false if the segments are
// parallel or the crossing falls outside [0,Unit] on either segment. Used
// by path_trace for both line intercepts and the final-step fractional
// move clamp in try_move.
func SegmentIntersect(a, b Line) (t Fixed, ok bool) {
	d1 := a.Delta()
	d2 := b.Delta()
	denom := d1.Cross(d2)
	if denom == 0 {
		return 0, false
	}
	diff := b.V1.Sub(a.V1)
	tNum := diff.Cross(d2)
	uNum := diff.Cross(d1)
	t = tNum.Div(denom)
	u := uNum.Div(denom)
	if t < 0 || t > Unit || u < 0 || u > Unit {
		return 0, false
	}
	return t, true
}

// PointAt returns the point at parametric position t (0..Unit) along the line.
func (l Line) PointAt(t Fixed) Vec2 {
	d := l.Delta()
	return Vec2{l.V1.X + d.X.Mul(t), l.V1.Y + d.Y.Mul(t)}
}
