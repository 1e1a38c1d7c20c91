package render

// screenPoint is a projected vertex carrying its view-space depth so
// clipping and rasterization downstream can keep interpolating it.
type screenPoint struct {
	X, Y, Depth float64
}

// cohenSutherland region outcodes for screenClipLine (spec §4.7 "Line
// clipping at screen edges uses Cohen-Sutherland").
const (
	csInside = 0
	csLeft   = 1 << 0
	csRight  = 1 << 1
	csBottom = 1 << 2
	csTop    = 1 << 3
)

func outcode(p screenPoint, w, h float64) int {
	code := csInside
	switch {
	case p.X < 0:
		code |= csLeft
	case p.X > w:
		code |= csRight
	}
	switch {
	case p.Y < 0:
		code |= csTop
	case p.Y > h:
		code |= csBottom
	}
	return code
}

// screenClipLine clips a projected screen-space segment against the
// framebuffer rectangle using Cohen-Sutherland, interpolating depth along
// with position so the clipped endpoints stay usable for the depth test.
// ok is false when the segment lies entirely outside the screen.
func screenClipLine(a, b screenPoint, w, h float64) (ca, cb screenPoint, ok bool) {
	outA, outB := outcode(a, w, h), outcode(b, w, h)
	for {
		if outA|outB == 0 {
			return a, b, true
		}
		if outA&outB != 0 {
			return a, b, false
		}
		out := outA
		if out == 0 {
			out = outB
		}
		var p screenPoint
		switch {
		case out&csTop != 0:
			t := (0 - a.Y) / (b.Y - a.Y)
			p = lerpScreen(a, b, t)
			p.Y = 0
		case out&csBottom != 0:
			t := (h - a.Y) / (b.Y - a.Y)
			p = lerpScreen(a, b, t)
			p.Y = h
		case out&csRight != 0:
			t := (w - a.X) / (b.X - a.X)
			p = lerpScreen(a, b, t)
			p.X = w
		case out&csLeft != 0:
			t := (0 - a.X) / (b.X - a.X)
			p = lerpScreen(a, b, t)
			p.X = 0
		}
		if out == outA {
			a = p
			outA = outcode(a, w, h)
		} else {
			b = p
			outB = outcode(b, w, h)
		}
	}
}

func lerpScreen(a, b screenPoint, t float64) screenPoint {
	return screenPoint{
		X:     a.X + t*(b.X-a.X),
		Y:     a.Y + t*(b.Y-a.Y),
		Depth: a.Depth + t*(b.Depth-a.Depth),
	}
}

// viewPoint is a view-space vertex, the unit clipNearPlane works with
// before projection.
type viewPoint struct {
	X, Y, Z float64
}

const nearPlaneY = 4.0

// clipNearPlane clips a view-space segment against the near plane
// (vy == nearPlaneY) before projection, since Project refuses to project
// a point behind the camera (spec §4.7 "near-plane clip"). ok is false
// when the whole segment is behind the plane.
func clipNearPlane(a, b viewPoint) (ca, cb viewPoint, ok bool) {
	aIn, bIn := a.Y >= nearPlaneY, b.Y >= nearPlaneY
	if !aIn && !bIn {
		return a, b, false
	}
	if aIn && bIn {
		return a, b, true
	}
	t := (nearPlaneY - a.Y) / (b.Y - a.Y)
	mid := viewPoint{
		X: a.X + t*(b.X-a.X),
		Y: nearPlaneY,
		Z: a.Z + t*(b.Z-a.Z),
	}
	if aIn {
		return a, mid, true
	}
	return mid, b, true
}
