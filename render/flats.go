package render

import (
	"github.com/lixenwraith/doomcore/geom"
)

// subsectorFlat is the pre-triangulated polygon spec §4.7 describes ("each
// subsector is pre-triangulated once per level from its seg polygon"):
// the 2D outline, fan-triangulated around its centroid, cached the first
// time a subsector is rendered and reused for every later frame since the
// outline never changes after level load.
type subsectorFlat struct {
	verts    []geom.Vec2
	centroid geom.Vec2
}

// flatFor builds (or returns the cached) triangulated outline for a
// subsector, walking its segs' leading vertex in traversal order — the
// segs of a BSP leaf always form a closed convex polygon.
func (r *Renderer) flatFor(subsectorIdx int) subsectorFlat {
	if f, ok := r.flatCache[subsectorIdx]; ok {
		return f
	}
	m := r.world.Map
	sub := &m.Subsectors[subsectorIdx]
	verts := make([]geom.Vec2, 0, sub.NumSegs)
	var sumX, sumY geom.Fixed
	for i := 0; i < sub.NumSegs; i++ {
		seg := &m.Segs[sub.FirstSeg+i]
		v := m.Vertices[seg.V1]
		verts = append(verts, v)
		sumX += v.X
		sumY += v.Y
	}
	n := geom.FromInt(len(verts))
	var centroid geom.Vec2
	if len(verts) > 0 {
		centroid = geom.Vec2{X: sumX.Div(n), Y: sumY.Div(n)}
	}
	f := subsectorFlat{verts: verts, centroid: centroid}
	r.flatCache[subsectorIdx] = f
	return f
}

// renderFlats draws a subsector's floor and ceiling triangle fans (spec
// §4.7 "triangles are emitted at floorheight and ceilingheight with the
// sector's flat image and average light"). Sky flats draw as SkyColor
// instead of a sampled flat, per the same section.
func (r *Renderer) renderFlats(subsectorIdx int) {
	m := r.world.Map
	sub := &m.Subsectors[subsectorIdx]
	sector := &m.Sectors[sub.Sector]
	flat := r.flatFor(subsectorIdx)
	if len(flat.verts) < 3 {
		return
	}

	skyNum := r.pictures.SkyNum()
	for i := 0; i < len(flat.verts); i++ {
		a := flat.verts[i]
		b := flat.verts[(i+1)%len(flat.verts)]
		r.rasterTriangle(flat.centroid, a, b, sector.FloorHeight, sector.FloorPic, skyNum, sector.LightLevel, false)
		r.rasterTriangle(flat.centroid, a, b, sector.CeilingHeight, sector.CeilingPic, skyNum, sector.LightLevel, true)
	}
}

// rasterTriangle projects one floor/ceiling fan triangle and fills it by
// scanline, writing through the framebuffer's depth test. flip reverses
// winding for ceilings so both faces still project front-facing relative
// to a viewer below them.
func (r *Renderer) rasterTriangle(c, a, b geom.Vec2, height geom.Fixed, pic, skyNum, light int, flip bool) {
	worldZ := height.ToFloat()
	pc := r.projectFlatVertex(c, worldZ)
	pa := r.projectFlatVertex(a, worldZ)
	pb := r.projectFlatVertex(b, worldZ)
	if !pc.ok || !pa.ok || !pb.ok {
		return
	}
	if flip {
		pa, pb = pb, pa
	}

	color := SkyColor
	if pic != skyNum {
		color = r.pictures.FlatAverageColor(light, 1.0, pic).RGB()
	}

	minX, maxX := minInt3(int(pc.sx), int(pa.sx), int(pb.sx)), maxInt3(int(pc.sx), int(pa.sx), int(pb.sx))
	minY, maxY := minInt3(int(pc.sy), int(pa.sy), int(pb.sy)), maxInt3(int(pc.sy), int(pa.sy), int(pb.sy))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.fb.Width {
		maxX = r.fb.Width - 1
	}
	if maxY >= r.fb.Height {
		maxY = r.fb.Height - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			u, v, w, inside := barycentric(pc.sx, pc.sy, pa.sx, pa.sy, pb.sx, pb.sy, float64(x)+0.5, float64(y)+0.5)
			if !inside {
				continue
			}
			depth := u*pc.depth + v*pa.depth + w*pb.depth
			shaded := color
			if pic != skyNum {
				shaded = r.shade(color, light, depth)
			}
			r.fb.TestAndSet(x, y, shaded, depth)
		}
	}
}

type flatVertex struct {
	sx, sy, depth float64
	ok            bool
}

func (r *Renderer) projectFlatVertex(p geom.Vec2, worldZ float64) flatVertex {
	vx, vy, _ := r.cam.ToView(p.X.ToFloat(), p.Y.ToFloat(), worldZ)
	sx, sy, depth, ok := r.cam.Project(vx, vy, worldZ-r.cam.Z)
	return flatVertex{sx: sx, sy: sy, depth: depth, ok: ok}
}

// barycentric returns the barycentric weights of (px,py) in triangle
// (ax,ay)-(bx,by)-(cx,cy) and whether the point lies inside it.
func barycentric(ax, ay, bx, by, cx, cy, px, py float64) (u, v, w float64, inside bool) {
	d := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	if d == 0 {
		return 0, 0, 0, false
	}
	u = ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) / d
	v = ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) / d
	w = 1 - u - v
	inside = u >= 0 && v >= 0 && w >= 0
	return
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
