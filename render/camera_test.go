package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/doomcore/geom"
)

func TestCameraProjectCentersForwardPoint(t *testing.T) {
	cam := NewCamera(0, 0, 0, geom.Angle90, 0, 320, 200)
	vx, vy, vz := cam.ToView(0, 100, 0)
	sx, sy, depth, ok := cam.Project(vx, vy, vz)
	if !ok {
		t.Fatalf("expected point directly ahead to project")
	}
	if math.Abs(sx-160) > 1 {
		t.Fatalf("sx = %v, want ~160 (screen center)", sx)
	}
	if math.Abs(sy-100) > 1 {
		t.Fatalf("sy = %v, want ~100 (screen center)", sy)
	}
	if depth <= 0 {
		t.Fatalf("depth = %v, want positive", depth)
	}
}

func TestCameraProjectRejectsBehindViewer(t *testing.T) {
	cam := NewCamera(0, 0, 0, geom.Angle90, 0, 320, 200)
	vx, vy, vz := cam.ToView(0, -100, 0)
	_, _, _, ok := cam.Project(vx, vy, vz)
	if ok {
		t.Fatalf("expected a point behind the viewer to fail projection")
	}
}

func TestCameraFrustumCullsBehindBox(t *testing.T) {
	cam := NewCamera(0, 0, 0, geom.Angle90, 0, 320, 200)
	behind := geom.BBox{MinX: geom.FromInt(-10), MaxX: geom.FromInt(10), MinY: geom.FromInt(-200), MaxY: geom.FromInt(-150)}
	if cam.Frustum(behind) {
		t.Fatalf("expected a box entirely behind the viewer to be culled")
	}
	ahead := geom.BBox{MinX: geom.FromInt(-10), MaxX: geom.FromInt(10), MinY: geom.FromInt(50), MaxY: geom.FromInt(100)}
	if !cam.Frustum(ahead) {
		t.Fatalf("expected a box ahead of the viewer to pass the frustum test")
	}
}
