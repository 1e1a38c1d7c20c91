package render

import (
	"math"

	"github.com/lixenwraith/doomcore/geom"
)

// fov is the horizontal field of view the screen-space projection assumes;
// spec.md leaves this unspecified, so this follows the historical Doom
// value (90 degrees) rather than inventing a different one.
const fov = 90.0 * math.Pi / 180.0

// Camera is the view matrix spec §4.7 asks for, built once per frame from
// the player mobj's (x, y, viewz) and (angle, lookdir). Everything
// downstream (seg transform, flat transform, sprite billboarding) only
// ever calls through Camera's World* methods, never touches player state
// directly.
type Camera struct {
	X, Y, Z    float64 // world-space eye position (geom.Fixed converted once here)
	sin, cos   float64 // unit heading vector, angle measured from Camera.ToView
	pitch      float64 // radians, positive looking up
	halfFovTan float64
	Width      int
	Height     int
}

// NewCamera converts the fixed-point simulation state to float64 at the
// render boundary: everything upstream of this package stays Fixed-only
// for determinism (spec §5); rendering is a pure presentation function
// with no feedback into the tic, so float64 here costs nothing.
func NewCamera(x, y, z geom.Fixed, angle geom.Angle, lookdir geom.Angle, width, height int) *Camera {
	c := &Camera{
		X: x.ToFloat(), Y: y.ToFloat(), Z: z.ToFloat(),
		pitch:      float64(lookdir.SignedInt32()) / 4294967296.0 * 2 * math.Pi,
		halfFovTan: math.Tan(fov / 2),
		Width:      width,
		Height:     height,
	}
	c.sin, c.cos = angle.Sin().ToFloat(), angle.Cos().ToFloat()
	return c
}

// ToView rotates and translates a world-space point into view space: X
// increases to the camera's right, Y increases into the screen, Z is
// world-up unchanged by yaw (lookdir is applied separately in Project
// since it only ever affects the vertical screen offset, matching the
// original renderer's pitch-as-vertical-shear treatment rather than a
// full 3D pitch rotation).
func (c *Camera) ToView(wx, wy, wz float64) (vx, vy, vz float64) {
	dx, dy := wx-c.X, wy-c.Y
	vx = dx*c.sin - dy*c.cos
	vy = dx*c.cos + dy*c.sin
	vz = wz - c.Z
	return
}

// Project maps a view-space point to screen pixel coordinates plus its
// view-space depth (distance along the view axis, used for the
// framebuffer's depth test). ok is false when the point is behind the
// camera and must be clipped before projecting (spec §4.7 "near-plane
// clip") rather than projected through a division by a near-zero/negative
// depth.
func (c *Camera) Project(vx, vy, vz float64) (sx, sy float64, depth float64, ok bool) {
	const nearPlane = 4.0
	if vy < nearPlane {
		return 0, 0, vy, false
	}
	screenX := vx / vy / c.halfFovTan
	pitchShift := c.pitch * vy // more pitch shift the farther away a point is, matching perspective
	screenY := (vz + pitchShift) / vy / c.halfFovTan * (float64(c.Width) / float64(c.Height))
	sx = (screenX + 1) / 2 * float64(c.Width)
	sy = (1 - screenY) / 2 * float64(c.Height)
	return sx, sy, vy, true
}

// Frustum reports whether a world-space axis-aligned box could be visible:
// the near-plane test plus the horizontal half-angle test used to prune
// BSP far children before descending (spec §4.7 "test the far child's
// bbox against the view frustum").
func (c *Camera) Frustum(box geom.BBox) bool {
	corners := [4][2]float64{
		{box.MinX.ToFloat(), box.MinY.ToFloat()},
		{box.MinX.ToFloat(), box.MaxY.ToFloat()},
		{box.MaxX.ToFloat(), box.MinY.ToFloat()},
		{box.MaxX.ToFloat(), box.MaxY.ToFloat()},
	}
	halfAngle := fov/2 + 0.35 // small slack so edge-straddling boxes aren't dropped
	for _, corner := range corners {
		vx, vy := c.cornerToView(corner[0], corner[1])
		if vy <= 0 {
			continue
		}
		angle := math.Atan2(vx, vy)
		if angle > -halfAngle && angle < halfAngle {
			return true
		}
	}
	// All four corners could still straddle the frustum even if none of
	// their individual angles fall inside it (a wide box dead ahead); fall
	// back to a depth-only check so such boxes are never wrongly culled.
	anyInFront := false
	for _, corner := range corners {
		_, vy := c.cornerToView(corner[0], corner[1])
		if vy > 0 {
			anyInFront = true
		}
	}
	return anyInFront
}

func (c *Camera) cornerToView(wx, wy float64) (vx, vy float64) {
	dx, dy := wx-c.X, wy-c.Y
	vx = dx*c.sin - dy*c.cos
	vy = dx*c.cos + dy*c.sin
	return
}
