package geom

import "math"

// Angle is a binary angle measurement (BAM): a full circle is 1<<32
// discrete units. Addition and subtraction wrap naturally via uint32
// overflow, so turning never drifts the way repeated float64 adds would —
// the determinism property spec.md §5 and §8.6 require.
type Angle uint32

const (
	Angle90  Angle = 1 << 30
	Angle180 Angle = 1 << 31
	Angle270 Angle = Angle90 + Angle180
	AngleMax Angle = 0 // 1<<32 wraps to 0; a full turn
)

const lutBits = 13
const lutSize = 1 << lutBits // 8192-entry sine table, ~0.044 degree resolution

var sinLUT [lutSize]Fixed

func init() {
	for i := 0; i < lutSize; i++ {
		rad := 2 * math.Pi * float64(i) / float64(lutSize)
		sinLUT[i] = FromFloat(math.Sin(rad))
	}
}

// index maps the angle's top lutBits into the table, matching the
// teacher's angle-to-LUT shift idiom (vmath.Sin/Cos) but scaled to a
// 32-bit BAM instead of Q16.16 angle units.
func (a Angle) index() uint32 {
	return uint32(a) >> (32 - lutBits)
}

func (a Angle) Sin() Fixed { return sinLUT[a.index()] }
func (a Angle) Cos() Fixed { return sinLUT[(a+Angle90).index()] }

// FromDegrees builds a BAM angle from a float64 degree value, only ever
// used to initialise package-level constants (sim's autoaimCone, player's
// maxLookDir) — never on the tic hot path.
func FromDegrees(deg float64) Angle {
	frac := math.Mod(deg, 360)
	if frac < 0 {
		frac += 360
	}
	return Angle(frac / 360 * 4294967296.0)
}

// ToVertex returns the unit direction vector for the angle, in Fixed.
func (a Angle) ToVertex() (Fixed, Fixed) {
	return a.Cos(), a.Sin()
}

// BetweenPoints returns the BAM angle from (x1,y1) to (x2,y2).
func BetweenPoints(x1, y1, x2, y2 Fixed) Angle {
	dx, dy := (x2 - x1).ToFloat(), (y2 - y1).ToFloat()
	if dx == 0 && dy == 0 {
		return 0
	}
	rad := math.Atan2(dy, dx)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return Angle(rad / (2 * math.Pi) * 4294967296.0)
}

// Diff returns b-a wrapped to an unsigned Angle; SignedInt32 of the result
// is the shortest signed difference, in [-Angle180, Angle180).
func Diff(a, b Angle) Angle {
	return b - a
}

// SignedInt32 reinterprets an Angle (typically a Diff result) as a signed
// turn amount in raw BAM units, used by AI code deciding whether to turn
// left or right.
func (a Angle) SignedInt32() int32 { return int32(a) }
