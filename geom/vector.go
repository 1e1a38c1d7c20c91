package geom

// Vec2 is a 2D point or vector in Fixed map units.
type Vec2 struct {
	X, Y Fixed
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s Fixed) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }

// LengthSq returns |v|^2, useful for distance comparisons that avoid Sqrt.
func (v Vec2) LengthSq() Fixed {
	return v.X.Mul(v.X) + v.Y.Mul(v.Y)
}

func (v Vec2) Length() Fixed {
	return v.LengthSq().Sqrt()
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v is the origin.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X.Div(l), v.Y.Div(l)}
}

// Cross returns the 2D cross product (z-component) of v and o: positive
// when o is counter-clockwise from v.
func (v Vec2) Cross(o Vec2) Fixed {
	return v.X.Mul(o.Y) - v.Y.Mul(o.X)
}

func (v Vec2) Dot(o Vec2) Fixed {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y)
}

// Distance returns |a-b|.
func Distance(a, b Vec2) Fixed {
	return a.Sub(b).Length()
}
