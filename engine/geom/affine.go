package geom

import "math"

// Affine2 is a 2D affine transformation in row-major 2x3 form:
//
//	| A  B  C |
//	| D  E  F |
//
// which maps (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Affine2 struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation.
func Identity() Affine2 {
	return Affine2{A: 1, E: 1}
}

// Translate returns a translation by v.
func Translate(v Vec2) Affine2 {
	return Affine2{A: 1, C: v.X, E: 1, F: v.Y}
}

// Scale returns a scale by s around the origin.
func Scale(s Vec2) Affine2 {
	return Affine2{A: s.X, E: s.Y}
}

// Rotate returns a rotation by angle radians around the origin.
func Rotate(angle float32) Affine2 {
	sin, cos := math.Sincos(float64(angle))
	c, s := float32(cos), float32(sin)
	return Affine2{
		A: c, B: -s,
		D: s, E: c,
	}
}

// Mul returns m * o: o is applied first, then m.
func (m Affine2) Mul(o Affine2) Affine2 {
	return Affine2{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// Apply transforms the point p.
func (m Affine2) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transformation. A singular matrix yields the
// identity.
func (m Affine2) Invert() Affine2 {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Affine2{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}
}

func (m Affine2) IsIdentity() bool {
	return m == Identity()
}

// Around returns the transformation that applies m with pivot as origin.
func (m Affine2) Around(pivot Vec2) Affine2 {
	return Translate(pivot).Mul(m).Mul(Translate(Vec2{-pivot.X, -pivot.Y}))
}
