package geom

import "fmt"

// Sides holds one inset per edge, used for padding.
type Sides struct {
	Top, Bottom, Left, Right float32
}

// SidesAll returns Sides with the same inset on every edge.
func SidesAll(v float32) Sides { return Sides{Top: v, Bottom: v, Left: v, Right: v} }

// SidesXY returns Sides with h on the left/right edges and v on the top/bottom edges.
func SidesXY(h, v float32) Sides { return Sides{Top: v, Bottom: v, Left: h, Right: h} }

func (s Sides) Horizontal() float32 { return s.Left + s.Right }
func (s Sides) Vertical() float32   { return s.Top + s.Bottom }

// Total returns the summed insets along each axis.
func (s Sides) Total() Vec2 { return Vec2{s.Horizontal(), s.Vertical()} }

// TopLeft returns the offset from the outer to the inner top-left corner.
func (s Sides) TopLeft() Vec2 { return Vec2{s.Left, s.Top} }

// Validate panics if any inset is negative.
func (s Sides) Validate() {
	if s.Top < 0 || s.Bottom < 0 || s.Left < 0 || s.Right < 0 {
		panic(fmt.Sprintf("geom: negative side inset %+v", s))
	}
}

// Corners holds one value per corner, e.g. a radius.
type Corners[T any] struct {
	TopLeft, TopRight, BottomLeft, BottomRight T
}

// CornersAll returns Corners with v in every corner.
func CornersAll[T any](v T) Corners[T] {
	return Corners[T]{TopLeft: v, TopRight: v, BottomLeft: v, BottomRight: v}
}

// MaxCorner returns the largest of the four values.
func MaxCorner(c Corners[float32]) float32 {
	return maxf(maxf(c.TopLeft, c.TopRight), maxf(c.BottomLeft, c.BottomRight))
}

// ValidateCorners panics if any radius is negative.
func ValidateCorners(c Corners[float32]) {
	if c.TopLeft < 0 || c.TopRight < 0 || c.BottomLeft < 0 || c.BottomRight < 0 {
		panic(fmt.Sprintf("geom: negative corner radius %+v", c))
	}
}

// FullUV is the texture mapping covering a whole texture.
func FullUV() Corners[Vec2] {
	return Corners[Vec2]{
		TopLeft:     Vec2{0, 0},
		TopRight:    Vec2{1, 0},
		BottomLeft:  Vec2{0, 1},
		BottomRight: Vec2{1, 1},
	}
}
