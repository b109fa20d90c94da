// Package geom holds the float32 value types shared by layout and drawing.
// The coordinate space has its origin in the top-left corner with the axes
// extending right and down.
package geom

import "fmt"

// Vec2 is a 2D point or extent in pixels.
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) MulVec(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Div(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }
func (v Vec2) Max(o Vec2) Vec2    { return Vec2{maxf(v.X, o.X), maxf(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2    { return Vec2{minf(v.X, o.X), minf(v.Y, o.Y)} }
func (v Vec2) Half() Vec2         { return v.Mul(0.5) }

// NonNegative clamps both components to >= 0.
func (v Vec2) NonNegative() Vec2 { return v.Max(Vec2{}) }

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Position Vec2
	Size     Vec2
}

func R(x, y, w, h float32) Rect { return Rect{Position: Vec2{x, y}, Size: Vec2{w, h}} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return r.Position.Add(r.Size) }

// Center returns the center of the rectangle.
func (r Rect) Center() Vec2 { return r.Position.Add(r.Size.Half()) }

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return p.X >= r.Position.X && p.Y >= r.Position.Y && p.X < m.X && p.Y < m.Y
}

// Inset shrinks r by s, clamping the size to zero.
func (r Rect) Inset(s Sides) Rect {
	return Rect{
		Position: r.Position.Add(s.TopLeft()),
		Size:     Vec2{r.Size.X - s.Horizontal(), r.Size.Y - s.Vertical()}.NonNegative(),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.Position.X, r.Position.Y, r.Size.X, r.Size.Y)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
