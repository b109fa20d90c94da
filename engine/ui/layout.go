package ui

import (
	"fmt"

	"github.com/hubastard/hui/engine/geom"
)

// ===== Sizing & layout props =====

type SizeKind uint8

const (
	// SizeAuto takes the element's content-driven (intrinsic) size.
	SizeAuto SizeKind = iota
	// SizeStatic is a fixed number of pixels.
	SizeStatic
	// SizeFraction scales the space available along the axis.
	SizeFraction
)

// Size is the requested length along one axis. The zero Size is Auto.
type Size struct {
	Kind  SizeKind
	Value float32
}

func Auto() Size                { return Size{Kind: SizeAuto} }
func Static(px float32) Size    { return Size{Kind: SizeStatic, Value: px} }
func Fraction(f float32) Size   { return Size{Kind: SizeFraction, Value: f} }
func (s Size) IsAuto() bool     { return s.Kind == SizeAuto }
func (s Size) IsFraction() bool { return s.Kind == SizeFraction }

func (s Size) String() string {
	switch s.Kind {
	case SizeStatic:
		return fmt.Sprintf("Static(%g)", s.Value)
	case SizeFraction:
		return fmt.Sprintf("Fraction(%g)", s.Value)
	default:
		return "Auto"
	}
}

// Size2 holds independent sizes for the width and height axes.
type Size2 struct {
	Width, Height Size
}

func Size2Auto() Size2                 { return Size2{} }
func Size2Static(w, h float32) Size2   { return Size2{Static(w), Static(h)} }
func Size2Fraction(w, h float32) Size2 { return Size2{Fraction(w), Fraction(h)} }
func Size2Of(width, height Size) Size2 { return Size2{Width: width, Height: height} }

// Alignment positions children within leftover space along one axis.
type Alignment uint8

const (
	Begin Alignment = iota
	Center
	End
)

// offset returns how far from the start an item lands when free pixels are
// left over on its axis. Negative free space yields a negative offset for
// Center and End, letting content overflow.
func (a Alignment) offset(free float32) float32 {
	switch a {
	case Center:
		return free * 0.5
	case End:
		return free
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case Begin:
		return "Begin"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

// Align2 holds the alignment for the horizontal and vertical axes.
type Align2 struct {
	Horizontal, Vertical Alignment
}

func AlignAll(a Alignment) Align2 { return Align2{Horizontal: a, Vertical: a} }

// along splits a into main and cross axis alignment for direction d.
func (a Align2) along(d Direction) (main, cross Alignment) {
	if d == Horizontal {
		return a.Horizontal, a.Vertical
	}
	return a.Vertical, a.Horizontal
}

// Direction is the axis children are stacked along.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) main(v geom.Vec2) float32 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

func (d Direction) cross(v geom.Vec2) float32 {
	if d == Horizontal {
		return v.Y
	}
	return v.X
}

func (d Direction) point(main, cross float32) geom.Vec2 {
	if d == Horizontal {
		return geom.Vec2{X: main, Y: cross}
	}
	return geom.Vec2{X: cross, Y: main}
}

// LayoutInfo is the space a parent hands to an element.
type LayoutInfo struct {
	// Position is the top-left corner assigned to the element. It is only
	// meaningful during Process.
	Position geom.Vec2
	// MaxSize is the space available to the element on each axis.
	MaxSize geom.Vec2
	// Direction is the stacking direction of the parent.
	Direction Direction
}

// ComputeSize resolves size against the available space in layout. Auto axes
// take their value from comfy, the element's intrinsic size. Results are
// clamped to zero.
func ComputeSize(layout LayoutInfo, size Size2, comfy geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: resolveAxis(size.Width, layout.MaxSize.X, comfy.X),
		Y: resolveAxis(size.Height, layout.MaxSize.Y, comfy.Y),
	}
}

func resolveAxis(s Size, available, comfy float32) float32 {
	var v float32
	switch s.Kind {
	case SizeStatic:
		v = s.Value
	case SizeFraction:
		v = s.Value * maxf(available, 0)
	default:
		v = comfy
	}
	return maxf(v, 0)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
