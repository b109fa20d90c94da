// Package draw defines the backend-agnostic draw command stream produced by
// the ui package each frame.
//
// Commands are stored in paint order (back to front). PushTransform applies
// to every command emitted after it until the matching PopTransform.
package draw

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// ImageHandle identifies an image in an image registry. Zero means no image.
type ImageHandle uint32

// FontHandle identifies a font in a font library. Zero selects the default font.
type FontHandle uint32

type Kind uint8

const (
	KindRectangle Kind = iota
	KindText
	KindPushTransform
	KindPopTransform
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindText:
		return "Text"
	case KindPushTransform:
		return "PushTransform"
	case KindPopTransform:
		return "PopTransform"
	default:
		panic("unreachable")
	}
}

// DefaultCornerPoints is the number of points used to approximate one
// rounded corner.
const DefaultCornerPoints = 8

// RoundedCorners describes rounded corners of a rectangle. Clamping each
// radius to half the shorter side is left to the renderer.
type RoundedCorners struct {
	Radius geom.Corners[float32]
	Points uint32
}

func RoundedFromRadius(r geom.Corners[float32]) RoundedCorners {
	return RoundedCorners{Radius: r, Points: DefaultCornerPoints}
}

// Command is a single drawing operation. Kind selects which fields are
// meaningful:
//
//	KindRectangle: Position, Size, Fill, Texture, TextureUV, Rounded, HasRounded
//	KindText:      Position, Text, Font, TextSize, Color, WrapWidth
//	KindPushTransform: Transform
//	KindPopTransform:  none
type Command struct {
	Kind Kind

	Position geom.Vec2
	Size     geom.Vec2

	Fill       colors.Fill
	Texture    ImageHandle
	TextureUV  geom.Corners[geom.Vec2]
	Rounded    RoundedCorners
	HasRounded bool

	Text      string
	Font      FontHandle
	TextSize  float32
	Color     colors.Color
	WrapWidth float32

	Transform geom.Affine2
}

// Rect returns the rectangle covered by a Rectangle command.
func (c *Command) Rect() geom.Rect {
	return geom.Rect{Position: c.Position, Size: c.Size}
}

// Renderer consumes a finished frame. Command order is paint order.
type Renderer interface {
	Render(buf *Buffer, viewport geom.Vec2)
}
