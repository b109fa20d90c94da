package draw

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// Buffer is an append-only list of commands rebuilt every frame. It tracks
// the transform stack while it is being populated so callers can query the
// accumulated transform at any point.
type Buffer struct {
	cmds  []Command
	stack []geom.Affine2 // accumulated transforms, one per open push
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		cmds:  make([]Command, 0, capacity),
		stack: make([]geom.Affine2, 0, 16),
	}
}

// Reset clears the buffer, keeping its storage for the next frame.
func (b *Buffer) Reset() {
	// Drop string references held by text commands.
	for i := range b.cmds {
		b.cmds[i].Text = ""
	}
	b.cmds = b.cmds[:0]
	b.stack = b.stack[:0]
}

func (b *Buffer) Add(c Command) { b.cmds = append(b.cmds, c) }

// Commands returns the commands in paint order. The slice is only valid until
// the next Reset.
func (b *Buffer) Commands() []Command { return b.cmds }

func (b *Buffer) Len() int { return len(b.cmds) }

// Depth returns the number of transforms pushed and not yet popped.
func (b *Buffer) Depth() int { return len(b.stack) }

// Balanced reports whether every PushTransform has been popped.
func (b *Buffer) Balanced() bool { return len(b.stack) == 0 }

// Current returns the product of all open transforms.
func (b *Buffer) Current() geom.Affine2 {
	if len(b.stack) == 0 {
		return geom.Identity()
	}
	return b.stack[len(b.stack)-1]
}

func (b *Buffer) PushTransform(t geom.Affine2) {
	b.stack = append(b.stack, b.Current().Mul(t))
	b.cmds = append(b.cmds, Command{Kind: KindPushTransform, Transform: t})
}

func (b *Buffer) PopTransform() {
	if len(b.stack) == 0 {
		panic("draw: unbalanced pop")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.cmds = append(b.cmds, Command{Kind: KindPopTransform})
}

// Rectangle appends an untextured rectangle. A zero radius omits the rounded
// corners.
func (b *Buffer) Rectangle(r geom.Rect, fill colors.Fill, radius geom.Corners[float32]) {
	c := Command{
		Kind:     KindRectangle,
		Position: r.Position,
		Size:     r.Size,
		Fill:     fill,
	}
	if geom.MaxCorner(radius) > 0 {
		c.Rounded = RoundedFromRadius(radius)
		c.HasRounded = true
	}
	b.cmds = append(b.cmds, c)
}

// Image appends a textured rectangle tinted by fill.
func (b *Buffer) Image(r geom.Rect, img ImageHandle, uv geom.Corners[geom.Vec2], fill colors.Fill, radius geom.Corners[float32]) {
	b.Rectangle(r, fill, radius)
	c := &b.cmds[len(b.cmds)-1]
	c.Texture = img
	c.TextureUV = uv
}

func (b *Buffer) Text(pos geom.Vec2, text string, font FontHandle, size float32, color colors.Color, wrapWidth float32) {
	b.cmds = append(b.cmds, Command{
		Kind:      KindText,
		Position:  pos,
		Text:      text,
		Font:      font,
		TextSize:  size,
		Color:     color,
		WrapWidth: wrapWidth,
	})
}
