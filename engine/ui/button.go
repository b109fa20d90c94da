package ui

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

// Button is a padded, centered label that reacts to the pointer. Its
// interaction is stored under Key like an Interactable's.
type Button struct {
	Key          StateKey
	Label        string
	Font         draw.FontHandle
	TextSize     float32
	TextColor    colors.Color
	Background   colors.Color
	Padding      geom.Sides
	Size         Size2
	CornerRadius geom.Corners[float32]
}

func NewButton(key StateKey, label string) *Button {
	return &Button{
		Key:        key,
		Label:      label,
		TextSize:   16,
		TextColor:  colors.Black,
		Background: colors.White,
		Padding:    geom.SidesAll(10),
	}
}

func (b *Button) WithBackground(c colors.Color) *Button { b.Background = c; return b }
func (b *Button) WithTextColor(c colors.Color) *Button  { b.TextColor = c; return b }
func (b *Button) WithTextSize(size float32) *Button     { b.TextSize = size; return b }
func (b *Button) WithFont(f draw.FontHandle) *Button    { b.Font = f; return b }
func (b *Button) WithPadding(p geom.Sides) *Button      { b.Padding = p; return b }
func (b *Button) WithSize(s Size2) *Button              { b.Size = s; return b }
func (b *Button) WithCornerRadius(c geom.Corners[float32]) *Button {
	b.CornerRadius = c
	return b
}

// Clicked reports whether the button was clicked in the last finished frame.
func (b *Button) Clicked(inst *Instance) bool { return inst.Interaction(b.Key).Clicked }

func (b *Button) Name() string { return "Button" }

func (b *Button) labelSize(ctx MeasureContext) geom.Vec2 {
	if b.Label == "" || ctx.Text == nil {
		return geom.Vec2{}
	}
	return ctx.Text.MeasureText(b.Font, b.Label, b.TextSize, 0)
}

func (b *Button) Measure(ctx MeasureContext) Response {
	b.Padding.Validate()
	geom.ValidateCorners(b.CornerRadius)
	label := b.labelSize(ctx)
	return Response{
		Size:    ComputeSize(ctx.Layout, b.Size, label.Add(b.Padding.Total())),
		Content: label,
	}
}

func (b *Button) Process(ctx ProcessContext) {
	ctx.registerHit(b.Key, nil)
	rect := ctx.Rect()

	bg := b.Background
	if ctx.State != nil {
		st, _ := GetState[Interaction](ctx.State, b.Key)
		switch {
		case st.Pressed:
			bg = shade(bg, 0.85)
		case st.Hovered:
			bg = shade(bg, 1.05)
		}
	}
	if !bg.IsTransparent() {
		ctx.Draw.Rectangle(rect, colors.Solid(bg), b.CornerRadius)
	}

	if b.Label == "" || b.TextColor.IsTransparent() {
		return
	}
	inner := rect.Inset(b.Padding)
	label := ctx.Measure.Content
	pos := inner.Position.Add(inner.Size.Sub(label).Half())
	ctx.Draw.Text(pos, b.Label, b.Font, b.TextSize, b.TextColor, 0)
}

func shade(c colors.Color, k float32) colors.Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp(c[i]*k, 0, 1)
	}
	return c
}
