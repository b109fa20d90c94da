package ui

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

// Text is a run of text drawn with a single font and color.
type Text struct {
	Text     string
	Font     draw.FontHandle
	TextSize float32
	Color    colors.Color
	Size     Size2
	// Wrap breaks lines at the element's width: its resolved width when
	// Size.Width is set, otherwise the available width. With no width left
	// every word gets its own line.
	Wrap bool
}

func NewText(s string) *Text {
	return &Text{Text: s, TextSize: 16, Color: colors.White}
}

func (t *Text) WithFont(f draw.FontHandle) *Text { t.Font = f; return t }
func (t *Text) WithTextSize(size float32) *Text  { t.TextSize = size; return t }
func (t *Text) WithColor(c colors.Color) *Text   { t.Color = c; return t }
func (t *Text) WithSize(s Size2) *Text           { t.Size = s; return t }
func (t *Text) WithWrap(enabled bool) *Text      { t.Wrap = enabled; return t }

func (t *Text) Name() string { return "Text" }

// minWrapWidth keeps wrapping on when no width is available; zero would
// disable it and measure the text as a single line.
const minWrapWidth = 1

func (t *Text) wrapWidth(layout LayoutInfo) float32 {
	if !t.Wrap {
		return 0
	}
	w := layout.MaxSize.X
	if !t.Size.Width.IsAuto() {
		w = resolveAxis(t.Size.Width, layout.MaxSize.X, 0)
	}
	return maxf(w, minWrapWidth)
}

func (t *Text) Measure(ctx MeasureContext) Response {
	var comfy geom.Vec2
	if t.Text != "" && ctx.Text != nil {
		comfy = ctx.Text.MeasureText(t.Font, t.Text, t.TextSize, t.wrapWidth(ctx.Layout))
	}
	return Response{Size: ComputeSize(ctx.Layout, t.Size, comfy)}
}

func (t *Text) Process(ctx ProcessContext) {
	if t.Text == "" || t.Color.IsTransparent() {
		return
	}
	ctx.Draw.Text(ctx.Layout.Position, t.Text, t.Font, t.TextSize, t.Color, t.wrapWidth(ctx.Layout))
}
