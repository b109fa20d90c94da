package ui

import (
	"math"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// ProgressBar shows Value as a filled portion of a track.
type ProgressBar struct {
	Size Size2
	// Value is clamped to [0, 1] when drawn. NaN counts as 0.
	Value        float32
	Direction    Direction
	Background   colors.Fill
	Foreground   colors.Fill
	CornerRadius geom.Corners[float32]
}

// NewProgressBar returns a horizontal bar spanning the available width.
func NewProgressBar(value float32) *ProgressBar {
	return &ProgressBar{
		Size:       Size2Of(Fraction(1), Static(20)),
		Value:      value,
		Direction:  Horizontal,
		Background: colors.Solid(colors.Black.WithAlpha(0.5)),
		Foreground: colors.Solid(colors.Blue),
	}
}

func (p *ProgressBar) WithSize(s Size2) *ProgressBar          { p.Size = s; return p }
func (p *ProgressBar) WithValue(v float32) *ProgressBar       { p.Value = v; return p }
func (p *ProgressBar) WithDirection(d Direction) *ProgressBar { p.Direction = d; return p }
func (p *ProgressBar) WithBackground(f colors.Fill) *ProgressBar {
	p.Background = f
	return p
}
func (p *ProgressBar) WithForeground(f colors.Fill) *ProgressBar {
	p.Foreground = f
	return p
}
func (p *ProgressBar) WithCornerRadius(c geom.Corners[float32]) *ProgressBar {
	p.CornerRadius = c
	return p
}

func (p *ProgressBar) Name() string { return "ProgressBar" }

func (p *ProgressBar) Measure(ctx MeasureContext) Response {
	geom.ValidateCorners(p.CornerRadius)
	return Response{Size: ComputeSize(ctx.Layout, p.Size, geom.Vec2{})}
}

func (p *ProgressBar) Process(ctx ProcessContext) {
	track := ctx.Rect()
	d := p.Direction

	value := p.Value
	if math.IsNaN(float64(value)) {
		value = 0
	}
	value = clamp(value, 0, 1)

	fg := geom.Rect{
		Position: track.Position,
		Size:     d.point(d.main(track.Size)*value, d.cross(track.Size)),
	}
	ctx.Draw.Rectangle(track, p.Background, p.CornerRadius)
	ctx.Draw.Rectangle(fg, p.Foreground, p.CornerRadius)
}
