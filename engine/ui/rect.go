package ui

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// Rect is a filled rectangle.
type Rect struct {
	Size         Size2
	Fill         colors.Fill
	CornerRadius geom.Corners[float32]
}

// NewRect returns a 10x10 rectangle filled with col.
func NewRect(col colors.Color) *Rect {
	return &Rect{Size: Size2Static(10, 10), Fill: colors.Solid(col)}
}

func (r *Rect) WithSize(s Size2) *Rect       { r.Size = s; return r }
func (r *Rect) WithFill(f colors.Fill) *Rect { r.Fill = f; return r }
func (r *Rect) WithCornerRadius(c geom.Corners[float32]) *Rect {
	r.CornerRadius = c
	return r
}

func (r *Rect) Name() string { return "Rect" }

func (r *Rect) Measure(ctx MeasureContext) Response {
	geom.ValidateCorners(r.CornerRadius)
	return Response{Size: ComputeSize(ctx.Layout, r.Size, geom.Vec2{})}
}

func (r *Rect) Process(ctx ProcessContext) {
	if r.Fill.IsTransparent() {
		return
	}
	ctx.Draw.Rectangle(ctx.Rect(), r.Fill, r.CornerRadius)
}
