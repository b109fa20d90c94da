package ui

import (
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/geom"
)

// Container stacks its elements along Direction, separated by Gap and
// surrounded by Padding.
type Container struct {
	Size      Size2
	Direction Direction
	Gap       float32
	Padding   geom.Sides
	// Align positions the children: along the main axis as a block when
	// they leave space over, across the main axis individually.
	Align Align2
	// Background is painted over the full rectangle behind the children.
	// A transparent fill draws nothing.
	Background   colors.Fill
	CornerRadius geom.Corners[float32]
	Elements     []Element
}

// NewContainer returns an auto-sized vertical container.
func NewContainer(children ...Element) *Container {
	return &Container{
		Size:      Size2Auto(),
		Direction: Vertical,
		Elements:  children,
	}
}

func (c *Container) WithSize(s Size2) *Container             { c.Size = s; return c }
func (c *Container) WithDirection(d Direction) *Container    { c.Direction = d; return c }
func (c *Container) WithGap(g float32) *Container            { c.Gap = g; return c }
func (c *Container) WithPadding(p geom.Sides) *Container     { c.Padding = p; return c }
func (c *Container) WithAlign(a Align2) *Container           { c.Align = a; return c }
func (c *Container) WithBackground(f colors.Fill) *Container { c.Background = f; return c }
func (c *Container) WithBackgroundColor(col colors.Color) *Container {
	c.Background = colors.Solid(col)
	return c
}
func (c *Container) WithCornerRadius(r geom.Corners[float32]) *Container {
	c.CornerRadius = r
	return c
}

// Add appends children.
func (c *Container) Add(children ...Element) *Container {
	c.Elements = append(c.Elements, children...)
	return c
}

func (c *Container) Name() string { return "Container" }

// innerMax is the space handed to the children: the container's own size
// where it is fixed, the parent's space where it is Auto, minus padding.
func (c *Container) innerMax(layout LayoutInfo) geom.Vec2 {
	outer := ComputeSize(layout, c.Size, layout.MaxSize)
	return outer.Sub(c.Padding.Total()).NonNegative()
}

func (c *Container) Measure(ctx MeasureContext) Response {
	c.Padding.Validate()
	geom.ValidateCorners(c.CornerRadius)

	d := c.Direction
	inner := c.innerMax(ctx.Layout)
	remaining := d.main(inner)
	crossMax := d.cross(inner)

	children := ctx.responses(len(c.Elements))
	var totalMain, maxCross float32
	for i, el := range c.Elements {
		if i > 0 {
			totalMain += c.Gap
			remaining -= c.Gap
		}
		res := el.Measure(ctx.WithLayout(LayoutInfo{
			MaxSize:   d.point(maxf(remaining, 0), crossMax),
			Direction: d,
		}))
		children[i] = res
		m := d.main(res.Size)
		totalMain += m
		remaining -= m
		maxCross = maxf(maxCross, d.cross(res.Size))
	}

	content := d.point(totalMain, maxCross)
	return Response{
		Size:     ComputeSize(ctx.Layout, c.Size, content.Add(c.Padding.Total())),
		Content:  content,
		Children: children,
	}
}

func (c *Container) Process(ctx ProcessContext) {
	rect := ctx.Rect()
	if !c.Background.IsTransparent() {
		ctx.Draw.Rectangle(rect, c.Background, c.CornerRadius)
	}

	d := c.Direction
	inner := rect.Inset(c.Padding)
	mainAlign, crossAlign := c.Align.along(d)

	// Leftover main-axis space shifts the whole run; it is never spread
	// between children.
	free := maxf(d.main(inner.Size)-d.main(ctx.Measure.Content), 0)
	cursor := mainAlign.offset(free)

	// Constraints are recomputed exactly as in Measure so children see the
	// same MaxSize in both passes.
	innerMax := c.innerMax(ctx.Layout)
	remaining := d.main(innerMax)

	for i, el := range c.Elements {
		res := ctx.Measure.Children[i]
		if i > 0 {
			remaining -= c.Gap
		}
		cross := crossAlign.offset(d.cross(inner.Size) - d.cross(res.Size))
		el.Process(ctx.WithChild(LayoutInfo{
			Position:  inner.Position.Add(d.point(cursor, cross)),
			MaxSize:   d.point(maxf(remaining, 0), d.cross(innerMax)),
			Direction: d,
		}, res))
		m := d.main(res.Size)
		cursor += m + c.Gap
		remaining -= m
	}
}
