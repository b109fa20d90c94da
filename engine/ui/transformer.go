package ui

import "github.com/hubastard/hui/engine/geom"

// Transformer draws its element through an affine transform applied about
// the center of the element's rectangle. Layout is unaffected.
type Transformer struct {
	Transform geom.Affine2
	Element   Element
}

// Transform wraps e in an identity Transformer.
func Transform(e Element) *Transformer {
	return &Transformer{Transform: geom.Identity(), Element: e}
}

func (t *Transformer) Translate(v geom.Vec2) *Transformer {
	t.Transform = t.Transform.Mul(geom.Translate(v))
	return t
}

func (t *Transformer) Scale(s geom.Vec2) *Transformer {
	t.Transform = t.Transform.Mul(geom.Scale(s))
	return t
}

// Rotate rotates by angle radians, clockwise on screen.
func (t *Transformer) Rotate(angle float32) *Transformer {
	t.Transform = t.Transform.Mul(geom.Rotate(angle))
	return t
}

func (t *Transformer) Name() string { return "Transformer" }

func (t *Transformer) Measure(ctx MeasureContext) Response {
	return t.Element.Measure(ctx)
}

func (t *Transformer) Process(ctx ProcessContext) {
	ctx.Draw.PushTransform(t.Transform.Around(ctx.Rect().Center()))
	t.Element.Process(ctx)
	ctx.Draw.PopTransform()
}

// hitTransform is the transform the element ends up drawn through, nested
// wrappers included, since they all share the rectangle r.
func (t *Transformer) hitTransform(r geom.Rect) geom.Affine2 {
	return t.Transform.Around(r.Center()).Mul(hitTransformOf(t.Element, r))
}
