package ui

import "github.com/hubastard/hui/engine/geom"

// Interactable makes its element respond to the pointer. The result of each
// frame is stored under Key and read with Instance.Interaction.
type Interactable struct {
	Key     StateKey
	Element Element
}

func Interact(key StateKey, e Element) *Interactable {
	return &Interactable{Key: key, Element: e}
}

func (it *Interactable) Name() string { return "Interactable" }

func (it *Interactable) Measure(ctx MeasureContext) Response {
	return it.Element.Measure(ctx)
}

func (it *Interactable) Process(ctx ProcessContext) {
	ctx.registerHit(it.Key, it.Element)
	it.Element.Process(ctx)
}

// hitTransformer is implemented by wrappers that draw their element
// somewhere other than its layout rectangle.
type hitTransformer interface {
	hitTransform(r geom.Rect) geom.Affine2
}

func hitTransformOf(e Element, r geom.Rect) geom.Affine2 {
	if ht, ok := e.(hitTransformer); ok {
		return ht.hitTransform(r)
	}
	return geom.Identity()
}

// registerHit records the element's rectangle for pointer resolution at End,
// together with the transform e will be drawn through.
func (ctx ProcessContext) registerHit(key StateKey, e Element) {
	if ctx.hits == nil {
		return
	}
	rect := ctx.Rect()
	drawn := ctx.Draw.Current().Mul(hitTransformOf(e, rect))
	*ctx.hits = append(*ctx.hits, hitRegion{
		key:     key,
		rect:    rect,
		inverse: drawn.Invert(),
	})
}

// hitRegion is an interactable rectangle in layout space together with the
// inverse of the transform it was drawn with.
type hitRegion struct {
	key     StateKey
	rect    geom.Rect
	inverse geom.Affine2
}

func (h *hitRegion) contains(screen geom.Vec2) bool {
	return h.rect.Contains(h.inverse.Apply(screen))
}
