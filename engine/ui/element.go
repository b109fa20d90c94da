package ui

import (
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

// Element is a node of the per-frame UI tree.
//
// Measure reports the size the element wants for the space in ctx.Layout
// without emitting anything. Process receives the element's final rectangle
// (ctx.Layout.Position, ctx.Measure.Size) together with the Response returned
// by Measure, emits draw commands and processes children.
type Element interface {
	Name() string
	Measure(ctx MeasureContext) Response
	Process(ctx ProcessContext)
}

// TextMeasurer sizes a run of text. A positive maxWidth enables word
// wrapping at that width.
type TextMeasurer interface {
	MeasureText(font draw.FontHandle, text string, size, maxWidth float32) geom.Vec2
}

// ImageSizer reports the intrinsic pixel size of a registered image.
type ImageSizer interface {
	ImageSize(img draw.ImageHandle) (w, h int, ok bool)
}

// Response is the result of measuring an element.
type Response struct {
	// Size is the element's desired outer size.
	Size geom.Vec2
	// Content is the extent of the element's children including gaps,
	// excluding padding. Zero for leaves.
	Content geom.Vec2
	// Children holds the child measurements in declaration order, reused by
	// Process so that layout matches measurement exactly.
	Children []Response
}

type MeasureContext struct {
	Layout LayoutInfo
	State  *StateMap
	Text   TextMeasurer
	Images ImageSizer

	arena *responseArena
}

// WithLayout returns a copy of ctx for measuring a child in layout.
func (ctx MeasureContext) WithLayout(layout LayoutInfo) MeasureContext {
	ctx.Layout = layout
	return ctx
}

// responses returns a zeroed slice of n responses valid for the current frame.
func (ctx MeasureContext) responses(n int) []Response {
	if n == 0 {
		return nil
	}
	if ctx.arena == nil {
		return make([]Response, n)
	}
	return ctx.arena.alloc(n)
}

type ProcessContext struct {
	Layout  LayoutInfo
	Measure Response
	Draw    *draw.Buffer
	State   *StateMap
	Text    TextMeasurer
	Images  ImageSizer

	hits *[]hitRegion
}

// Rect returns the final rectangle assigned to the element.
func (ctx ProcessContext) Rect() geom.Rect {
	return geom.Rect{Position: ctx.Layout.Position, Size: ctx.Measure.Size}
}

// WithChild returns a copy of ctx for processing a child placed in layout
// with its measurement m.
func (ctx ProcessContext) WithChild(layout LayoutInfo, m Response) ProcessContext {
	ctx.Layout = layout
	ctx.Measure = m
	return ctx
}

const arenaChunk = 256

// responseArena hands out Response slices from reusable chunks. Slices are
// never moved once handed out, so children measured early in a frame stay
// valid while later siblings allocate.
type responseArena struct {
	chunks [][]Response
	cur    int
	off    int
}

func (a *responseArena) alloc(n int) []Response {
	for a.cur < len(a.chunks) {
		chunk := a.chunks[a.cur]
		if a.off+n <= len(chunk) {
			s := chunk[a.off : a.off+n : a.off+n]
			a.off += n
			clear(s)
			return s
		}
		a.cur++
		a.off = 0
	}
	size := arenaChunk
	if n > size {
		size = n
	}
	a.chunks = append(a.chunks, make([]Response, size))
	a.cur = len(a.chunks) - 1
	a.off = n
	return a.chunks[a.cur][:n:n]
}

func (a *responseArena) reset() {
	a.cur = 0
	a.off = 0
}
