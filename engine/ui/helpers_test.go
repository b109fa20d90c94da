package ui

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

var screen = geom.V(800, 600)

// runFrame builds a single frame with root e and returns a copy of its
// commands.
func runFrame(inst *Instance, e Element) []draw.Command {
	inst.Begin()
	inst.Add(e, screen)
	inst.End()
	return slices.Clone(inst.Commands())
}

func rects(cmds []draw.Command) []geom.Rect {
	var out []geom.Rect
	for i := range cmds {
		if cmds[i].Kind == draw.KindRectangle {
			out = append(out, cmds[i].Rect())
		}
	}
	return out
}

func kinds(cmds []draw.Command) []draw.Kind {
	out := make([]draw.Kind, len(cmds))
	for i := range cmds {
		out[i] = cmds[i].Kind
	}
	return out
}

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %q", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic %q, want it to contain %q", msg, want)
		}
	}()
	f()
}

// monoMeasurer lays text out in an 8x16 monospace grid.
type monoMeasurer struct{}

func (monoMeasurer) MeasureText(_ draw.FontHandle, text string, size, maxWidth float32) geom.Vec2 {
	const cw, lh = 8, 16
	w := float32(len(text) * cw)
	lines := float32(1)
	if maxWidth > 0 && w > maxWidth {
		perLine := max(int(maxWidth)/cw, 1)
		lines = float32((len(text) + perLine - 1) / perLine)
		w = float32(min(perLine, len(text)) * cw)
	}
	return geom.V(w, lines*lh)
}

type fakeImages map[draw.ImageHandle][2]int

func (f fakeImages) ImageSize(h draw.ImageHandle) (int, int, bool) {
	s, ok := f[h]
	return s[0], s[1], ok
}

// probe records the layouts it is measured and processed with.
type probe struct {
	size     Size2
	measured []LayoutInfo
	placed   []geom.Rect
}

func (p *probe) Name() string { return "probe" }

func (p *probe) Measure(ctx MeasureContext) Response {
	p.measured = append(p.measured, ctx.Layout)
	return Response{Size: ComputeSize(ctx.Layout, p.size, geom.Vec2{})}
}

func (p *probe) Process(ctx ProcessContext) {
	p.placed = append(p.placed, ctx.Rect())
}
