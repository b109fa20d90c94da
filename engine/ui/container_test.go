package ui

import (
	"slices"
	"testing"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

func TestContainerScenario(t *testing.T) {
	c := NewContainer(
		NewRect(colors.Red).WithSize(Size2Static(50, 50)),
		NewRect(colors.Green).WithSize(Size2Static(50, 50)),
	).
		WithDirection(Horizontal).
		WithGap(5).
		WithPadding(geom.SidesAll(5)).
		WithSize(Size2Static(120, 60))

	cmds := runFrame(New(), c)

	want := []geom.Rect{geom.R(5, 5, 50, 50), geom.R(60, 5, 50, 50)}
	if got := rects(cmds); !slices.Equal(got, want) {
		t.Errorf("rects = %v, want %v", got, want)
	}
	if cmds[0].Fill != colors.Solid(colors.Red) {
		t.Errorf("first rect fill = %v, want red", cmds[0].Fill)
	}
}

func TestContainerAutoExtent(t *testing.T) {
	tests := map[string]struct {
		dir      Direction
		children []Element
		gap      float32
		padding  geom.Sides
		size     geom.Vec2
		content  geom.Vec2
	}{
		"empty": {
			dir:  Horizontal, padding: geom.SidesXY(3, 4),
			size: geom.V(6, 8), content: geom.V(0, 0),
		},
		"empty ignores gap": {
			dir:  Vertical, gap: 10,
			size: geom.V(0, 0), content: geom.V(0, 0),
		},
		"horizontal": {
			dir: Horizontal, gap: 5, padding: geom.SidesAll(2),
			children: []Element{
				NewRect(colors.Red).WithSize(Size2Static(10, 30)),
				NewRect(colors.Red).WithSize(Size2Static(20, 10)),
				NewRect(colors.Red).WithSize(Size2Static(30, 20)),
			},
			size: geom.V(60+10+4, 30+4), content: geom.V(70, 30),
		},
		"vertical": {
			dir: Vertical, gap: 1,
			children: []Element{
				NewRect(colors.Red).WithSize(Size2Static(10, 30)),
				NewRect(colors.Red).WithSize(Size2Static(20, 10)),
			},
			size: geom.V(20, 41), content: geom.V(20, 41),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(tt.children...).WithDirection(tt.dir).WithGap(tt.gap).WithPadding(tt.padding)
			res := c.Measure(MeasureContext{Layout: LayoutInfo{MaxSize: screen}})
			if res.Size != tt.size {
				t.Errorf("Size = %v, want %v", res.Size, tt.size)
			}
			if res.Content != tt.content {
				t.Errorf("Content = %v, want %v", res.Content, tt.content)
			}
			if len(res.Children) != len(tt.children) {
				t.Errorf("len(Children) = %d, want %d", len(res.Children), len(tt.children))
			}
		})
	}
}

func TestContainerAlignment(t *testing.T) {
	tests := map[string]struct {
		align Align2
		want  geom.Vec2
	}{
		"begin":       {AlignAll(Begin), geom.V(0, 0)},
		"center":      {AlignAll(Center), geom.V(75, 40)},
		"end":         {AlignAll(End), geom.V(150, 80)},
		"end, begin":  {Align2{Horizontal: End, Vertical: Begin}, geom.V(150, 0)},
		"begin, end":  {Align2{Horizontal: Begin, Vertical: End}, geom.V(0, 80)},
		"center, end": {Align2{Horizontal: Center, Vertical: End}, geom.V(75, 80)},
	}
	for name, tt := range tests {
		for _, dir := range []Direction{Horizontal, Vertical} {
			t.Run(name+"/"+dir.String(), func(t *testing.T) {
				c := NewContainer(NewRect(colors.Red).WithSize(Size2Static(50, 20))).
					WithDirection(dir).
					WithAlign(tt.align).
					WithSize(Size2Static(200, 100))
				got := rects(runFrame(New(), c))
				if len(got) != 1 || got[0].Position != tt.want {
					t.Errorf("rects = %v, want one at %v", got, tt.want)
				}
			})
		}
	}
}

func TestContainerAlignmentMirrors(t *testing.T) {
	children := func() []Element {
		return []Element{
			NewRect(colors.Red).WithSize(Size2Static(30, 10)),
			NewRect(colors.Red).WithSize(Size2Static(10, 25)),
		}
	}
	layout := func(a Alignment) []geom.Rect {
		c := NewContainer(children()...).
			WithDirection(Horizontal).
			WithGap(4).
			WithAlign(AlignAll(a)).
			WithSize(Size2Static(120, 40))
		return rects(runFrame(New(), c))
	}

	begin, end := layout(Begin), layout(End)
	if len(begin) != 2 || len(end) != 2 {
		t.Fatalf("rects = %v, %v", begin, end)
	}
	// Main axis: the run keeps its order and is shifted as a block.
	shift := end[0].Position.X - begin[0].Position.X
	if shift != 120-(30+4+10) {
		t.Errorf("main-axis shift = %g, want %g", shift, float32(120-44))
	}
	if end[1].Position.X-begin[1].Position.X != shift {
		t.Error("children shifted by different amounts")
	}
	// Cross axis: each child's distance to the far edge under End equals its
	// distance to the near edge under Begin.
	for i := range begin {
		near := begin[i].Position.Y
		far := 40 - end[i].Max().Y
		if near != far {
			t.Errorf("child %d: begin gap %g, end gap %g", i, near, far)
		}
	}
}

func TestContainerFractionUsesRemainingSpace(t *testing.T) {
	a := &probe{size: Size2Fraction(0.5, 1)}
	b := &probe{size: Size2Fraction(0.5, 0.5)}
	c := NewContainer(a, b).
		WithDirection(Horizontal).
		WithGap(10).
		WithPadding(geom.SidesAll(5)).
		WithSize(Size2Static(210, 110))

	runFrame(New(), c)

	if got, want := a.measured[0].MaxSize, geom.V(200, 100); got != want {
		t.Errorf("first child space = %v, want %v", got, want)
	}
	if got, want := b.measured[0].MaxSize, geom.V(90, 100); got != want {
		t.Errorf("second child space = %v, want %v", got, want)
	}
	want := []geom.Rect{geom.R(5, 5, 100, 100), geom.R(115, 5, 45, 50)}
	got := []geom.Rect{a.placed[0], b.placed[0]}
	if !slices.Equal(got, want) {
		t.Errorf("placed = %v, want %v", got, want)
	}
}

func TestContainerProcessSeesMeasureSpace(t *testing.T) {
	p := &probe{size: Size2Fraction(1, 1)}
	c := NewContainer(NewRect(colors.Red).WithSize(Size2Static(40, 10)), p).
		WithGap(3).
		WithPadding(geom.SidesAll(1))

	inst := New()
	inst.Begin()
	inst.Add(c, geom.V(100, 100))
	inst.End()

	if got, want := p.measured[0].MaxSize, geom.V(98, 98-10-3); got != want {
		t.Errorf("measured with %v, want %v", got, want)
	}
	if got := p.placed[0].Size; got != geom.V(98, 85) {
		t.Errorf("placed size = %v, want (98, 85)", got)
	}
	if got := p.placed[0].Position; got != geom.V(1, 14) {
		t.Errorf("placed at %v, want (1, 14)", got)
	}
}

func TestContainerDegenerateSpace(t *testing.T) {
	p := &probe{size: Size2Fraction(1, 1)}
	c := NewContainer(NewRect(colors.Red), p).
		WithGap(50).
		WithPadding(geom.SidesAll(30)).
		WithSize(Size2Static(40, 40))

	runFrame(New(), c)

	if got := p.placed[0].Size; got != (geom.Vec2{}) {
		t.Errorf("child size = %v, want (0, 0)", got)
	}
}

func TestContainerBackground(t *testing.T) {
	radius := geom.Corners[float32]{TopRight: 30}
	c := NewContainer(NewRect(colors.Red)).
		WithBackgroundColor(colors.Gray).
		WithCornerRadius(radius).
		WithPadding(geom.SidesAll(4))

	cmds := runFrame(New(), c)

	if got := kinds(cmds); !slices.Equal(got, []draw.Kind{draw.KindRectangle, draw.KindRectangle}) {
		t.Fatalf("kinds = %v", got)
	}
	bg := cmds[0]
	if bg.Rect() != geom.R(0, 0, 18, 18) {
		t.Errorf("background rect = %v, want (0, 0, 18, 18)", bg.Rect())
	}
	if !bg.HasRounded || bg.Rounded.Radius != radius || bg.Rounded.Points != draw.DefaultCornerPoints {
		t.Errorf("background corners = %+v", bg.Rounded)
	}
	if cmds[1].HasRounded {
		t.Error("child rect has rounded corners")
	}
}

func TestContainerNegativePaddingPanics(t *testing.T) {
	c := NewContainer().WithPadding(geom.Sides{Left: -1})
	mustPanic(t, "negative side inset", func() { runFrame(New(), c) })
}

func TestProcessIsDeterministic(t *testing.T) {
	tree := func() Element {
		return NewContainer(
			NewContainer(NewRect(colors.Red), NewRect(colors.Blue)).WithDirection(Horizontal).WithGap(2),
			Transform(NewRect(colors.Green).WithSize(Size2Static(20, 20))).Rotate(0.5),
			NewProgressBar(0.3),
		).WithPadding(geom.SidesAll(3)).WithAlign(AlignAll(Center))
	}
	inst := New()
	first := runFrame(inst, tree())
	second := runFrame(inst, tree())

	if !slices.Equal(first, second) {
		t.Errorf("frames differ:\n%v\n%v", first, second)
	}
}
