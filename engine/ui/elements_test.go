package ui

import (
	"math"
	"slices"
	"testing"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

func TestRect(t *testing.T) {
	tests := map[string]struct {
		rect  *Rect
		count int
	}{
		"solid":       {NewRect(colors.Red), 1},
		"gradient":    {NewRect(colors.Red).WithFill(colors.VerticalGradient(colors.Red, colors.Blue)), 1},
		"transparent": {NewRect(colors.Transparent), 0},
		"zero fill":   {&Rect{Size: Size2Static(5, 5)}, 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmds := runFrame(New(), tt.rect)
			if len(cmds) != tt.count {
				t.Fatalf("commands = %d, want %d", len(cmds), tt.count)
			}
			if tt.count == 1 && cmds[0].Fill != tt.rect.Fill {
				t.Errorf("fill = %v, want %v", cmds[0].Fill, tt.rect.Fill)
			}
		})
	}
}

func TestImageMeasure(t *testing.T) {
	images := fakeImages{1: {200, 100}, 2: {0, 0}}

	tests := map[string]struct {
		handle draw.ImageHandle
		size   Size2
		want   geom.Vec2
	}{
		"native":         {1, Size2Auto(), geom.V(200, 100)},
		"width drives":   {1, Size2Of(Static(100), Auto()), geom.V(100, 50)},
		"height drives":  {1, Size2Of(Auto(), Static(30)), geom.V(60, 30)},
		"fraction width": {1, Size2Of(Fraction(0.5), Auto()), geom.V(400, 200)},
		"both fixed":     {1, Size2Static(10, 10), geom.V(10, 10)},
		"empty image":    {2, Size2Of(Static(100), Auto()), geom.V(100, 0)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img := NewImage(tt.handle).WithSize(tt.size)
			res := img.Measure(MeasureContext{Layout: LayoutInfo{MaxSize: screen}, Images: images})
			if res.Size != tt.want {
				t.Errorf("Size = %v, want %v", res.Size, tt.want)
			}
		})
	}
}

func TestImageProcess(t *testing.T) {
	inst := New(WithImages(fakeImages{7: {64, 32}}))
	uv := geom.Corners[geom.Vec2]{
		TopLeft:    geom.V(0, 0), TopRight: geom.V(0.5, 0),
		BottomLeft: geom.V(0, 0.5), BottomRight: geom.V(0.5, 0.5),
	}

	tests := map[string]struct {
		img    *Image
		wantUV geom.Corners[geom.Vec2]
		count  int
	}{
		"default":     {NewImage(7), geom.FullUV(), 1},
		"zero uv":     {&Image{Handle: 7, Fill: colors.Solid(colors.White)}, geom.FullUV(), 1},
		"sub rect":    {NewImage(7).WithTextureUV(uv), uv, 1},
		"transparent": {NewImage(7).WithFill(colors.Solid(colors.Transparent)), geom.FullUV(), 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmds := runFrame(inst, tt.img)
			if len(cmds) != tt.count {
				t.Fatalf("commands = %d, want %d", len(cmds), tt.count)
			}
			if tt.count == 0 {
				return
			}
			c := cmds[0]
			if c.Texture != 7 || c.TextureUV != tt.wantUV {
				t.Errorf("texture = %d uv = %+v, want 7 %+v", c.Texture, c.TextureUV, tt.wantUV)
			}
			if c.Rect() != geom.R(0, 0, 64, 32) {
				t.Errorf("rect = %v, want (0, 0, 64, 32)", c.Rect())
			}
		})
	}
}

func TestImagePanics(t *testing.T) {
	tests := map[string]struct {
		inst *Instance
		want string
	}{
		"no registry":    {New(), "without an image registry"},
		"invalid handle": {New(WithImages(fakeImages{})), "invalid image handle 3"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mustPanic(t, tt.want, func() { runFrame(tt.inst, NewImage(3)) })
		})
	}
}

func TestProgressBar(t *testing.T) {
	nan := float32(math.NaN())

	tests := map[string]struct {
		value float32
		dir   Direction
		want  geom.Vec2
	}{
		"empty":         {0, Horizontal, geom.V(0, 20)},
		"quarter":       {0.25, Horizontal, geom.V(25, 20)},
		"full":          {1, Horizontal, geom.V(100, 20)},
		"over full":     {1.5, Horizontal, geom.V(100, 20)},
		"negative":      {-1, Horizontal, geom.V(0, 20)},
		"nan":           {nan, Horizontal, geom.V(0, 20)},
		"vertical half": {0.5, Vertical, geom.V(100, 10)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			bar := NewProgressBar(tt.value).WithDirection(tt.dir).WithSize(Size2Static(100, 20))
			cmds := runFrame(New(), bar)
			got := rects(cmds)
			if len(got) != 2 {
				t.Fatalf("rects = %v, want track and bar", got)
			}
			if got[0] != geom.R(0, 0, 100, 20) {
				t.Errorf("track = %v, want (0, 0, 100, 20)", got[0])
			}
			if got[1].Position != (geom.Vec2{}) || got[1].Size != tt.want {
				t.Errorf("bar = %v, want size %v at origin", got[1], tt.want)
			}
			if cmds[0].Fill != bar.Background || cmds[1].Fill != bar.Foreground {
				t.Error("track must be painted before the bar")
			}
		})
	}
}

func TestProgressBarDefaultSize(t *testing.T) {
	c := NewContainer(NewProgressBar(0.5)).WithSize(Size2Static(300, 100))
	got := rects(runFrame(New(), c))
	if got[0].Size != geom.V(300, 20) {
		t.Errorf("track size = %v, want (300, 20)", got[0].Size)
	}
}

func TestTransformerIdentity(t *testing.T) {
	r := NewRect(colors.Red).WithSize(Size2Static(30, 20))
	plain := runFrame(New(), r)
	wrapped := runFrame(New(), Transform(r))

	want := []draw.Kind{draw.KindPushTransform, draw.KindRectangle, draw.KindPopTransform}
	if got := kinds(wrapped); !slices.Equal(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if !wrapped[0].Transform.IsIdentity() {
		t.Errorf("transform = %+v, want identity", wrapped[0].Transform)
	}
	if wrapped[1] != plain[0] {
		t.Errorf("wrapped rect = %+v, want %+v", wrapped[1], plain[0])
	}
}

func TestTransformerAroundCenter(t *testing.T) {
	r := NewRect(colors.Red).WithSize(Size2Static(40, 20))
	c := NewContainer(Transform(r).Rotate(math.Pi/2)).WithPadding(geom.SidesAll(10))

	cmds := runFrame(New(), c)

	m := cmds[0].Transform
	center := geom.V(30, 20)
	if got := m.Apply(center); !nearVec(got, center) {
		t.Errorf("center moved to %v", got)
	}
	// A quarter turn maps the right edge midpoint below the center.
	if got := m.Apply(geom.V(50, 20)); !nearVec(got, geom.V(30, 40)) {
		t.Errorf("right midpoint = %v, want (30, 40)", got)
	}
}

func TestTransformerKeepsLayout(t *testing.T) {
	r := NewRect(colors.Red).WithSize(Size2Static(40, 20))
	tr := Transform(r).Scale(geom.V(3, 3)).Translate(geom.V(100, 0))
	ctx := MeasureContext{Layout: LayoutInfo{MaxSize: screen}}
	if got := tr.Measure(ctx).Size; got != geom.V(40, 20) {
		t.Errorf("Size = %v, want (40, 20)", got)
	}
}

func TestSpacer(t *testing.T) {
	c := NewContainer(NewRect(colors.Red), Space(20), NewRect(colors.Red))
	got := rects(runFrame(New(), c))
	if got[1].Position != geom.V(0, 30) {
		t.Errorf("second rect at %v, want (0, 30)", got[1].Position)
	}

	row := NewContainer(NewRect(colors.Red), Space(5), NewRect(colors.Red)).WithDirection(Horizontal)
	got = rects(runFrame(New(), row))
	if got[1].Position != geom.V(15, 0) {
		t.Errorf("second rect at %v, want (15, 0)", got[1].Position)
	}
}

func TestText(t *testing.T) {
	tests := map[string]struct {
		text  *Text
		size  geom.Vec2
		wrap  float32
		count int
	}{
		"single line": {NewText("hello"), geom.V(40, 16), 0, 1},
		"empty":       {NewText(""), geom.V(0, 0), 0, 0},
		"transparent": {NewText("hi").WithColor(colors.Transparent), geom.V(16, 16), 0, 0},
		"static size": {NewText("hi").WithSize(Size2Static(100, 50)), geom.V(100, 50), 0, 1},
		"wrap static": {NewText("abcdef").WithWrap(true).WithSize(Size2Of(Static(16), Auto())), geom.V(16, 48), 16, 1},
		"wrap auto":   {NewText("abcdefghij").WithWrap(true), geom.V(40, 32), 40, 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(tt.text).WithSize(Size2Static(40, 200))
			inst := New(WithTextMeasurer(monoMeasurer{}))
			cmds := runFrame(inst, c)

			res := tt.text.Measure(MeasureContext{Layout: LayoutInfo{MaxSize: geom.V(40, 200)}, Text: monoMeasurer{}})
			if res.Size != tt.size {
				t.Errorf("Size = %v, want %v", res.Size, tt.size)
			}
			if len(cmds) != tt.count {
				t.Fatalf("commands = %d, want %d", len(cmds), tt.count)
			}
			if tt.count == 1 && cmds[0].WrapWidth != tt.wrap {
				t.Errorf("WrapWidth = %g, want %g", cmds[0].WrapWidth, tt.wrap)
			}
		})
	}
}

func TestTextWrapsWithoutAvailableWidth(t *testing.T) {
	tests := map[string]struct {
		text *Text
		want geom.Vec2
	}{
		"static zero width": {NewText("aaaa bbbb").WithWrap(true).WithSize(Size2Of(Static(0), Auto())), geom.V(0, 144)},
		"auto in no space":  {NewText("aaaa bbbb").WithWrap(true), geom.V(8, 144)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(tt.text).WithSize(Size2Of(Static(0), Static(600)))
			cmds := runFrame(New(WithTextMeasurer(monoMeasurer{})), c)

			res := tt.text.Measure(MeasureContext{Layout: LayoutInfo{MaxSize: geom.V(0, 600)}, Text: monoMeasurer{}})
			if res.Size != tt.want {
				t.Errorf("Size = %v, want %v", res.Size, tt.want)
			}
			if len(cmds) != 1 || cmds[0].WrapWidth != minWrapWidth {
				t.Fatalf("commands = %+v, want one text with WrapWidth %d", cmds, minWrapWidth)
			}
		})
	}
}

func TestTextWithoutMeasurer(t *testing.T) {
	cmds := runFrame(New(), NewText("label"))
	if len(cmds) != 1 || cmds[0].Kind != draw.KindText || cmds[0].Text != "label" {
		t.Errorf("commands = %+v, want one text command", cmds)
	}
}

func nearVec(a, b geom.Vec2) bool {
	const eps = 1e-3
	return math.Abs(float64(a.X-b.X)) < eps && math.Abs(float64(a.Y-b.Y)) < eps
}
