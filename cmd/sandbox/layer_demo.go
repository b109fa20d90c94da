package main

import (
	"math"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/profiler"
	"github.com/hubastard/hui/engine/ui"
)

var (
	keyReset = ui.Key("demo.reset")
	keySpin  = ui.Key("demo.spin")
	keyHover = ui.Key("demo.hover")
)

// LayerDemo shows the layout features: alignment, fractional sizes, rounded
// corners, transforms, images and buttons.
type LayerDemo struct {
	app  *App
	inst *ui.Instance

	t        float32
	spinning bool
	clicks   int
}

func (l *LayerDemo) OnAttach(e *core.Engine) { l.spinning = true }
func (l *LayerDemo) OnDetach(e *core.Engine) {}

func (l *LayerDemo) OnUpdate(e *core.Engine, dt float64) {
	if l.spinning {
		l.t += float32(dt)
	}
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerDemo) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDemo.OnRender")()

	l.app.frame(e, l.inst, l.build)

	if l.inst.Interaction(keyReset).Clicked {
		l.clicks++
		l.t = 0
	}
	if l.inst.Interaction(keySpin).Clicked {
		l.clicks++
		l.spinning = !l.spinning
	}
}

func (l *LayerDemo) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *LayerDemo) build() ui.Element {
	panel := colors.Black.WithAlpha(0.35)

	alignRow := ui.NewContainer().WithDirection(ui.Horizontal).WithGap(5)
	for _, a := range []ui.Alignment{ui.Begin, ui.Center, ui.End} {
		alignRow.Add(ui.NewContainer(
			ui.NewRect(colors.Red).WithSize(ui.Size2Static(30, 30)),
			ui.NewRect(colors.Green).WithSize(ui.Size2Static(20, 20)),
		).
			WithDirection(ui.Horizontal).
			WithGap(5).
			WithAlign(ui.AlignAll(a)).
			WithSize(ui.Size2Static(150, 100)).
			WithBackgroundColor(panel))
	}

	swatches := ui.NewContainer().WithDirection(ui.Horizontal).WithGap(5)
	for i := 0; i < 10; i++ {
		h := float32(i) / 10
		swatches.Add(ui.NewRect(hue(h)).WithSize(ui.Size2Static(50, 50)))
	}

	hover := colors.MustNamed("slategray")
	if l.inst.Interaction(keyHover).Hovered {
		hover = colors.MustNamed("gold")
	}

	spinLabel := "Pause"
	if !l.spinning {
		spinLabel = "Spin"
	}

	return ui.NewContainer(
		ui.NewContainer(
			ui.NewText("hui sandbox").WithTextSize(24),
			ui.NewButton(keySpin, spinLabel).WithCornerRadius(geom.CornersAll[float32](6)),
			ui.NewButton(keyReset, "Reset").WithCornerRadius(geom.CornersAll[float32](6)),
			ui.NewText(l.inst.Sprintf("clicks: %d", l.clicks)).WithColor(colors.Yellow),
		).
			WithDirection(ui.Horizontal).
			WithGap(10).
			WithAlign(ui.Align2{Vertical: ui.Center}),
		alignRow,
		ui.NewProgressBar(fract(l.t/5)).
			WithSize(ui.Size2Of(ui.Fraction(0.5), ui.Static(16))).
			WithCornerRadius(geom.CornersAll[float32](8)),
		ui.NewRect(colors.White).
			WithFill(colors.HorizontalGradient(colors.MustNamed("orchid"), colors.MustNamed("teal"))).
			WithSize(ui.Size2Of(ui.Fraction(0.5), ui.Static(40))).
			WithCornerRadius(geom.Corners[float32]{TopRight: 30}),
		swatches,
		ui.NewContainer(
			ui.Transform(ui.NewRect(colors.Cyan).WithSize(ui.Size2Static(60, 60))).Rotate(l.t),
			ui.NewImage(l.app.checker).
				WithSize(ui.Size2Of(ui.Static(96), ui.Auto())).
				WithCornerRadius(geom.CornersAll[float32](12)),
			ui.Interact(keyHover, ui.NewRect(hover).WithSize(ui.Size2Static(80, 60))),
			ui.NewText("Hover the box, click the buttons.").WithWrap(true).WithSize(ui.Size2Of(ui.Static(160), ui.Auto())),
		).
			WithDirection(ui.Horizontal).
			WithGap(20).
			WithAlign(ui.Align2{Vertical: ui.Center}),
	).
		WithSize(ui.Size2Fraction(1, 1)).
		WithPadding(geom.SidesAll(20)).
		WithGap(12)
}

func fract(v float32) float32 { return v - float32(math.Floor(float64(v))) }

// hue returns a fully saturated color for h in [0, 1).
func hue(h float32) colors.Color {
	h6 := h * 6
	x := 1 - float32(math.Abs(math.Mod(float64(h6), 2)-1))
	switch int(h6) {
	case 0:
		return colors.RGBA(1, x, 0, 1)
	case 1:
		return colors.RGBA(x, 1, 0, 1)
	case 2:
		return colors.RGBA(0, 1, x, 1)
	case 3:
		return colors.RGBA(0, x, 1, 1)
	case 4:
		return colors.RGBA(x, 0, 1, 1)
	default:
		return colors.RGBA(1, 0, x, 1)
	}
}
