package main

import (
	"log"
	"time"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/profiler"
	"github.com/hubastard/hui/engine/ui"
)

// LayerDebug overlays frame, renderer and runtime statistics. F1 toggles
// it, Ctrl+P dumps the profiler and opens speedscope.
type LayerDebug struct {
	app     *App
	inst    *ui.Instance
	visible bool

	lastFrame time.Time
	frameMs   float32
	runtime   profiler.Stats
	ticks     int
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.runtime = profiler.ReadStats() }
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.ticks++
	if l.ticks%30 == 0 {
		l.runtime = profiler.ReadStats()
	}
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()

	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameMs = float32(now.Sub(l.lastFrame).Seconds() * 1000)
	}
	l.lastFrame = now

	if !l.visible {
		return
	}
	l.app.frame(e, l.inst, func() ui.Element { return l.build(e) })
}

func (l *LayerDebug) build(e *core.Engine) ui.Element {
	// Stats of the last scene drawn before this layer.
	stats := l.app.r2d.Stats()
	inst := l.inst

	heading := func(s string) ui.Element {
		return ui.NewText(s).WithColor(colors.Yellow)
	}
	line := func(format string, args ...any) ui.Element {
		return ui.NewText(inst.Sprintf(format, args...)).WithTextSize(14)
	}
	fps := float32(0)
	if l.frameMs > 0 {
		fps = 1000 / l.frameMs
	}

	return ui.NewContainer(
		ui.NewContainer(
			heading(inst.Sprintf("Frame %u", e.Frame())),
			line("  %.3f ms (%.1f FPS)", l.frameMs, fps),
			ui.Space(8),
			heading("Renderer"),
			line("  Draw calls: %d", stats.DrawCalls),
			line("  Quads: %d  Shapes: %d", stats.QuadCount, stats.ShapeCount),
			line("  Vertices: %d", stats.TotalVertexCount()),
			line("  Textures: %d", stats.TextureCount),
			ui.Space(8),
			heading("Memory"),
			line("  Heap: %.3f MB", float64(l.runtime.HeapAlloc)/(1<<20)),
			line("  Allocs: %u  GC: %u", l.runtime.Mallocs, l.runtime.NumGC),
			line("  Goroutines: %d  CPUs: %d", l.runtime.Goroutines, l.runtime.CPUs),
			ui.Space(8),
			heading("GPU"),
			line("  %s", e.Renderer.GPUVendor()),
			line("  %s", e.Renderer.GPURenderer()),
			line("  %s", e.Renderer.GPUVersion()),
		).
			WithPadding(geom.SidesAll(16)).
			WithGap(2).
			WithBackgroundColor(colors.Black.WithAlpha(0.6)).
			WithCornerRadius(geom.CornersAll[float32](8)),
	).
		WithSize(ui.Size2Fraction(1, 1)).
		WithPadding(geom.SidesAll(16)).
		WithAlign(ui.Align2{Horizontal: ui.End})
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	v, ok := ev.(core.EventKey)
	if !ok || !v.Down {
		return false
	}
	switch {
	case v.Key == core.KeyF1:
		l.visible = !l.visible
		return true
	case v.Key == core.KeyP && v.Mods&core.ModCtrl != 0:
		if path, err := profiler.Open(); err == nil {
			log.Println("speedscope dump:", path)
		} else {
			log.Println("profiler dump error:", err)
		}
		return true
	}
	return false
}
