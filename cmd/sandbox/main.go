package main

import (
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/hui/engine/assets"
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/draw"
	glbackend "github.com/hubastard/hui/engine/gfx/gl"
	"github.com/hubastard/hui/engine/gfx/renderer2d"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/platform"
	"github.com/hubastard/hui/engine/profiler"
	"github.com/hubastard/hui/engine/text"
	"github.com/hubastard/hui/engine/ui"
)

type App struct {
	fonts   *text.Library
	images  *assets.Images
	r2d     *renderer2d.Renderer2D
	uiDraw  *renderer2d.UIRenderer
	checker draw.ImageHandle
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(e.Config.ProfileCapacity)
	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	var err error
	a.fonts, err = text.NewLibrary()
	if err != nil {
		panic(err)
	}
	a.images = assets.NewImages()
	a.checker = a.images.AddImage(checkerboard(64, 8, colors.MustNamed("steelblue"), colors.White))

	a.r2d, err = renderer2d.NewDefault(e.Renderer, e.Config.MaxQuads)
	if err != nil {
		panic(err)
	}
	a.uiDraw = renderer2d.NewUIRenderer(a.r2d, a.images, a.fonts)

	e.Layers.Push(&LayerDemo{app: a, inst: a.newInstance(e)})
	e.Layers.Push(&LayerDebug{app: a, inst: a.newInstance(e), visible: true})
}

func (a *App) newInstance(e *core.Engine) *ui.Instance {
	return ui.New(
		ui.WithTextMeasurer(a.fonts),
		ui.WithImages(a.images),
		ui.WithScratchCapacity(e.Config.ScratchCapacity),
	)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine) {
	a.uiDraw.Release()
	if err := a.fonts.Close(); err != nil {
		log.Println("font close:", err)
	}
}

// frame runs one ui frame for inst sized to the framebuffer and draws it.
func (a *App) frame(e *core.Engine, inst *ui.Instance, build func() ui.Element) {
	w, h := e.Window.FramebufferSize()
	viewport := geom.V(float32(w), float32(h))

	inst.SetPointer(e.Input.Pointer(), e.Input.IsMouseDown(core.MouseLeft))

	inst.Begin()
	inst.Add(build(), viewport)
	inst.End()
	inst.Render(a.uiDraw, viewport)
}

func checkerboard(size, cell int, a, b colors.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	ca, cb := toNRGBA(a), toNRGBA(b)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, ca)
			} else {
				img.Set(x, y, cb)
			}
		}
	}
	return img
}

func toNRGBA(c colors.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c[0] * 255), G: uint8(c[1] * 255),
		B: uint8(c[2] * 255), A: uint8(c[3] * 255),
	}
}

func main() {
	cfg := core.Config{
		Title:           "hui sandbox",
		Width:           1280,
		Height:          720,
		VSync:           true,
		ClearColor:      colors.DarkGray,
		MaxQuads:        10000,
		ScratchCapacity: 4096, // 4 KB initial capacity
		ProfileCapacity: 1 << 14,
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
