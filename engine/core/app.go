package core

import (
	"time"

	"github.com/hubastard/hui/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events not handled by a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   *LayerStack
	Config   Config
	start    time.Time
	frame    uint64
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frame returns the number of frames rendered so far.
func (e *Engine) Frame() uint64 { return e.frame }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	// FramebufferSize is the drawable size in pixels. Pointer events use the
	// same units.
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	// MaxQuads sizes the 2D batch. Zero picks the renderer default.
	MaxQuads int
	// ScratchCapacity is the initial per-frame string arena size in bytes.
	ScratchCapacity int
	// ProfileCapacity is the number of profiler events kept. Only used in
	// builds with the "profile" tag.
	ProfileCapacity int
}
