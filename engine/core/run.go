package core

import (
	"log"
	"runtime"
	"time"
)

const (
	tick    = time.Second / 60
	maxStep = 10 // prevent spiral of death
)

// Run wires the platform window and renderer and executes the main loop.
// Layers pushed during OnStart are attached before the first frame and
// detached in reverse order on exit.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Layers:   &LayerStack{},
		Config:   cfg,
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		if r, ok := ev.(EventResize); ok {
			if r.W < 1 || r.H < 1 {
				return
			}
			rend.Resize(r.W, r.H)
		}
		eng.dispatch(app, ev)
	})

	app.OnStart(eng)
	for l := range eng.Layers.All() {
		l.OnAttach(eng)
	}

	var (
		accum time.Duration
		prev  = time.Now()
		clear = cfg.ClearColor
	)
	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Platform emits events through the callback.
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			eng.update(app, tick.Seconds())
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.render(app, alpha)
		win.SwapBuffers()
		eng.frame++
	}

	for l, ok := eng.Layers.Pop(); ok; l, ok = eng.Layers.Pop() {
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Println("engine exit")
	return nil
}

// dispatch feeds ev to the input state, then to layers top-down, and to the
// app when no layer handled it.
func (e *Engine) dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	for l := range e.Layers.Backward() {
		if l.OnEvent(e, ev) {
			return
		}
	}
	app.OnEvent(e, ev)
}

func (e *Engine) update(app App, dt float64) {
	app.OnUpdate(e, dt)
	for l := range e.Layers.All() {
		l.OnUpdate(e, dt)
	}
}

func (e *Engine) render(app App, alpha float64) {
	app.OnRender(e, alpha)
	for l := range e.Layers.All() {
		l.OnRender(e, alpha)
	}
}
