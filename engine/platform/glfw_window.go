// Package platform provides the GLFW window used by the engine.
package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/hui/engine/core"
)

// GLFWWindow implements core.Window and pushes events to a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow opens a window with a current OpenGL 3.3 core context.
// Must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Mac requires the forward-compatible flag for core profiles.
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.installCallbacks()
	return gw, nil
}

// installCallbacks translates GLFW callbacks into core events. Cursor
// positions are converted to framebuffer pixels, the space the ui lays out in.
func (g *GLFWWindow) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(core.EventResize{W: w, H: h})
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := g.pixelRatio()
		g.emit(core.EventMouseMove{X: x * sx, Y: y * sy})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		g.emit(core.EventMouseButton{Button: btn, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		g.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: translateMods(mods)})
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})
}

// pixelRatio is the framebuffer size divided by the window size. It differs
// from 1 on high-DPI displays where window coordinates are scaled.
func (g *GLFWWindow) pixelRatio() (float64, float64) {
	fw, fh := g.w.GetFramebufferSize()
	ww, wh := g.w.GetSize()
	if ww <= 0 || wh <= 0 {
		return 1, 1
	}
	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy closes the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var (
	glfwKeys = map[glfw.Key]core.Key{
		glfw.KeyEscape: core.KeyEscape,
		glfw.KeySpace:  core.KeySpace,
		glfw.KeyTab:    core.KeyTab,
		glfw.KeyF1:     core.KeyF1,
		glfw.KeyW:      core.KeyW,
		glfw.KeyA:      core.KeyA,
		glfw.KeyS:      core.KeyS,
		glfw.KeyD:      core.KeyD,
		glfw.KeyP:      core.KeyP,
	}
	glfwButtons = map[glfw.MouseButton]core.MouseButton{
		glfw.MouseButtonLeft:   core.MouseLeft,
		glfw.MouseButtonRight:  core.MouseRight,
		glfw.MouseButtonMiddle: core.MouseMiddle,
	}
	glfwMods = [...]struct {
		from glfw.ModifierKey
		to   core.Mod
	}{
		{glfw.ModShift, core.ModShift},
		{glfw.ModControl, core.ModCtrl},
		{glfw.ModAlt, core.ModAlt},
		{glfw.ModSuper, core.ModSuper},
	}
)

// translateKey maps keys the engine does not know to KeyUnknown.
func translateKey(k glfw.Key) core.Key { return glfwKeys[k] }

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	btn, ok := glfwButtons[b]
	return btn, ok
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, mm := range glfwMods {
		if m&mm.from != 0 {
			out |= mm.to
		}
	}
	return out
}
