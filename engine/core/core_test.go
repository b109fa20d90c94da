package core

import (
	"strings"
	"testing"
)

type recordingLayer struct {
	name    string
	handles bool
	log     *[]string
}

func (l *recordingLayer) OnAttach(*Engine)          { *l.log = append(*l.log, l.name+".attach") }
func (l *recordingLayer) OnDetach(*Engine)          { *l.log = append(*l.log, l.name+".detach") }
func (l *recordingLayer) OnUpdate(*Engine, float64) { *l.log = append(*l.log, l.name+".update") }
func (l *recordingLayer) OnRender(*Engine, float64) { *l.log = append(*l.log, l.name+".render") }
func (l *recordingLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, l.name+".event")
	return l.handles
}

type recordingApp struct{ events int }

func (a *recordingApp) OnStart(*Engine)           {}
func (a *recordingApp) OnUpdate(*Engine, float64) {}
func (a *recordingApp) OnRender(*Engine, float64) {}
func (a *recordingApp) OnEvent(*Engine, Event) { a.events++ }
func (a *recordingApp) OnShutdown(*Engine)        {}

func TestDispatchStopsAtHandlingLayer(t *testing.T) {
	var log []string
	e := &Engine{Input: NewInput(), Layers: &LayerStack{}}
	e.Layers.Push(&recordingLayer{name: "bottom", log: &log})
	e.Layers.Push(&recordingLayer{name: "top", handles: true, log: &log})
	app := &recordingApp{}

	e.dispatch(app, EventKey{Key: KeyW, Down: true})

	if len(log) != 1 || log[0] != "top.event" {
		t.Errorf("events = %v, want only top.event", log)
	}
	if app.events != 0 {
		t.Errorf("app saw %d events, want 0", app.events)
	}
	if !e.Input.IsKeyDown(KeyW) {
		t.Error("input state not updated before layers")
	}
}

func TestDispatchFallsBackToApp(t *testing.T) {
	var log []string
	e := &Engine{Input: NewInput(), Layers: &LayerStack{}}
	e.Layers.Push(&recordingLayer{name: "a", log: &log})
	e.Layers.Push(&recordingLayer{name: "b", log: &log})
	app := &recordingApp{}

	e.dispatch(app, EventMouseMove{X: 3, Y: 4})

	want := []string{"b.event", "a.event"}
	if len(log) != len(want) || log[0] != want[0] || log[1] != want[1] {
		t.Errorf("events = %v, want %v", log, want)
	}
	if app.events != 1 {
		t.Errorf("app saw %d events, want 1", app.events)
	}
	if x, y := e.Input.Mouse(); x != 3 || y != 4 {
		t.Errorf("Mouse() = %g, %g, want 3, 4", x, y)
	}
	if p := e.Input.Pointer(); p.X != 3 || p.Y != 4 {
		t.Errorf("Pointer() = %v, want (3, 4)", p)
	}
}

func TestRenderOrder(t *testing.T) {
	var log []string
	e := &Engine{Input: NewInput(), Layers: &LayerStack{}}
	e.Layers.Push(&recordingLayer{name: "a", log: &log})
	e.Layers.Push(&recordingLayer{name: "b", log: &log})

	e.render(&recordingApp{}, 0)
	if len(log) != 2 || log[0] != "a.render" || log[1] != "b.render" {
		t.Errorf("render order = %v, want [a.render b.render]", log)
	}
}

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 2})

	if !in.IsMouseDown(MouseLeft) || in.IsMouseDown(MouseRight) {
		t.Error("mouse button state mismatch")
	}
	if _, y := in.TakeScroll(); y != 3 {
		t.Errorf("TakeScroll() y = %g, want 3", y)
	}
	if _, y := in.TakeScroll(); y != 0 {
		t.Errorf("second TakeScroll() y = %g, want 0", y)
	}
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	if in.IsMouseDown(MouseLeft) {
		t.Error("left button still down after release")
	}
}

func TestLayerStackPop(t *testing.T) {
	var ls LayerStack
	if _, ok := ls.Pop(); ok {
		t.Error("Pop on empty stack returned ok")
	}
	var log []string
	ls.Push(&recordingLayer{name: "a", log: &log})
	if l, ok := ls.Pop(); !ok || l.(*recordingLayer).name != "a" {
		t.Errorf("Pop() = %v, %v, want layer a", l, ok)
	}
	if ls.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ls.Len())
	}
}

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	var log []string
	for _, n := range []string{"a", "b", "c"} {
		ls.Push(&recordingLayer{name: n, log: &log})
	}
	var fwd, back []string
	for l := range ls.All() {
		fwd = append(fwd, l.(*recordingLayer).name)
	}
	for l := range ls.Backward() {
		back = append(back, l.(*recordingLayer).name)
		if len(back) == 2 {
			break
		}
	}
	if strings.Join(fwd, "") != "abc" {
		t.Errorf("All() = %v, want [a b c]", fwd)
	}
	if strings.Join(back, "") != "cb" {
		t.Errorf("Backward() with break = %v, want [c b]", back)
	}
}
