package core

import "github.com/hubastard/hui/engine/geom"

// Input tracks the latest keyboard and mouse state from events.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mouseX, mouseY float64
	scrollX        float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// Pointer returns the cursor position in framebuffer pixels.
func (in *Input) Pointer() geom.Vec2 {
	return geom.Vec2{X: float32(in.mouseX), Y: float32(in.mouseY)}
}

func (in *Input) IsMouseDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}

// TakeScroll returns the scroll accumulated since the last call.
func (in *Input) TakeScroll() (x, y float64) {
	x, y = in.scrollX, in.scrollY
	in.scrollX, in.scrollY = 0, 0
	return x, y
}
