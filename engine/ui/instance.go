package ui

import (
	"fmt"
	"log/slog"

	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
	"github.com/hubastard/hui/engine/profiler"
	"github.com/hubastard/hui/engine/scratch"
)

type phase uint8

const (
	idle phase = iota
	building
)

type root struct {
	element Element
	target  geom.Vec2
}

// Instance drives one UI: Begin a frame, Add root elements, End to measure,
// lay out and emit draw commands. An Instance is not safe for concurrent
// use; independent instances share nothing.
type Instance struct {
	phase phase
	roots []root

	buf     *draw.Buffer
	state   *StateMap
	arena   responseArena
	hits    []hitRegion
	scratch *scratch.Buffer

	text   TextMeasurer
	images ImageSizer
	log    *slog.Logger

	pointer     geom.Vec2
	pointerDown bool
	wasDown     bool
	// pressed holds the key that received the current press, if any.
	pressed    StateKey
	hasPressed bool

	frame uint64
}

func New(opts ...Option) *Instance {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Instance{
		roots:   make([]root, 0, 4),
		buf:     draw.NewBuffer(o.commandCap),
		state:   &StateMap{m: make(map[StateKey]any, o.stateEntries)},
		hits:    make([]hitRegion, 0, 32),
		scratch: scratch.New(o.scratchCap),
		text:    o.text,
		images:  o.images,
		log:     o.logger,
	}
}

func (inst *Instance) logger() *slog.Logger {
	if inst.log != nil {
		return inst.log
	}
	return Logger()
}

// Begin starts a frame. Commands and strings from the previous frame are
// invalidated.
func (inst *Instance) Begin() {
	if inst.phase == building {
		panic("ui: Begin called twice without End")
	}
	inst.phase = building
	inst.frame++
	clear(inst.roots)
	inst.roots = inst.roots[:0]
	inst.buf.Reset()
	inst.arena.reset()
	inst.hits = inst.hits[:0]
	inst.scratch.Reset()
}

// Add queues a root element laid out in a space of targetSize, starting at
// the origin. Roots are processed in the order they are added.
func (inst *Instance) Add(e Element, targetSize geom.Vec2) {
	if inst.phase != building {
		panic("ui: Add called outside Begin/End")
	}
	inst.roots = append(inst.roots, root{element: e, target: targetSize})
}

// End measures and processes every root, then resolves pointer interaction.
func (inst *Instance) End() {
	if inst.phase != building {
		panic("ui: End called without Begin")
	}
	defer profiler.Start("ui.End")()

	for _, r := range inst.roots {
		layout := LayoutInfo{MaxSize: r.target, Direction: Vertical}

		stop := profiler.Start("ui.Measure")
		res := r.element.Measure(MeasureContext{
			Layout: layout,
			State:  inst.state,
			Text:   inst.text,
			Images: inst.images,
			arena:  &inst.arena,
		})
		stop()

		stop = profiler.Start("ui.Process")
		r.element.Process(ProcessContext{
			Layout:  layout,
			Measure: res,
			Draw:    inst.buf,
			State:   inst.state,
			Text:    inst.text,
			Images:  inst.images,
			hits:    &inst.hits,
		})
		stop()

		if !inst.buf.Balanced() {
			panic(fmt.Sprintf("ui: %s left %d transforms pushed", r.element.Name(), inst.buf.Depth()))
		}
	}

	inst.resolveInteractions()
	inst.phase = idle

	inst.logger().Debug("ui: frame",
		"frame", inst.frame,
		"roots", len(inst.roots),
		"commands", inst.buf.Len(),
		"interactive", len(inst.hits))
}

// SetPointer records the pointer position in screen pixels and whether the
// primary button is down. It is applied at the next End.
func (inst *Instance) SetPointer(pos geom.Vec2, down bool) {
	inst.pointer = pos
	inst.pointerDown = down
}

// resolveInteractions updates the Interaction of every registered region.
// Only the topmost region under the pointer, the last one drawn, is hovered.
func (inst *Instance) resolveInteractions() {
	pressedNow := inst.pointerDown && !inst.wasDown
	released := !inst.pointerDown && inst.wasDown
	inst.wasDown = inst.pointerDown

	top := -1
	for i := len(inst.hits) - 1; i >= 0; i-- {
		if inst.hits[i].contains(inst.pointer) {
			top = i
			break
		}
	}

	if pressedNow && top >= 0 {
		inst.pressed = inst.hits[top].key
		inst.hasPressed = true
	}

	for i := range inst.hits {
		key := inst.hits[i].key
		hot := i == top
		active := inst.hasPressed && inst.pressed == key
		inst.state.Set(key, Interaction{
			Hovered: hot,
			Pressed: active && inst.pointerDown,
			Clicked: active && released && hot,
		})
	}

	if released {
		inst.hasPressed = false
	}
}

// Interaction returns the pointer state stored for key by the last End.
func (inst *Instance) Interaction(key StateKey) Interaction {
	st, _ := GetState[Interaction](inst.state, key)
	return st
}

// State returns the map that persists across frames.
func (inst *Instance) State() *StateMap { return inst.state }

// DrawBuffer returns the commands emitted by the last End.
func (inst *Instance) DrawBuffer() *draw.Buffer { return inst.buf }

func (inst *Instance) Commands() []draw.Command { return inst.buf.Commands() }

// Render hands the last frame to r.
func (inst *Instance) Render(r draw.Renderer, viewport geom.Vec2) {
	defer profiler.Start("ui.Render")()
	r.Render(inst.buf, viewport)
}

// Sprintf formats into the frame's scratch arena. The string is valid until
// the next Begin. See scratch.Buffer.Sprintf for the supported verbs.
func (inst *Instance) Sprintf(format string, args ...any) string {
	return inst.scratch.Sprintf(format, args...)
}

// Scratch returns the frame's scratch arena for building strings with the
// chainable builder.
func (inst *Instance) Scratch() *scratch.Buffer { return inst.scratch }
