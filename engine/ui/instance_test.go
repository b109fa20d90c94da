package ui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/draw"
	"github.com/hubastard/hui/engine/geom"
)

func TestInstancePhases(t *testing.T) {
	tests := map[string]struct {
		run  func(inst *Instance)
		want string
	}{
		"begin twice": {func(inst *Instance) {
			inst.Begin()
			inst.Begin()
		}, "Begin called twice"},
		"add before begin": {func(inst *Instance) {
			inst.Add(NewRect(colors.Red), screen)
		}, "Add called outside Begin/End"},
		"add after end": {func(inst *Instance) {
			inst.Begin()
			inst.End()
			inst.Add(NewRect(colors.Red), screen)
		}, "Add called outside Begin/End"},
		"end without begin": {func(inst *Instance) {
			inst.End()
		}, "End called without Begin"},
		"end twice": {func(inst *Instance) {
			inst.Begin()
			inst.End()
			inst.End()
		}, "End called without Begin"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mustPanic(t, tt.want, func() { tt.run(New()) })
		})
	}
}

type leaky struct{}

func (leaky) Name() string                    { return "leaky" }
func (leaky) Measure(MeasureContext) Response { return Response{} }
func (leaky) Process(ctx ProcessContext)      { ctx.Draw.PushTransform(geom.Identity()) }

func TestEndRejectsUnbalancedTransforms(t *testing.T) {
	mustPanic(t, "ui: leaky left 1 transforms pushed", func() { runFrame(New(), leaky{}) })
}

func TestRootsUseTheirOwnTarget(t *testing.T) {
	inst := New()
	inst.Begin()
	inst.Add(NewProgressBar(1), geom.V(100, 50))
	inst.Add(NewProgressBar(1), geom.V(300, 50))
	inst.End()

	got := rects(inst.Commands())
	if len(got) != 4 {
		t.Fatalf("rects = %v, want 4", got)
	}
	if got[0].Size.X != 100 || got[2].Size.X != 300 {
		t.Errorf("track widths = %g, %g, want 100, 300", got[0].Size.X, got[2].Size.X)
	}
}

func TestBeginResetsFrame(t *testing.T) {
	inst := New()
	runFrame(inst, NewRect(colors.Red))
	if len(inst.Commands()) != 1 {
		t.Fatalf("commands = %d, want 1", len(inst.Commands()))
	}

	inst.Begin()
	if n := len(inst.Commands()); n != 0 {
		t.Errorf("commands after Begin = %d, want 0", n)
	}
	inst.End()
	if n := inst.DrawBuffer().Len(); n != 0 {
		t.Errorf("empty frame produced %d commands", n)
	}
}

func TestStateSurvivesFrames(t *testing.T) {
	inst := New()
	k := Key("counter")
	inst.State().Set(k, 3)

	for i := 0; i < 3; i++ {
		runFrame(inst, NewRect(colors.Red))
	}

	if v, ok := GetState[int](inst.State(), k); !ok || v != 3 {
		t.Errorf("state = %v, %v, want 3, true", v, ok)
	}
}

func TestSprintfUsesFrameScratch(t *testing.T) {
	inst := New(WithScratchCapacity(64))
	inst.Begin()
	defer inst.End()

	if got := inst.Sprintf("fps %d", 60); got != "fps 60" {
		t.Errorf("Sprintf = %q, want %q", got, "fps 60")
	}
	if inst.Scratch().Len() == 0 {
		t.Error("scratch buffer unused")
	}
}

func TestEndLogsFrame(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inst := New(WithLogger(l))

	runFrame(inst, NewContainer(NewRect(colors.Red), NewRect(colors.Blue)))

	log := out.String()
	for _, want := range []string{"ui: frame", "frame=1", "roots=1", "commands=2"} {
		if !strings.Contains(log, want) {
			t.Errorf("log %q missing %q", log, want)
		}
	}
}

type recordingRenderer struct {
	cmds     int
	viewport geom.Vec2
}

func (r *recordingRenderer) Render(buf *draw.Buffer, viewport geom.Vec2) {
	r.cmds = buf.Len()
	r.viewport = viewport
}

func TestRenderHandsOverBuffer(t *testing.T) {
	inst := New()
	runFrame(inst, NewContainer(NewRect(colors.Red), NewRect(colors.Blue)))

	var r recordingRenderer
	inst.Render(&r, screen)
	if r.cmds != 2 || r.viewport != screen {
		t.Errorf("renderer got %d commands for %v", r.cmds, r.viewport)
	}
}

func TestArenaKeepsEarlierSlices(t *testing.T) {
	var a responseArena
	first := a.alloc(200)
	first[199].Size = geom.V(1, 2)
	second := a.alloc(100)
	second[0].Size = geom.V(3, 4)

	if first[199].Size != geom.V(1, 2) {
		t.Error("second allocation overwrote the first")
	}
	if cap(first) != 200 {
		t.Errorf("cap(first) = %d, want 200", cap(first))
	}

	a.reset()
	again := a.alloc(10)
	if again[0].Size != (geom.Vec2{}) {
		t.Error("reused slice not cleared")
	}
	if big := a.alloc(arenaChunk * 2); len(big) != arenaChunk*2 {
		t.Errorf("len(big) = %d", len(big))
	}
}
