package sim

import (
	"testing"
)

// recordingRenderer remembers what each render pass observed.
type recordingRenderer struct {
	calls    int
	lastLen  int
	lastTick int
	world    *World
}

func (r *recordingRenderer) Render(shapes []Shape) {
	r.calls++
	r.lastLen = len(shapes)
	if r.world != nil {
		r.lastTick = r.world.Tick()
	}
}

type recordingDiagnostics struct {
	fps, live int
	calls     int
}

func (d *recordingDiagnostics) Report(fps, live int) {
	d.fps, d.live = fps, live
	d.calls++
}

func newTestScheduler(t *testing.T, start float64) (*Scheduler, *recordingRenderer) {
	t.Helper()
	w := mustWorld(t, Arena{W: 400, H: 400}, mustCircle(t, 200, 200, 20, 1, 0))
	r := &recordingRenderer{world: w}
	s, err := NewScheduler(w, DefaultTickLength, start, r)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s, r
}

func TestSchedulerCarriesRemainder(t *testing.T) {
	s, r := newTestScheduler(t, 1000)

	res := s.Frame(1047)

	if res.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", res.Ticks)
	}
	if got := s.Clock().LastTick; got != 1045 {
		t.Errorf("LastTick = %v, expected 1045", got)
	}
	if s.World().Tick() != 3 {
		t.Errorf("world ran %d ticks, expected 3", s.World().Tick())
	}
	if r.calls != 1 || r.lastTick != 3 {
		t.Errorf("render should run once after all ticks, calls=%d sawTick=%d", r.calls, r.lastTick)
	}

	// 2ms carried + 13ms = exactly one tick length: not yet enough.
	res = s.Frame(1060)
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d at exactly one tick length, expected 0", res.Ticks)
	}

	res = s.Frame(1061)
	if res.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", res.Ticks)
	}
	if got := s.Clock().LastTick; got != 1060 {
		t.Errorf("LastTick = %v, expected 1060", got)
	}
}

func TestSchedulerRendersWithoutTicks(t *testing.T) {
	s, r := newTestScheduler(t, 0)

	for _, ts := range []float64{1, 5, 10} {
		res := s.Frame(ts)
		if res.Ticks != 0 {
			t.Errorf("Frame(%v) ran %d ticks, expected 0", ts, res.Ticks)
		}
	}
	if r.calls != 3 {
		t.Errorf("render calls = %d, expected 3", r.calls)
	}
	if s.Clock().LastTick != 0 {
		t.Errorf("LastTick moved without a tick: %v", s.Clock().LastTick)
	}
	if s.Clock().LastRender != 10 {
		t.Errorf("LastRender = %v, expected 10", s.Clock().LastRender)
	}
}

func TestSchedulerTickCountIndependentOfFrameRate(t *testing.T) {
	fast, _ := newTestScheduler(t, 0)
	slow, _ := newTestScheduler(t, 0)

	fastTicks, slowTicks := 0, 0
	for i := 1; i <= 360; i++ {
		fastTicks += fast.Frame(float64(i) * 1000 / 120).Ticks
	}
	for i := 1; i <= 90; i++ {
		slowTicks += slow.Frame(float64(i) * 1000 / 30).Ticks
	}

	// 3 seconds at 15ms per tick, give or take the carried remainder.
	for name, got := range map[string]int{"120fps": fastTicks, "30fps": slowTicks} {
		if got < 198 || got > 200 {
			t.Errorf("%s ran %d ticks, expected about 200", name, got)
		}
	}
}

func TestSchedulerDiagnostics(t *testing.T) {
	s, _ := newTestScheduler(t, 0)
	d := &recordingDiagnostics{}
	s.SetDiagnostics(d)

	res := s.Frame(20)
	if d.calls != 1 {
		t.Fatalf("diagnostics calls = %d, expected 1", d.calls)
	}
	if d.fps != 50 || res.FPS != 50 {
		t.Errorf("fps = %d (result %d), expected 50 for a 20ms frame", d.fps, res.FPS)
	}
	if d.live != 1 || res.Live != 1 {
		t.Errorf("live = %d (result %d), expected 1", d.live, res.Live)
	}

	s.SetDiagnostics(nil)
	s.Frame(40)
	if d.calls != 1 {
		t.Error("detached diagnostics should not be called")
	}

	if res := s.Frame(40); res.FPS != 0 {
		t.Errorf("zero-length frame should report 0 fps, got %d", res.FPS)
	}
}

func TestSchedulerAggregatesStepResults(t *testing.T) {
	w := mustWorld(t, Arena{W: 400, H: 400},
		mustRect(t, 1.5, 100, 30, 30, -1, 0),
		mustCircle(t, 300, 300, 20, 0, 0),
	)
	s, err := NewScheduler(w, 10, 0, nil)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	res := s.Frame(35)
	if res.Ticks != 3 {
		t.Fatalf("Ticks = %d, expected 3", res.Ticks)
	}
	// Tick 1: x=0.5. Tick 2: x=-0.5, wall hit, bounce. Tick 3: x=0.5.
	if res.WallHits != 1 {
		t.Errorf("WallHits = %d, expected 1", res.WallHits)
	}
	if res.Live != 2 || res.Removed != 0 {
		t.Errorf("Live=%d Removed=%d, expected 2 and 0", res.Live, res.Removed)
	}
}

func TestSchedulerDoesNotRenderRemovedShapes(t *testing.T) {
	worn := mustRect(t, 1, 100, 10, 10, -2, 0)
	worn.Collisions = 2
	w := mustWorld(t, Arena{W: 400, H: 400},
		worn,
		mustCircle(t, 300, 300, 20, 0, 0),
	)
	r := &recordingRenderer{world: w}
	s, err := NewScheduler(w, DefaultTickLength, 0, r)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	// One tick: the rectangle reaches x=-1, takes its third hit and is removed.
	res := s.Frame(16)
	if res.Ticks != 1 || res.Removed != 1 {
		t.Fatalf("Ticks=%d Removed=%d, expected 1 and 1", res.Ticks, res.Removed)
	}
	if r.calls != 1 || r.lastLen != 1 {
		t.Errorf("renderer saw %d shapes in %d calls, expected 1 shape in 1 call", r.lastLen, r.calls)
	}
	for _, sh := range w.Shapes() {
		if sh.Kind == KindRect {
			t.Error("removed rectangle is still live")
		}
	}

	// Only the circle remains; wear it out too and the renderer sees nothing.
	w.shapes[0].Collisions = 2
	w.shapes[0].Vel.X = 300
	s.Frame(31)
	if r.lastLen != 0 {
		t.Errorf("renderer saw %d shapes after the last removal, expected 0", r.lastLen)
	}
}

func TestNewSchedulerValidation(t *testing.T) {
	w := mustWorld(t, Arena{W: 400, H: 400})
	if _, err := NewScheduler(w, 0, 0, nil); err == nil {
		t.Error("zero tick length should be rejected")
	}
	if _, err := NewScheduler(nil, 15, 0, nil); err == nil {
		t.Error("nil world should be rejected")
	}
}
