package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

// fakeScene records what the model asks of it.
type fakeScene struct {
	resets      []core.RuntimeConfig
	resetAt     []float64
	frames      []float64
	diagnostics []bool
	live        int
	resetErr    error
	dst         *core.Screen
}

func (f *fakeScene) ID() string    { return "fake" }
func (f *fakeScene) Title() string { return "Fake" }

func (f *fakeScene) Reset(cfg core.RuntimeConfig, dst *core.Screen, now float64) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets = append(f.resets, cfg)
	f.resetAt = append(f.resetAt, now)
	f.dst = dst
	return nil
}

func (f *fakeScene) Frame(now float64) sim.FrameResult {
	f.frames = append(f.frames, now)
	f.dst.DrawText(0, 0, "arena")
	return sim.FrameResult{Ticks: 1, Live: f.live}
}

func (f *fakeScene) SetDiagnostics(on bool) { f.diagnostics = append(f.diagnostics, on) }
func (f *fakeScene) Totals() sim.Totals     { return sim.Totals{} }

func newTestModel(t *testing.T, scene *fakeScene) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 40, 5
	m, err := NewModel(scene, cfg, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestNewModelResetsScene(t *testing.T) {
	scene := &fakeScene{live: 5}
	newTestModel(t, scene)

	if len(scene.resets) != 1 {
		t.Fatalf("resets = %d, want 1", len(scene.resets))
	}
	if scene.resets[0].Seed == 0 {
		t.Error("seed should be chosen when zero")
	}
	if scene.resetAt[0] != 0 {
		t.Errorf("reset at %v, want 0", scene.resetAt[0])
	}
	if scene.dst.Width() != 40 || scene.dst.Height() != 5 {
		t.Errorf("screen = %dx%d, want 40x5", scene.dst.Width(), scene.dst.Height())
	}
}

func TestNewModelResetError(t *testing.T) {
	want := errors.New("boom")
	_, err := NewModel(&fakeScene{resetErr: want}, core.DefaultConfig(), nil)
	if !errors.Is(err, want) {
		t.Errorf("NewModel err = %v, want %v", err, want)
	}
}

func TestFrameMessageUsesMillisecondTimeline(t *testing.T) {
	scene := &fakeScene{live: 5}
	m := newTestModel(t, scene)

	updated, cmd := m.Update(FrameMsg(m.start.Add(47 * time.Millisecond)))
	if cmd == nil {
		t.Error("frame should re-arm the frame loop")
	}
	if len(scene.frames) != 1 || scene.frames[0] != 47 {
		t.Errorf("frames = %v, want [47]", scene.frames)
	}
	if !strings.Contains(updated.(Model).View(), "arena") {
		t.Error("view should show what the scene painted")
	}
}

func TestArenaEmptyNotedOnce(t *testing.T) {
	scene := &fakeScene{live: 0}
	m := newTestModel(t, scene)

	next, _ := m.Update(FrameMsg(m.start.Add(20 * time.Millisecond)))
	m = next.(Model)
	if !m.emptied {
		t.Fatal("empty arena should be noted")
	}
	next, _ = m.Update(FrameMsg(m.start.Add(40 * time.Millisecond)))
	if !next.(Model).emptied {
		t.Error("emptied flag should persist")
	}
}

func TestKeyQuit(t *testing.T) {
	m := newTestModel(t, &fakeScene{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestKeyRestartReseeds(t *testing.T) {
	scene := &fakeScene{}
	m := newTestModel(t, scene)
	m.emptied = true

	next, _ := m.Update(runeKey('r'))
	if len(scene.resets) != 2 {
		t.Fatalf("resets = %d, want 2", len(scene.resets))
	}
	if next.(Model).emptied {
		t.Error("restart should clear the emptied flag")
	}
	if len(scene.diagnostics) != 1 || !scene.diagnostics[0] {
		t.Errorf("diagnostics = %v, want overlay kept on", scene.diagnostics)
	}
}

func TestKeyRestartFailureQuits(t *testing.T) {
	scene := &fakeScene{}
	m := newTestModel(t, scene)
	scene.resetErr = errors.New("too small")

	next, cmd := m.Update(runeKey('r'))
	if cmd == nil {
		t.Fatal("failed restart should quit")
	}
	if next.(Model).Err() == nil {
		t.Error("model should keep the restart error")
	}
}

func TestKeyToggles(t *testing.T) {
	scene := &fakeScene{}
	m := newTestModel(t, scene)

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	next, _ = m.Update(runeKey('d'))
	m = next.(Model)
	if len(scene.diagnostics) != 2 || scene.diagnostics[0] || !scene.diagnostics[1] {
		t.Errorf("diagnostics = %v, want [false true]", scene.diagnostics)
	}

	next, _ = m.Update(runeKey('?'))
	m = next.(Model)
	if !m.showHelp {
		t.Fatal("help should be shown")
	}
	if !strings.Contains(m.View(), "repopulate") {
		t.Error("help line should list the key bindings")
	}
}

func TestResizeKeepsScene(t *testing.T) {
	scene := &fakeScene{}
	m := newTestModel(t, scene)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	m = next.(Model)
	if m.screen.Width() != 60 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, want 60x10", m.screen.Width(), m.screen.Height())
	}
	if len(scene.resets) != 1 {
		t.Error("resize should not reset the scene")
	}
	if m.config.ScreenW != 60 {
		t.Error("resize should update the runtime config for later restarts")
	}
}
