package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/waveview/internal/termcanvas"
	"github.com/olivier-w/waveview/internal/waveview"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2020, 11, 16, 0, 0, 0, 0, time.UTC)}
	m := New(Config{
		Attributes: waveview.Attributes{Count: 3, Width: 2, Margin: 1},
		Rows:       2,
		Profile:    termcanvas.ProfileNone,
		Options:    []waveview.Option{waveview.WithClock(clock.now)},
	})
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected ui.Model, got %T", next)
	}
	return nm
}

func TestFramePumpKeepsOneTickInFlight(t *testing.T) {
	p := &framePump{interval: time.Millisecond}
	if p.next() != nil {
		t.Fatal("expected no tick without a request")
	}
	p.RequestFrame()
	p.RequestFrame()
	if p.next() == nil {
		t.Fatal("expected a tick for the pending request")
	}
	p.RequestFrame()
	if p.next() != nil {
		t.Fatal("expected no second tick while one is in flight")
	}
	p.arrived()
	if p.next() == nil {
		t.Fatal("expected the queued request to be scheduled after arrival")
	}
}

func TestNewRendersRestingFrame(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.view.Size(); got != (waveview.Size{W: 8, H: 4}) {
		t.Fatalf("expected 8x4 pixels, got %+v", got)
	}
	want := "▄▄ ▄▄ ▄▄\n▀▀ ▀▀ ▀▀"
	if m.frame != want {
		t.Fatalf("expected resting frame %q, got %q", want, m.frame)
	}
	if m.view.Running() {
		t.Fatal("expected view to stay stopped before Init")
	}
}

func TestInitFocusesAndSchedulesFrame(t *testing.T) {
	m, _ := newTestModel(t)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected init command")
	}
	if !m.view.Running() {
		t.Fatal("expected view to run after Init")
	}
	if !m.pump.inFlight || m.pump.requested {
		t.Fatalf("expected one tick in flight, got inFlight=%v requested=%v", m.pump.inFlight, m.pump.requested)
	}
}

func TestFrameMsgRedrawsAndReschedules(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	clock.advance(240 * time.Millisecond)
	m = update(t, m, frameMsg(clock.t))

	if !m.pump.inFlight {
		t.Fatal("expected the next frame to be scheduled")
	}
	if got := m.view.Fractions()[0]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected first bar at its peak after one half cycle, got %v", got)
	}
}

func TestBlurStopsAndFocusResumes(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	clock.advance(500 * time.Millisecond)
	m = update(t, m, tea.BlurMsg{})
	if m.view.Running() {
		t.Fatal("expected blur to stop the animation")
	}

	// the tick already in flight lands after the blur
	m = update(t, m, frameMsg(clock.t))
	if m.pump.inFlight || m.pump.requested {
		t.Fatal("expected no frame to be requested while unfocused")
	}

	clock.advance(10 * time.Second)
	m = update(t, m, tea.FocusMsg{})
	if !m.view.Running() {
		t.Fatal("expected focus to resume the animation")
	}
	if !m.pump.inFlight {
		t.Fatal("expected focus to schedule a frame")
	}
	if got := m.view.Elapsed(); got != 500*time.Millisecond {
		t.Fatalf("expected clock to resume at 500ms, got %v", got)
	}
}

func TestBarCountKeysOnlyApplyWhilePaused(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	m = update(t, m, runes("+"))
	if got := m.view.BarCount(); got != 3 {
		t.Fatalf("expected bar count unchanged while running, got %d", got)
	}
	if m.notice == "" {
		t.Fatal("expected a notice explaining the ignored change")
	}

	m = update(t, m, runes("p"))
	m = update(t, m, runes("+"))
	if got := m.view.BarCount(); got != 4 {
		t.Fatalf("expected 4 bars, got %d", got)
	}
	if got := m.view.Size().W; got != 11 {
		t.Fatalf("expected width 4*2+3*1=11, got %d", got)
	}
	if line := strings.Split(m.frame, "\n")[0]; len([]rune(line)) != 11 {
		t.Fatalf("expected 11 canvas columns, got %q", line)
	}
}

func TestSpaceHidesView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.view.Visible() || m.view.Running() {
		t.Fatal("expected hidden, stopped view")
	}
	if !strings.Contains(m.View(), "hidden") {
		t.Fatal("expected status line to report hidden")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.view.Running() {
		t.Fatal("expected view to run again once shown")
	}
}

func TestSetKeyAppliesDemoReconfiguration(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("s"))
	v := m.view
	if v.BarWidth() != 2 || v.Duration() != 240*time.Millisecond || v.Delay() != 1500*time.Millisecond {
		t.Fatalf("expected width 2, 240ms, 1500ms; got %d, %v, %v", v.BarWidth(), v.Duration(), v.Delay())
	}
	if v.PendingMinRatio() != 0.1 {
		t.Fatalf("expected pending min ratio 0.1, got %v", v.PendingMinRatio())
	}
}

func TestCanvasKeySwitchesToBraille(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("b"))
	if _, ok := m.canvas.(*termcanvas.Braille); !ok {
		t.Fatalf("expected braille canvas, got %T", m.canvas)
	}
	if got := m.view.Size().H; got != 8 {
		t.Fatalf("expected 2 rows of 4 dots, got height %d", got)
	}
}

func TestQuitKeyBlanksView(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("q"))
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}
