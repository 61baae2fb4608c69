// Package waveview implements an animated row of bars whose heights
// oscillate in a staggered cascade, like an audio level meter.
//
// A View is driven by its host: the host measures it, hands it a Canvas on
// every frame, and forwards window focus and visibility changes. The View
// asks for the next frame through a FrameRequester for as long as it is both
// visible and focused.
//
// A View is not safe for concurrent use. Call it from the host's update loop.
package waveview

import (
	"image/color"
	"log/slog"
	"time"
)

// State is the run state of the animation set.
type State int

const (
	// Stopped means the shared clock is frozen and no frames are requested.
	Stopped State = iota
	// Running means the shared clock advances and every draw requests the
	// next frame.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameRequester schedules another Draw on the host's next frame.
type FrameRequester interface {
	RequestFrame()
}

// FrameRequesterFunc adapts a function to FrameRequester.
type FrameRequesterFunc func()

// RequestFrame calls f.
func (f FrameRequesterFunc) RequestFrame() { f() }

// Option configures a View at construction.
type Option func(*View)

// WithDensity sets the display density used for dp defaults and dp setters.
func WithDensity(d Density) Option {
	return func(v *View) {
		if d > 0 {
			v.density = d
		}
	}
}

// WithClock replaces time.Now as the shared animation clock.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithFrameRequester sets who gets asked for the next frame.
func WithFrameRequester(fr FrameRequester) Option {
	return func(v *View) { v.frames = fr }
}

// WithTheme sets the color and dimension slots used by the *Slot mutators.
func WithTheme(t Theme) Option {
	return func(v *View) { v.theme = t }
}

// WithFrameRate sets the frame rate the host pumps at. It only affects spring
// smoothing in RenderScale mode.
func WithFrameRate(fps int) Option {
	return func(v *View) {
		if fps > 0 {
			v.fps = fps
		}
	}
}

// View is the wave widget.
type View struct {
	cfg     config
	density Density
	theme   Theme
	now     func() time.Time
	logger  *slog.Logger
	frames  FrameRequester
	fps     int

	minHeight     int
	defaultHeight int
	size          Size
	measured      bool

	// minRatio is the lower bound the current oscillators were built with.
	// cfg.minRatio only reaches it on the next rebuild.
	minRatio    float64
	oscillators []Oscillator
	fractions   []float64
	children    []Child
	springs     springField

	state     State
	elapsed   time.Duration
	resumedAt time.Time

	visible bool
	focused bool
}

// New builds a View from an attribute set. The View starts visible, without
// window focus and Stopped.
func New(attrs Attributes, opts ...Option) *View {
	v := &View{
		density: 1,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
		fps:     defaultFrameRate,
		visible: true,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.minHeight = v.density.Px(minHeightDp)
	v.defaultHeight = v.density.Px(defaultHeightDp)
	v.cfg = defaultConfig(v.density)
	v.cfg.apply(attrs)
	v.rebuild()
	return v
}

// rebuild replaces the oscillator set for the configured bar count and
// rewinds the shared clock.
func (v *View) rebuild() {
	n := v.cfg.count
	v.minRatio = v.cfg.minRatio
	v.oscillators = newOscillators(n, v.cfg.duration, v.cfg.delay, v.minRatio)
	v.fractions = make([]float64, n)
	for i := range v.fractions {
		v.fractions[i] = v.minRatio
	}
	v.children = make([]Child, n)
	for i := range v.children {
		v.children[i].ScaleY = v.minRatio
	}
	v.springs = newSpringField(v.fps, v.cfg.smoothing)
	v.springs.reset(n, v.minRatio)
	v.elapsed = 0
	v.resumedAt = v.now()
	if v.measured {
		v.layoutChildren()
	}
	v.logger.Debug("wave oscillators rebuilt",
		"bars", n,
		"min_ratio", v.minRatio)
}

// Draw samples the shared clock once, paints every bar onto cv and then
// invalidates itself. It does nothing while the View is hidden.
func (v *View) Draw(cv Canvas) {
	if !v.visible {
		return
	}
	if !v.measured {
		v.Measure(AnySize(), AnySize())
	}
	v.sample()
	v.paint(cv)
	v.Invalidate()
}

// sample recomputes every fraction from the shared clock.
func (v *View) sample() {
	e := v.Elapsed()
	for i, o := range v.oscillators {
		v.fractions[i] = o.Value(e)
	}
}

// Invalidate asks the host for another frame and keeps the animation
// running while the View is visible and focused. Otherwise it stops the
// animation and asks for nothing.
func (v *View) Invalidate() {
	if !v.focused || !v.visible {
		v.stop()
		return
	}
	if v.frames != nil {
		v.frames.RequestFrame()
	}
	v.start()
}

// SetVisible reports a visibility change from the host. Becoming visible
// only starts the animation when the View also has window focus.
func (v *View) SetVisible(visible bool) {
	v.visible = visible
	if visible {
		v.Invalidate()
	} else {
		v.stop()
	}
}

// SetWindowFocus reports a window focus change from the host.
func (v *View) SetWindowFocus(focused bool) {
	v.focused = focused
	if focused {
		v.Invalidate()
	} else {
		v.stop()
	}
}

func (v *View) start() {
	if v.state == Running {
		return
	}
	v.state = Running
	v.resumedAt = v.now()
	v.logger.Debug("wave animation started", "bars", len(v.oscillators), "elapsed", v.elapsed)
}

func (v *View) stop() {
	if v.state == Stopped {
		return
	}
	v.elapsed += v.now().Sub(v.resumedAt)
	v.state = Stopped
	v.logger.Debug("wave animation stopped", "bars", len(v.oscillators), "elapsed", v.elapsed)
}

// Elapsed returns the time on the shared animation clock. It only advances
// while Running.
func (v *View) Elapsed() time.Duration {
	if v.state == Running {
		return v.elapsed + v.now().Sub(v.resumedAt)
	}
	return v.elapsed
}

// State returns the run state.
func (v *View) State() State { return v.state }

// Running reports whether the animation set is running.
func (v *View) Running() bool { return v.state == Running }

// Visible reports the last visibility the host set.
func (v *View) Visible() bool { return v.visible }

// Focused reports the last window focus the host set.
func (v *View) Focused() bool { return v.focused }

// Fractions returns a copy of the current per-bar fractions as of the last
// Draw.
func (v *View) Fractions() []float64 {
	return append([]float64(nil), v.fractions...)
}

// Oscillators returns a copy of the oscillator set.
func (v *View) Oscillators() []Oscillator {
	return append([]Oscillator(nil), v.oscillators...)
}

// Children returns a copy of the child bars used in RenderScale mode.
func (v *View) Children() []Child {
	return append([]Child(nil), v.children...)
}

func (v *View) Color() color.Color { return v.cfg.color }
func (v *View) Background() color.Color { return v.cfg.background }
func (v *View) BarCount() int { return v.cfg.count }
func (v *View) BarWidth() int { return v.cfg.width }
func (v *View) BarMargin() int { return v.cfg.margin }
func (v *View) Duration() time.Duration { return v.cfg.duration }
func (v *View) Delay() time.Duration { return v.cfg.delay }
func (v *View) Gravity() Gravity { return v.cfg.gravity }
func (v *View) Padding() Padding { return v.cfg.padding }
func (v *View) RenderMode() RenderMode { return v.cfg.mode }
func (v *View) Smoothing() float64 { return v.cfg.smoothing }
func (v *View) Density() Density { return v.density }
func (v *View) PendingMinRatio() float64 { return v.cfg.minRatio }
func (v *View) MinRatio() float64 { return v.minRatio }
