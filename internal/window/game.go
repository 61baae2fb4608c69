// Package window hosts a wave view in a desktop window.
package window

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/olivier-w/waveview/internal/waveview"
	"github.com/pkg/errors"
)

// Demo is the attribute set the window host starts from. A config file is
// laid over it.
var Demo = waveview.Attributes{
	Color:        "cyan",
	Count:        6,
	Width:        30,
	Margin:       50,
	AnimDuration: 1000,
	AnimDelay:    350,
	Gravity:      "bottom",
}

const defaultHeightDp = 200

// Config describes the window host.
type Config struct {
	Attributes waveview.Attributes
	Theme      waveview.Theme
	// HeightDp is the widget height in density-independent pixels.
	HeightDp int
	Title    string
	Logger   *slog.Logger
}

// Game adapts a View to ebiten's Update/Draw/Layout loop. The screen is not
// cleared between frames, so a Draw without a pending frame request leaves
// the last picture in place.
type Game struct {
	view    *waveview.View
	height  int
	logger  *slog.Logger
	focused func() bool

	hasFocus bool
	pending  bool
	size     waveview.Size
}

// NewGame builds the view and its host. opts are passed to waveview.New after
// the host's own.
func NewGame(cfg Config, opts ...waveview.Option) *Game {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.HeightDp <= 0 {
		cfg.HeightDp = defaultHeightDp
	}

	g := &Game{
		logger:  cfg.Logger,
		focused: ebiten.IsFocused,
		pending: true,
	}
	opts = append([]waveview.Option{
		waveview.WithFrameRequester(g),
		waveview.WithFrameRate(ebiten.DefaultTPS),
		waveview.WithTheme(cfg.Theme),
		waveview.WithLogger(cfg.Logger),
	}, opts...)
	g.view = waveview.New(cfg.Attributes, opts...)
	g.height = g.view.Density().Px(float64(cfg.HeightDp))
	return g
}

// View returns the hosted view.
func (g *Game) View() *waveview.View {
	return g.view
}

// RequestFrame marks the next Draw as one that repaints.
func (g *Game) RequestFrame() {
	g.pending = true
}

func (g *Game) Update() error {
	g.pollFocus()
	return g.handleKeys()
}

// pollFocus forwards window focus changes to the view.
func (g *Game) pollFocus() {
	f := g.focused()
	if f == g.hasFocus {
		return
	}
	g.hasFocus = f
	g.view.SetWindowFocus(f)
	g.logger.Debug("window focus changed", "focused", f)
}

func (g *Game) handleKeys() error {
	v := g.view
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.SetVisible(!v.Visible())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.SetBarWidth(2)
		v.SetDurationMillis(240)
		v.SetDelayMillis(1500)
		v.SetMinRatio(0.1)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if v.Gravity() == waveview.GravityBottom {
			v.SetGravity(waveview.GravityCenter)
		} else {
			v.SetGravity(waveview.GravityBottom)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if v.RenderMode() == waveview.RenderScale {
			v.SetRenderMode(waveview.RenderPaint)
		} else {
			v.SetRenderMode(waveview.RenderScale)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.SetBarCount(v.BarCount() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.SetBarCount(v.BarCount() - 1)
	default:
		return nil
	}
	g.pending = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.pending {
		return
	}
	g.pending = false
	screen.Clear()
	g.view.Draw(imageCanvas{img: screen})
}

// Layout measures the view at the configured height. The window width
// follows the bars.
func (g *Game) Layout(_, _ int) (int, int) {
	size := g.view.Measure(waveview.AnySize(), waveview.ExactSize(g.height))
	if size != g.size {
		g.size = size
		g.pending = true
	}
	return size.W, size.H
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	density := waveview.Density(1)
	if m := ebiten.Monitor(); m != nil && m.DeviceScaleFactor() > 0 {
		density = waveview.Density(m.DeviceScaleFactor())
	}

	g := NewGame(cfg, waveview.WithDensity(density))
	w, h := g.Layout(0, 0)

	if cfg.Title == "" {
		cfg.Title = "waveview"
	}
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(int(float64(w)/float64(density)), int(float64(h)/float64(density)))
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "window host failed")
	}
	return nil
}
