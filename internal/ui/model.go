package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/waveview/internal/termcanvas"
	"github.com/olivier-w/waveview/internal/waveview"
)

const (
	defaultRows = 6
	defaultFPS  = 30
)

// Demo is the attribute set the terminal host starts from, sized for
// terminal cells. A config file is laid over it.
var Demo = waveview.Attributes{
	Color:        "cyan",
	Count:        6,
	Width:        3,
	Margin:       2,
	AnimDuration: 1000,
	AnimDelay:    350,
	Gravity:      "bottom",
}

// Config describes the terminal host.
type Config struct {
	Attributes waveview.Attributes
	Theme      waveview.Theme
	// Rows is the canvas height in terminal rows.
	Rows int
	// FPS is the frame pump rate.
	FPS     int
	Braille bool
	Profile termcanvas.Profile
	Logger  *slog.Logger
	// Options are passed to waveview.New after the host's own.
	Options []waveview.Option
}

// Model is the Bubbletea model hosting a single wave view.
type Model struct {
	view    *waveview.View
	canvas  termcanvas.Surface
	pump    *framePump
	logger  *slog.Logger
	profile termcanvas.Profile
	braille bool
	rows    int

	keys  keyMap
	help  help.Model
	cycle progress.Model

	frame    string // last rendered canvas
	notice   string
	quitting bool
}

// New builds the host and the view it embeds. The view starts without focus;
// Init hands it focus.
func New(cfg Config) Model {
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	pump := &framePump{interval: time.Second / time.Duration(cfg.FPS)}
	opts := append([]waveview.Option{
		waveview.WithFrameRequester(pump),
		waveview.WithFrameRate(cfg.FPS),
		waveview.WithTheme(cfg.Theme),
		waveview.WithLogger(cfg.Logger),
	}, cfg.Options...)

	cycle := progress.New(
		progress.WithScaledGradient("#5FD7D7", "#008787"),
		progress.WithoutPercentage(),
	)
	cycle.Width = 20

	m := Model{
		view:    waveview.New(cfg.Attributes, opts...),
		pump:    pump,
		logger:  cfg.Logger,
		profile: cfg.Profile,
		braille: cfg.Braille,
		rows:    cfg.Rows,
		keys:    defaultKeyMap(),
		help:    help.New(),
		cycle:   cycle,
	}
	m.canvas = m.newCanvas()
	m.remeasure()
	m.redraw()
	return m
}

func (m *Model) newCanvas() termcanvas.Surface {
	if m.braille {
		return termcanvas.NewBraille(m.profile)
	}
	return termcanvas.NewBlocks(m.profile)
}

func (m Model) Init() tea.Cmd {
	// Terminals only report focus changes, so assume we start focused.
	m.view.SetWindowFocus(true)
	return tea.Batch(m.pump.next(), tea.SetWindowTitle("waveview"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, tea.Batch(cmd, next.pump.next())
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.pump.arrived()
		m.redraw()
		return m, nil

	case tea.FocusMsg:
		m.view.SetWindowFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.view.SetWindowFocus(false)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width - 4
		m.cycle.Width = min(max(msg.Width-16, 10), 40)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Visible):
		m.view.SetVisible(!m.view.Visible())

	case key.Matches(msg, m.keys.Focus):
		m.view.SetWindowFocus(!m.view.Focused())

	case key.Matches(msg, m.keys.More):
		m.setBarCount(m.view.BarCount() + 1)

	case key.Matches(msg, m.keys.Fewer):
		m.setBarCount(m.view.BarCount() - 1)

	case key.Matches(msg, m.keys.Gravity):
		if m.view.Gravity() == waveview.GravityBottom {
			m.view.SetGravity(waveview.GravityCenter)
		} else {
			m.view.SetGravity(waveview.GravityBottom)
		}
		m.redraw()

	case key.Matches(msg, m.keys.Mode):
		if m.view.RenderMode() == waveview.RenderScale {
			m.view.SetRenderMode(waveview.RenderPaint)
		} else {
			m.view.SetRenderMode(waveview.RenderScale)
		}
		m.redraw()

	case key.Matches(msg, m.keys.Set):
		applyDemoSet(m.view)
		m.remeasure()
		m.redraw()
		if m.view.Running() {
			m.notice = "min ratio applies after the next rebuild"
		}

	case key.Matches(msg, m.keys.Canvas):
		m.braille = !m.braille
		m.canvas = m.newCanvas()
		m.remeasure()
		m.redraw()
		m.logger.Debug("canvas switched", "braille", m.braille)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// applyDemoSet is the reconfiguration bound to the "set" key.
func applyDemoSet(v *waveview.View) {
	v.SetBarWidth(2)
	v.SetDurationMillis(240)
	v.SetDelayMillis(1500)
	v.SetMinRatio(0.1)
}

func (m *Model) setBarCount(n int) {
	before := m.view.BarCount()
	m.view.SetBarCount(n)
	if m.view.BarCount() == before {
		if m.view.Running() {
			m.notice = "pause (p) before changing the bar count"
		}
		return
	}
	m.remeasure()
	m.redraw()
}

// remeasure lays the view out for the canvas height and resizes the canvas
// to match.
func (m *Model) remeasure() {
	size := m.view.Measure(waveview.AnySize(), waveview.ExactSize(m.canvas.Cells(m.rows)))
	m.canvas.Resize(size.W, size.H)
}

func (m *Model) redraw() {
	if !m.view.Visible() {
		return
	}
	m.view.Draw(m.canvas)
	m.frame = m.canvas.Render()
}

// cyclePosition is how far the shared clock is into one full up-and-down
// cycle of the first bar.
func (m Model) cyclePosition() float64 {
	period := 2 * m.view.Duration()
	if period <= 0 {
		return 0
	}
	return float64(m.view.Elapsed()%period) / float64(period)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("waveview") + "\n\n")

	if m.view.Visible() {
		for _, line := range strings.Split(m.frame, "\n") {
			b.WriteString("  " + line + "\n")
		}
	} else {
		b.WriteString(strings.Repeat("\n", m.rows))
	}

	b.WriteString("\n  " + renderStatus(m.view) + "\n")
	b.WriteString("  " + m.cycle.ViewAs(m.cyclePosition()) + " " + timeStyle.Render(formatElapsed(m.view)) + "\n")
	if m.notice != "" {
		b.WriteString("  " + helpStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}
