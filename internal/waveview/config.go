package waveview

import (
	"image/color"
	"strings"
	"time"
)

// Gravity selects where bars are anchored inside the content area.
type Gravity int

const (
	// GravityCenter grows bars up and down from the horizontal midline.
	GravityCenter Gravity = iota
	// GravityBottom grows bars upward from the bottom edge.
	GravityBottom
)

func (g Gravity) String() string {
	switch g {
	case GravityBottom:
		return "bottom"
	default:
		return "center"
	}
}

func (g Gravity) valid() bool {
	return g == GravityCenter || g == GravityBottom
}

// ParseGravity parses "bottom" or "center". The boolean is false for anything else.
func ParseGravity(s string) (Gravity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom", "0":
		return GravityBottom, true
	case "center", "centre", "1":
		return GravityCenter, true
	}
	return GravityCenter, false
}

// RenderMode selects how bars are put on the canvas.
type RenderMode int

const (
	// RenderPaint paints one rectangle per bar straight onto the canvas.
	RenderPaint RenderMode = iota
	// RenderScale keeps one child rectangle per bar and scales it vertically
	// around its own center.
	RenderScale
)

func (m RenderMode) String() string {
	switch m {
	case RenderScale:
		return "scale"
	default:
		return "paint"
	}
}

func (m RenderMode) valid() bool {
	return m == RenderPaint || m == RenderScale
}

// ParseRenderMode parses "paint" or "scale".
func ParseRenderMode(s string) (RenderMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paint":
		return RenderPaint, true
	case "scale":
		return RenderScale, true
	}
	return RenderPaint, false
}

// Padding is the space between the widget bounds and its bars, in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

func (p Padding) valid() bool {
	return p.Left >= 0 && p.Top >= 0 && p.Right >= 0 && p.Bottom >= 0
}

const (
	defaultCount    = 3
	defaultDuration = 240 * time.Millisecond
	defaultDelay    = 100 * time.Millisecond
	defaultMinRatio = 0.3

	minHeightDp     = 3
	defaultHeightDp = 10
	barWidthDp      = 1
	barMarginDp     = 1

	defaultFrameRate = 60
)

// config is the live, already validated configuration of a View.
type config struct {
	color      color.Color
	background color.Color
	count      int
	width      int
	margin     int
	duration   time.Duration
	delay      time.Duration
	minRatio   float64
	gravity    Gravity
	padding    Padding
	mode       RenderMode
	smoothing  float64
}

func defaultConfig(d Density) config {
	return config{
		color:    White,
		count:    defaultCount,
		width:    d.Px(barWidthDp),
		margin:   d.Px(barMarginDp),
		duration: defaultDuration,
		delay:    defaultDelay,
		minRatio: defaultMinRatio,
		gravity:  GravityCenter,
	}
}

// apply overlays the valid fields of a onto c. Invalid or unset values keep
// whatever c already holds.
func (c *config) apply(a Attributes) {
	if col, ok := ParseColor(a.Color); ok {
		c.color = col
	}
	if col, ok := ParseColor(a.Background); ok {
		c.background = col
	}
	if a.Count > 0 {
		c.count = a.Count
	}
	if a.Width > 0 {
		c.width = a.Width
	}
	if a.Margin > 0 {
		c.margin = a.Margin
	}
	if a.AnimDuration > 0 {
		c.duration = time.Duration(a.AnimDuration) * time.Millisecond
	}
	if a.AnimDelay > 0 {
		c.delay = time.Duration(a.AnimDelay) * time.Millisecond
	}
	if validRatio(a.MinRatio) {
		c.minRatio = a.MinRatio
	}
	if g, ok := ParseGravity(a.Gravity); ok {
		c.gravity = g
	}
	if m, ok := ParseRenderMode(a.Render); ok {
		c.mode = m
	}
	if a.Smoothing > 0 {
		c.smoothing = a.Smoothing
	}
	if len(a.Padding) == 4 {
		p := Padding{Left: a.Padding[0], Top: a.Padding[1], Right: a.Padding[2], Bottom: a.Padding[3]}
		if p.valid() {
			c.padding = p
		}
	}
}

func validRatio(r float64) bool {
	return r > 0 && r <= 1
}
