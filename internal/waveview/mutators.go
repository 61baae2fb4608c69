package waveview

import (
	"image/color"
	"time"
)

// Every mutator below silently ignores values it cannot use and keeps the
// previous setting.

// SetColor sets the bar fill color. A nil color is ignored.
func (v *View) SetColor(c color.Color) {
	if c == nil {
		return
	}
	v.cfg.color = c
}

// SetColorSlot sets the bar fill color from a named theme color.
func (v *View) SetColorSlot(name string) {
	if c, ok := ParseColor(v.theme.Colors[name]); ok {
		v.cfg.color = c
	}
}

// SetBackground sets the fill painted behind the bars. Nil removes it.
func (v *View) SetBackground(c color.Color) {
	v.cfg.background = c
}

// SetBarCount replaces the oscillator set with n fresh oscillators. It is
// ignored while the animation is running.
func (v *View) SetBarCount(n int) {
	if n <= 0 || v.Running() {
		return
	}
	v.cfg.count = n
	v.rebuild()
}

// SetDuration sets the half-cycle duration of every oscillator in place.
func (v *View) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	v.cfg.duration = d
	for i := range v.oscillators {
		v.oscillators[i].Duration = d
	}
}

// SetDurationMillis is SetDuration in milliseconds.
func (v *View) SetDurationMillis(ms int) {
	v.SetDuration(time.Duration(ms) * time.Millisecond)
}

// SetDelay sets the stagger between neighboring bars. Bar i is offset by
// i*d from the next sampled frame on.
func (v *View) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	v.cfg.delay = d
	for i := range v.oscillators {
		v.oscillators[i].Delay = time.Duration(i) * d
	}
}

// SetDelayMillis is SetDelay in milliseconds.
func (v *View) SetDelayMillis(ms int) {
	v.SetDelay(time.Duration(ms) * time.Millisecond)
}

// SetBarWidth sets the bar width in pixels. The host must measure again for
// it to show.
func (v *View) SetBarWidth(px int) {
	if px <= 0 {
		return
	}
	v.cfg.width = px
}

// SetBarWidthDp sets the bar width in density-independent pixels.
func (v *View) SetBarWidthDp(dp int) {
	if dp <= 0 {
		return
	}
	v.SetBarWidth(v.density.Px(float64(dp)))
}

// SetBarWidthSlot sets the bar width from a named theme dimension.
func (v *View) SetBarWidthSlot(name string) {
	if dp, ok := v.theme.Dimens[name]; ok && dp > 0 {
		v.SetBarWidth(v.density.Px(dp))
	}
}

// SetBarMargin sets the gap between bars in pixels. The host must measure
// again for it to show.
func (v *View) SetBarMargin(px int) {
	if px <= 0 {
		return
	}
	v.cfg.margin = px
}

// SetBarMarginSlot sets the gap between bars from a named theme dimension.
func (v *View) SetBarMarginSlot(name string) {
	if dp, ok := v.theme.Dimens[name]; ok && dp > 0 {
		v.SetBarMargin(v.density.Px(dp))
	}
}

// SetMinRatio sets the lower bound of the oscillation. It must lie in (0, 1]
// and is ignored while running. The new bound is used from the next
// oscillator rebuild.
func (v *View) SetMinRatio(r float64) {
	if !validRatio(r) || v.Running() {
		return
	}
	v.cfg.minRatio = r
}

// SetGravity picks bottom or centered bars for RenderPaint.
func (v *View) SetGravity(g Gravity) {
	if !g.valid() {
		return
	}
	v.cfg.gravity = g
}

// SetPadding sets the padding. Negative components reject the whole value.
func (v *View) SetPadding(p Padding) {
	if !p.valid() {
		return
	}
	v.cfg.padding = p
}

// SetRenderMode switches between painting and child scaling.
func (v *View) SetRenderMode(m RenderMode) {
	if !m.valid() || m == v.cfg.mode {
		return
	}
	v.cfg.mode = m
	for i := range v.children {
		v.children[i].ScaleY = v.fractions[i]
	}
	v.springs.reset(len(v.children), v.minRatio)
	for i, f := range v.fractions {
		v.springs.pos[i] = f
	}
}

// SetSmoothing sets the spring frequency used to ease child scales in
// RenderScale mode. Zero turns smoothing off.
func (v *View) SetSmoothing(frequency float64) {
	if frequency < 0 {
		return
	}
	v.cfg.smoothing = frequency
	pos := v.springs.pos
	v.springs = newSpringField(v.fps, frequency)
	v.springs.reset(len(v.children), v.minRatio)
	copy(v.springs.pos, pos)
}
