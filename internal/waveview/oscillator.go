package waveview

import (
	"math"
	"time"
)

// Density converts density-independent pixels to device pixels.
type Density float64

// Px converts dp to device pixels, rounding half up.
func (d Density) Px(dp float64) int {
	if d <= 0 {
		d = 1
	}
	return int(dp*float64(d) + 0.5)
}

// Oscillator describes one bar's repeating animation. Its value is a pure
// function of the shared elapsed time, so it carries no mutable state.
type Oscillator struct {
	// Delay is the phase offset: the oscillator holds From until Delay has
	// elapsed.
	Delay time.Duration
	// Duration is one half cycle, From to To.
	Duration time.Duration
	From     float64
	To       float64
}

// Value returns the oscillator output after elapsed time on the shared clock.
// The output ping-pongs between From and To forever on an ease-in-ease-out
// curve and never leaves [From, To].
func (o Oscillator) Value(elapsed time.Duration) float64 {
	t := elapsed - o.Delay
	if t <= 0 || o.Duration <= 0 {
		return o.From
	}

	cycle := t / o.Duration
	p := float64(t%o.Duration) / float64(o.Duration)
	if cycle%2 == 1 {
		p = 1 - p
	}

	v := o.From + (o.To-o.From)*easeInOut(p)
	return clamp(v, o.From, o.To)
}

// easeInOut starts and ends slowly, accelerating through the middle.
func easeInOut(p float64) float64 {
	return math.Cos((p+1)*math.Pi)/2 + 0.5
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func newOscillators(n int, duration, delay time.Duration, minRatio float64) []Oscillator {
	out := make([]Oscillator, n)
	for i := range out {
		out[i] = Oscillator{
			Delay:    time.Duration(i) * delay,
			Duration: duration,
			From:     minRatio,
			To:       1,
		}
	}
	return out
}
