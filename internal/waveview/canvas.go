package waveview

import "image/color"

// Rect is an axis-aligned rectangle in canvas pixels. X1 and Y1 are exclusive.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.X1 - r.X0 }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }

// Canvas is the drawing surface a host hands to Draw. Its origin is the
// widget's top-left corner.
type Canvas interface {
	// Fill paints the whole surface, used for the widget background.
	Fill(c color.Color)
	// FillRect paints r.
	FillRect(r Rect, c color.Color)
}

// Child is a bar sub-element in RenderScale mode. Bounds is its permanent
// layout box; ScaleY is applied around the box's vertical center.
type Child struct {
	Bounds Rect
	ScaleY float64
}

// Scaled returns the child's box after vertical scaling.
func (c Child) Scaled() Rect {
	mid := (c.Bounds.Y0 + c.Bounds.Y1) / 2
	half := c.Bounds.Dy() * c.ScaleY / 2
	return Rect{X0: c.Bounds.X0, Y0: mid - half, X1: c.Bounds.X1, Y1: mid + half}
}

func (v *View) paint(cv Canvas) {
	if v.cfg.background != nil {
		cv.Fill(v.cfg.background)
	}

	switch v.cfg.mode {
	case RenderScale:
		v.paintChildren(cv)
	default:
		v.paintBars(cv)
	}
}

// paintBars draws each bar directly from its fraction.
func (v *View) paintBars(cv Canvas) {
	c := &v.cfg
	h := float64(v.contentHeight())
	top := float64(c.padding.Top)

	for i, f := range v.fractions {
		x0 := float64(v.barLeft(i))
		x1 := x0 + float64(c.width)

		var r Rect
		switch c.gravity {
		case GravityBottom:
			bottom := top + h
			r = Rect{X0: x0, Y0: bottom - f*h, X1: x1, Y1: bottom}
		default:
			mid := top + h/2
			r = Rect{X0: x0, Y0: mid - f*h/2, X1: x1, Y1: mid + f*h/2}
		}
		cv.FillRect(r, c.color)
	}
}

// paintChildren scales each child to its fraction and composites it.
func (v *View) paintChildren(cv Canvas) {
	for i := range v.children {
		target := v.fractions[i]
		if v.cfg.smoothing > 0 {
			target = clamp(v.springs.step(i, target), v.minRatio, 1)
		}
		v.children[i].ScaleY = target
		cv.FillRect(v.children[i].Scaled(), v.cfg.color)
	}
}
