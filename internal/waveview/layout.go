package waveview

// MeasureMode is the kind of constraint a container places on one axis.
type MeasureMode int

const (
	// Unspecified lets the widget pick its own size.
	Unspecified MeasureMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost caps the size. The widget treats it like Unspecified.
	AtMost
)

// MeasureSpec is a container constraint for one axis, in pixels.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactSize returns an Exactly constraint of n pixels.
func ExactSize(n int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: n} }

// AnySize returns an Unspecified constraint.
func AnySize() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Size is a measured width and height in pixels.
type Size struct {
	W, H int
}

// Measure computes the widget size for the given constraints and records it
// for the next Draw. The width constraint is ignored: the widget always
// shrinks to fit its bars.
func (v *View) Measure(width, height MeasureSpec) Size {
	c := &v.cfg
	w := c.count*c.width + (c.count-1)*c.margin + c.padding.Horizontal()

	var content int
	if height.Mode == Exactly {
		content = max(v.minHeight, height.Size-c.padding.Vertical())
	} else {
		content = v.defaultHeight
	}

	v.size = Size{W: w, H: content + c.padding.Vertical()}
	v.measured = true
	v.layoutChildren()
	return v.size
}

// Size returns the last measured size.
func (v *View) Size() Size {
	return v.size
}

// contentHeight is the measured height minus vertical padding.
func (v *View) contentHeight() int {
	return v.size.H - v.cfg.padding.Vertical()
}

// barLeft returns the left edge of bar i in canvas pixels.
func (v *View) barLeft(i int) int {
	return v.cfg.padding.Left + i*(v.cfg.width+v.cfg.margin)
}

// layoutChildren sizes every child to one bar at full content height.
func (v *View) layoutChildren() {
	top := float64(v.cfg.padding.Top)
	h := float64(v.contentHeight())
	for i := range v.children {
		x := float64(v.barLeft(i))
		v.children[i].Bounds = Rect{X0: x, Y0: top, X1: x + float64(v.cfg.width), Y1: top + h}
	}
}
