// Package termcanvas rasterizes waveview drawing onto terminal cells.
//
// Both surfaces keep a plain pixel grid. Blocks maps two pixels onto each
// cell with half-block glyphs, Braille maps a 2x4 dot grid onto each cell.
package termcanvas

import (
	"image/color"
	"math"

	"github.com/olivier-w/waveview/internal/waveview"
)

// Surface is a waveview.Canvas that renders itself as terminal text.
type Surface interface {
	waveview.Canvas
	// Resize discards the pixels and sets a new size in pixels.
	Resize(w, h int)
	// Cells converts a terminal row count into pixel rows.
	Cells(rows int) int
	// Render returns the grid as lines of text, without a trailing newline.
	Render() string
}

// grid is a w by h pixel buffer. Empty pixels hold noColor.
type grid struct {
	w, h int
	pix  []uint32
}

func (g *grid) resize(w, h int) {
	g.w, g.h = max(w, 0), max(h, 0)
	g.pix = make([]uint32, g.w*g.h)
	g.clear()
}

func (g *grid) clear() {
	for i := range g.pix {
		g.pix[i] = noColor
	}
}

func (g *grid) at(x, y int) uint32 {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return noColor
	}
	return g.pix[y*g.w+x]
}

func (g *grid) fill(c color.Color) {
	col, ok := toRGB(c)
	if !ok {
		g.clear()
		return
	}
	k := col.key()
	for i := range g.pix {
		g.pix[i] = k
	}
}

// fillRect sets every pixel whose center lies inside r.
func (g *grid) fillRect(r waveview.Rect, c color.Color) {
	col, ok := toRGB(c)
	if !ok {
		return
	}
	x0, x1 := span(r.X0, r.X1, g.w)
	y0, y1 := span(r.Y0, r.Y1, g.h)
	k := col.key()
	for y := y0; y < y1; y++ {
		row := g.pix[y*g.w : (y+1)*g.w]
		for x := x0; x < x1; x++ {
			row[x] = k
		}
	}
}

// span returns the pixel indices [lo, hi) whose centers fall in [a, b).
func span(a, b float64, limit int) (int, int) {
	lo := int(math.Ceil(a - 0.5))
	hi := int(math.Ceil(b - 0.5))
	return min(max(lo, 0), limit), min(max(hi, 0), limit)
}

func unpack(k uint32) rgb {
	return rgb{R: uint8(k >> 16), G: uint8(k >> 8), B: uint8(k)}
}
