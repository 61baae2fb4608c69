package termcanvas

import (
	"image/color"
	"strings"

	"github.com/olivier-w/waveview/internal/waveview"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille gives 2x horizontal and 4x vertical resolution per cell. A cell
// has a single foreground color, taken from its first lit dot. The
// background fill is not drawn.
type Braille struct {
	grid
	profile Profile
	bg      uint32
}

// NewBraille returns an empty Braille surface for the given color profile.
func NewBraille(p Profile) *Braille {
	return &Braille{profile: p, bg: noColor}
}

func (b *Braille) Resize(w, h int) { b.resize(w, h) }

func (b *Braille) Cells(rows int) int { return rows * 4 }

// Fill clears the dots. Pixels later painted in the same color as c are
// treated as background too.
func (b *Braille) Fill(c color.Color) {
	b.clear()
	b.bg = noColor
	if col, ok := toRGB(c); ok {
		b.bg = col.key()
	}
}

func (b *Braille) FillRect(r waveview.Rect, c color.Color) { b.fillRect(r, c) }

func (b *Braille) lit(x, y int) uint32 {
	k := b.at(x, y)
	if k == b.bg {
		return noColor
	}
	return k
}

func (b *Braille) Render() string {
	cols := (b.w + 1) / 2
	rows := (b.h + 3) / 4
	var sb strings.Builder
	st := newANSIState(b.profile)

	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range cols {
			var pattern uint
			fg := noColor
			for dx := range 2 {
				for dy := range 4 {
					k := b.lit(col*2+dx, row*4+dy)
					if k == noColor {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if fg == noColor {
						fg = k
					}
				}
			}
			if pattern == 0 {
				sb.WriteByte(' ')
				continue
			}
			st.set(&sb, unpack(fg), true, rgb{}, false)
			sb.WriteRune(rune(0x2800 + pattern))
		}
		st.reset(&sb)
	}
	return sb.String()
}
