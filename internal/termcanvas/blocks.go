package termcanvas

import (
	"image/color"
	"strings"

	"github.com/olivier-w/waveview/internal/waveview"
)

// Blocks packs two pixel rows into each terminal row using the upper half
// block: the glyph takes the top pixel's color, the cell background the
// bottom pixel's.
type Blocks struct {
	grid
	profile Profile
}

// NewBlocks returns an empty Blocks surface for the given color profile.
func NewBlocks(p Profile) *Blocks {
	return &Blocks{profile: p}
}

func (b *Blocks) Resize(w, h int) { b.resize(w, h) }

func (b *Blocks) Cells(rows int) int { return rows * 2 }

func (b *Blocks) Fill(c color.Color) { b.fill(c) }

func (b *Blocks) FillRect(r waveview.Rect, c color.Color) { b.fillRect(r, c) }

func (b *Blocks) Render() string {
	rows := (b.h + 1) / 2
	var sb strings.Builder
	sb.Grow(rows * (b.w + 1))
	st := newANSIState(b.profile)

	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.w {
			top := b.at(x, row*2)
			bottom := b.at(x, row*2+1)
			b.cell(&sb, &st, top, bottom)
		}
		st.reset(&sb)
	}
	return sb.String()
}

func (b *Blocks) cell(sb *strings.Builder, st *ansiState, top, bottom uint32) {
	if b.profile == ProfileNone {
		switch {
		case top != noColor && bottom != noColor:
			sb.WriteRune('█')
		case top != noColor:
			sb.WriteRune('▀')
		case bottom != noColor:
			sb.WriteRune('▄')
		default:
			sb.WriteByte(' ')
		}
		return
	}

	switch {
	case top == noColor && bottom == noColor:
		st.set(sb, rgb{}, false, rgb{}, false)
		sb.WriteByte(' ')
	case top == bottom:
		st.set(sb, unpack(top), true, rgb{}, false)
		sb.WriteRune('█')
	case top == noColor:
		st.set(sb, unpack(bottom), true, rgb{}, false)
		sb.WriteRune('▄')
	default:
		st.set(sb, unpack(top), true, unpack(bottom), bottom != noColor)
		sb.WriteRune('▀')
	}
}
