package termcanvas

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"sync"
)

// Profile is the color capability of the terminal.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileANSI16
	ProfileANSI256
	ProfileTrueColor
)

type rgb struct {
	R, G, B uint8
}

func toRGB(c color.Color) (rgb, bool) {
	if c == nil {
		return rgb{}, false
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return rgb{}, false
	}
	return rgb{R: n.R, G: n.G, B: n.B}, true
}

func (c rgb) key() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

var (
	profileOnce sync.Once
	profile     Profile
	seqCache    sync.Map
)

// DetectProfile inspects NO_COLOR, COLORTERM and TERM once per process.
func DetectProfile() Profile {
	profileOnce.Do(func() {
		profile = profileFromEnv(os.LookupEnv)
	})
	return profile
}

func profileFromEnv(lookup func(string) (string, bool)) Profile {
	if _, disabled := lookup("NO_COLOR"); disabled {
		return ProfileNone
	}
	term, _ := lookup("TERM")
	colorTerm, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	colorTerm = strings.ToLower(colorTerm)
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return ProfileANSI256
	case term == "", term == "dumb":
		return ProfileNone
	default:
		return ProfileANSI16
	}
}

const noColor = ^uint32(0)

// ansiState elides SGR sequences that would repeat the current colors.
type ansiState struct {
	profile Profile
	fg, bg  uint32
}

func newANSIState(p Profile) ansiState {
	return ansiState{profile: p, fg: noColor, bg: noColor}
}

func (s *ansiState) set(sb *strings.Builder, fg rgb, hasFg bool, bg rgb, hasBg bool) {
	if s.profile == ProfileNone {
		return
	}
	fk, bk := noColor, noColor
	if hasFg {
		fk = fg.key()
	}
	if hasBg {
		bk = bg.key()
	}
	if fk == s.fg && bk == s.bg {
		return
	}
	// Dropping a color needs a reset, there is no cheaper way back to the
	// terminal default in every profile.
	if (fk == noColor && s.fg != noColor) || (bk == noColor && s.bg != noColor) {
		sb.WriteString("\x1b[0m")
		s.fg, s.bg = noColor, noColor
	}
	if fk != s.fg && hasFg {
		sb.WriteString(colorSequence(s.profile, fg, false))
		s.fg = fk
	}
	if bk != s.bg && hasBg {
		sb.WriteString(colorSequence(s.profile, bg, true))
		s.bg = bk
	}
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == ProfileNone || (s.fg == noColor && s.bg == noColor) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.fg, s.bg = noColor, noColor
}

var ansi16 = []rgb{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

func colorSequence(p Profile, c rgb, background bool) string {
	key := uint64(p)<<32 | uint64(c.key())
	if background {
		key |= 1 << 40
	}
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	base := 38
	if background {
		base = 48
	}

	var seq string
	switch p {
	case ProfileTrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
	case ProfileANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		seq = fmt.Sprintf("\x1b[%d;5;%dm", base, 16+36*r+6*g+b)
	case ProfileANSI16:
		best := 0
		bestDist := math.MaxFloat64
		for i, q := range ansi16 {
			dr := float64(c.R) - float64(q.R)
			dg := float64(c.G) - float64(q.G)
			db := float64(c.B) - float64(q.B)
			if d := dr*dr + dg*dg + db*db; d < bestDist {
				bestDist = d
				best = i
			}
		}
		seq = fmt.Sprintf("\x1b[%dm", base-8+best)
	}

	seqCache.Store(key, seq)
	return seq
}
