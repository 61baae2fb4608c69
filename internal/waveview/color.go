package waveview

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the default bar color.
var White color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

var namedColors = map[string]color.NRGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {A: 255},
	"red":         {R: 255, A: 255},
	"green":       {G: 255, A: 255},
	"blue":        {B: 255, A: 255},
	"cyan":        {G: 255, B: 255, A: 255},
	"magenta":     {R: 255, B: 255, A: 255},
	"yellow":      {R: 255, G: 255, A: 255},
	"gray":        {R: 136, G: 136, B: 136, A: 255},
	"grey":        {R: 136, G: 136, B: 136, A: 255},
	"darkgray":    {R: 68, G: 68, B: 68, A: 255},
	"lightgray":   {R: 204, G: 204, B: 204, A: 255},
	"transparent": {},
}

// ParseColor accepts "#rgb", "#rrggbb", "#aarrggbb" and a handful of color
// names. An empty or unparseable string reports false.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return nil, false
		}
		alpha = uint8(a)
		s = "#" + s[3:]
	}

	// colorful.Hex scans with Sscanf, which accepts short and trailing digits.
	if (len(s) != 4 && len(s) != 7) || !isHex(s[1:]) {
		return nil, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
