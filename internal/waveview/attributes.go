package waveview

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Attributes is the declarative attribute set a View is built from. A zero
// field means "not set". Out of range values are ignored in favor of the
// default, never reported.
type Attributes struct {
	Color        string  `toml:"waveColor"`
	Count        int     `toml:"waveCount"`
	Width        int     `toml:"waveWidth"`
	Margin       int     `toml:"waveMargin"`
	AnimDuration int     `toml:"waveAnimDuration"`
	AnimDelay    int     `toml:"waveAnimDelay"`
	MinRatio     float64 `toml:"waveMinRatio"`
	Gravity      string  `toml:"waveGravity"`
	Background   string  `toml:"waveBackground"`
	Smoothing    float64 `toml:"waveSmoothing"`
	Render       string  `toml:"render"`
	// Padding is left, top, right, bottom in pixels.
	Padding []int `toml:"padding"`
}

// Merge returns a copy of a with every set field of b laid over it.
func (a Attributes) Merge(b Attributes) Attributes {
	if b.Color != "" {
		a.Color = b.Color
	}
	if b.Count != 0 {
		a.Count = b.Count
	}
	if b.Width != 0 {
		a.Width = b.Width
	}
	if b.Margin != 0 {
		a.Margin = b.Margin
	}
	if b.AnimDuration != 0 {
		a.AnimDuration = b.AnimDuration
	}
	if b.AnimDelay != 0 {
		a.AnimDelay = b.AnimDelay
	}
	if b.MinRatio != 0 {
		a.MinRatio = b.MinRatio
	}
	if b.Gravity != "" {
		a.Gravity = b.Gravity
	}
	if b.Background != "" {
		a.Background = b.Background
	}
	if b.Smoothing != 0 {
		a.Smoothing = b.Smoothing
	}
	if b.Render != "" {
		a.Render = b.Render
	}
	if b.Padding != nil {
		a.Padding = append([]int(nil), b.Padding...)
	}
	return a
}

// Theme holds named color and dimension slots that the *Slot mutators
// resolve against.
type Theme struct {
	// Colors maps a slot name to a color string accepted by ParseColor.
	Colors map[string]string `toml:"colors"`
	// Dimens maps a slot name to a length in density-independent pixels.
	Dimens map[string]float64 `toml:"dimens"`
}

// File is the on-disk configuration document.
//
//	[wave]
//	waveColor = "#00ffff"
//	waveCount = 6
//
//	[theme.colors]
//	accent = "#ff8800"
type File struct {
	Wave  Attributes `toml:"wave"`
	Theme Theme      `toml:"theme"`
}

// ParseFile decodes a configuration document from r.
func ParseFile(r io.Reader) (*File, error) {
	var f File
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to decode wave config")
	}
	return &f, nil
}

// LoadFile opens and decodes the configuration document at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer fh.Close()

	f, err := ParseFile(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}
