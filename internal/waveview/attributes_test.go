package waveview

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{in: "#00ffff", want: color.NRGBA{G: 255, B: 255, A: 255}, ok: true},
		{in: "#00FFFF", want: color.NRGBA{G: 255, B: 255, A: 255}, ok: true},
		{in: "#fff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, ok: true},
		{in: "#80ff0000", want: color.NRGBA{R: 255, A: 0x80}, ok: true},
		{in: " Cyan ", want: color.NRGBA{G: 255, B: 255, A: 255}, ok: true},
		{in: "", ok: false},
		{in: "ff0000", ok: false},
		{in: "#ff00", ok: false},
		{in: "#12345", ok: false},
		{in: "#ff00ff0", ok: false},
		{in: "#ff00ff00ff", ok: false},
		{in: "#12345z", ok: false},
		{in: "#zzzzzz", ok: false},
		{in: "#zz000000", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseColor(%q): expected ok=%v, got %v", tt.in, tt.ok, ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseGravity(t *testing.T) {
	if g, ok := ParseGravity("BOTTOM"); !ok || g != GravityBottom {
		t.Fatalf("expected bottom, got %v %v", g, ok)
	}
	if g, ok := ParseGravity("center"); !ok || g != GravityCenter {
		t.Fatalf("expected center, got %v %v", g, ok)
	}
	if _, ok := ParseGravity("top"); ok {
		t.Fatal("expected top to be rejected")
	}
}

const sampleConfig = `
[wave]
waveColor = "#00ffff"
waveCount = 6
waveWidth = 30
waveMargin = 50
waveAnimDuration = 1000
waveAnimDelay = 350
waveMinRatio = 0.2
waveGravity = "bottom"
padding = [1, 2, 3, 4]

[theme.colors]
accent = "#ff8800"

[theme.dimens]
thin = 2.0
`

func TestParseFile(t *testing.T) {
	f, err := ParseFile(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Attributes{
		Color:        "#00ffff",
		Count:        6,
		Width:        30,
		Margin:       50,
		AnimDuration: 1000,
		AnimDelay:    350,
		MinRatio:     0.2,
		Gravity:      "bottom",
		Padding:      []int{1, 2, 3, 4},
	}
	if !reflect.DeepEqual(f.Wave, want) {
		t.Fatalf("expected %+v, got %+v", want, f.Wave)
	}
	if f.Theme.Colors["accent"] != "#ff8800" {
		t.Fatalf("expected accent slot, got %v", f.Theme.Colors)
	}
	if f.Theme.Dimens["thin"] != 2 {
		t.Fatalf("expected thin slot, got %v", f.Theme.Dimens)
	}
}

func TestParseFileRejectsBrokenTOML(t *testing.T) {
	_, err := ParseFile(strings.NewReader("[wave\nwaveCount = "))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "failed to decode wave config") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Wave.Count != 6 {
		t.Fatalf("expected 6 bars, got %d", f.Wave.Count)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAttributesMerge(t *testing.T) {
	base := Attributes{Color: "cyan", Count: 6, Width: 30, Gravity: "bottom", Padding: []int{1, 1, 1, 1}}
	got := base.Merge(Attributes{Count: 4, MinRatio: 0.5})

	if got.Color != "cyan" || got.Width != 30 || got.Gravity != "bottom" {
		t.Fatalf("expected unset fields kept, got %+v", got)
	}
	if got.Count != 4 || got.MinRatio != 0.5 {
		t.Fatalf("expected set fields applied, got %+v", got)
	}
	if len(got.Padding) != 4 {
		t.Fatalf("expected padding kept, got %v", got.Padding)
	}
}

func TestThemeSlots(t *testing.T) {
	theme := Theme{
		Colors: map[string]string{"accent": "#ff8800", "broken": "nope"},
		Dimens: map[string]float64{"thin": 2, "wide": 5.5, "zero": 0},
	}
	v := New(Attributes{}, WithTheme(theme), WithDensity(2))

	v.SetColorSlot("accent")
	if v.Color() != (color.NRGBA{R: 255, G: 0x88, A: 255}) {
		t.Fatalf("expected accent color, got %v", v.Color())
	}
	v.SetColorSlot("broken")
	v.SetColorSlot("missing")
	if v.Color() != (color.NRGBA{R: 255, G: 0x88, A: 255}) {
		t.Fatalf("expected unknown slots ignored, got %v", v.Color())
	}

	v.SetBarWidthSlot("thin")
	v.SetBarMarginSlot("wide")
	if v.BarWidth() != 4 || v.BarMargin() != 11 {
		t.Fatalf("expected 4px width and 11px margin, got %d and %d", v.BarWidth(), v.BarMargin())
	}
	v.SetBarWidthSlot("zero")
	v.SetBarMarginSlot("missing")
	if v.BarWidth() != 4 || v.BarMargin() != 11 {
		t.Fatalf("expected invalid slots ignored, got %d and %d", v.BarWidth(), v.BarMargin())
	}

	v.SetBarWidthDp(3)
	if v.BarWidth() != 6 {
		t.Fatalf("expected 3dp = 6px, got %d", v.BarWidth())
	}
}
