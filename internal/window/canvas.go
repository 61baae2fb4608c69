package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/waveview/internal/waveview"
)

// imageCanvas paints onto an ebiten image.
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Fill(col color.Color) {
	c.img.Fill(col)
}

func (c imageCanvas) FillRect(r waveview.Rect, col color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.X0), float32(r.Y0), float32(r.Dx()), float32(r.Dy()), col, false)
}
