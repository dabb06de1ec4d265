package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws the scene onto an ebiten image. Clear paints the sky
// backdrop instead of leaving the frame transparent.
type screenCanvas struct {
	dst *ebiten.Image
	sky *ebiten.Image
}

func (c screenCanvas) Clear() {
	c.dst.Clear()
	if c.sky != nil {
		c.dst.DrawImage(c.sky, nil)
	}
}

func (c screenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

func (c screenCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}
