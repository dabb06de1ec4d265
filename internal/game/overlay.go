package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

const (
	caption = "Happy Valentine's Day"

	captionScale = 3
	cardScale    = 1.5
	cardWidth    = 420
	cardPadding  = 18
	glyphW       = 6 // debug font cell
	glyphH       = 16

	fadeStep = 1.0 / 30 // half a second at 60 TPS
)

var poem = []string{
	"Every star tonight was wandering,",
	"lost in a sky too wide to cross,",
	"until the dark began to bend",
	"and showed them where to go.",
}

// textImage renders lines with the debug font onto a transparent image so
// it can be scaled, tinted and faded when drawn.
func textImage(lines ...string) *ebiten.Image {
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*glyphW)
	}
	img := ebiten.NewImage(max(width, 1), max(len(lines)*glyphH, 1))
	ebitenutil.DebugPrint(img, strings.Join(lines, "\n"))
	return img
}

// skyImage paints the vertical night gradient, one row at a time.
func skyImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	top, bottom := config.SkyTop, config.SkyBottom
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.NRGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		vector.StrokeLine(img, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, c, false)
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// drawCaption shows the caption in the middle of the formed heart. Its tint
// follows the soundtrack level when music plays.
func (g *game) drawCaption(screen *ebiten.Image) {
	if g.captionAlpha <= 0 {
		return
	}
	bounds := g.captionImg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(captionScale, captionScale)
	op.GeoM.Translate(
		(float64(g.width)-float64(bounds.Dx())*captionScale)/2,
		float64(g.height)*0.5-float64(bounds.Dy())*captionScale/2,
	)
	r, gv, b := hsvToRgb(340, 0.35, 0.85+0.15*g.level)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: r, G: gv, B: b, A: 255})
	op.ColorScale.ScaleAlpha(float32(g.captionAlpha))
	screen.DrawImage(g.captionImg, op)
}

// drawCard draws the poem card where it sits on the page, so it scrolls
// with the content.
func (g *game) drawCard(screen *ebiten.Image) {
	if g.cardAlpha <= 0 {
		return
	}
	bounds := g.poemImg.Bounds()
	h := float64(bounds.Dy())*cardScale + 2*cardPadding
	x := (float64(g.width) - cardWidth) / 2
	y := g.page.CardDocumentTop() - g.page.ScrollTop
	if y > float64(g.height) || y+h < 0 {
		return
	}

	a := float32(g.cardAlpha)
	fill := config.CardFill
	fill.A = uint8(float32(fill.A) * a)
	border := config.CardBorder
	border.A = uint8(float32(border.A) * a)
	vector.DrawFilledRect(screen, float32(x), float32(y), cardWidth, float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), cardWidth, float32(h), 1.5, border, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cardScale, cardScale)
	op.GeoM.Translate(x+cardPadding, y+cardPadding)
	op.ColorScale.ScaleAlpha(a)
	screen.DrawImage(g.poemImg, op)
}

func (g *game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("Scroll to gather the stars - %3.0f%%", g.scene.Formation.Progress*100)
	switch {
	case !g.player.Loaded():
		status += " | O: open a soundtrack"
	case g.player.Paused():
		status += " | " + g.player.Track() + " (paused, Space to play)"
	default:
		status += " | " + g.player.Track() + " (Space to pause)"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
