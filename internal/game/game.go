// Package game runs the star field in an ebiten window. The window stands in
// for a scrolling web page: the wheel and keyboard scroll a virtual
// document, and scroll position drives how far the stars have gathered into
// the heart.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/logging"
	"github.com/iburimskiy/heart-of-stars/internal/scene"
	"github.com/iburimskiy/heart-of-stars/internal/soundtrack"
)

type game struct {
	scene  *scene.Scene
	page   *scene.Page
	player *soundtrack.Player
	start  time.Time

	// viewport, applied in Update when Layout reports a new size
	width, height      int
	pendingW, pendingH int

	// overlays
	sky          *ebiten.Image
	captionImg   *ebiten.Image
	poemImg      *ebiten.Image
	captionAlpha float64
	cardAlpha    float64
	level        float64

	lastErr error
}

func NewGame(opts config.Options, rng *rand.Rand, player *soundtrack.Player) *game {
	return &game{
		scene:    scene.New(rng),
		page:     scene.NewPage(float64(opts.Height), opts.Sections),
		player:   player,
		start:    time.Now(),
		pendingW: opts.Width,
		pendingH: opts.Height,
	}
}

func (g *game) Update() error {
	if g.pendingW != g.width || g.pendingH != g.height {
		g.resize(g.pendingW, g.pendingH)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openSoundtrackDialog(); err != nil {
			logging.Logger().Warn("open soundtrack", "error", err)
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}

	if scrollPage(g.page) {
		g.scroll()
	}

	g.scene.Step()

	g.level = g.player.Level()
	f := g.scene.Formation
	g.captionAlpha = approach(g.captionAlpha, boolAlpha(f.TextShown), fadeStep)
	g.cardAlpha = approach(g.cardAlpha, boolAlpha(f.CardVisible), fadeStep)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Render(screenCanvas{dst: screen, sky: g.sky}, g.nowMs())
	g.drawCard(screen)
	g.drawCaption(screen)
	g.drawStatus(screen)
}

// Layout follows the window size; the change is applied on the next Update
// so the star set is never rebuilt in the middle of a frame.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
	}
	return g.pendingW, g.pendingH
}

// Close releases the soundtrack.
func (g *game) Close() {
	g.player.Close()
}

func (g *game) resize(w, h int) {
	g.width, g.height = w, h
	g.page.Resize(float64(h))
	g.scene.Resize(float64(w), float64(h))
	g.sky = skyImage(w, h)
	if g.captionImg == nil {
		g.captionImg = textImage(caption)
		g.poemImg = textImage(poem...)
	}
	g.scroll()
	logging.Logger().Info("viewport resized", "width", w, "height", h)
}

// scroll re-reads the page after it moved or changed size.
func (g *game) scroll() {
	g.scene.Scroll(g.page.Metrics())
	g.player.SetProgress(g.scene.Formation.Progress)
}

func (g *game) nowMs() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

func boolAlpha(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
