package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/scene"
)

// scrollPage applies this frame's wheel and keyboard scrolling to the page
// and reports whether the offset moved. A wheel notch down (negative y)
// scrolls the page down, as in a browser.
func scrollPage(p *scene.Page) bool {
	moved := false

	if _, wy := ebiten.Wheel(); wy != 0 {
		moved = p.ScrollBy(-wy*config.WheelStep) || moved
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moved = p.ScrollBy(config.ArrowStep) || moved
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moved = p.ScrollBy(-config.ArrowStep) || moved
	}

	page := p.ViewportHeight * config.PageRatio
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		moved = p.ScrollBy(page) || moved
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		moved = p.ScrollBy(-page) || moved
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		moved = p.ScrollTo(0) || moved
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		moved = p.ScrollTo(p.MaxScroll()) || moved
	}
	return moved
}
