// Package snapshot renders the star field offscreen and saves it as a PNG.
package snapshot

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/logging"
	"github.com/iburimskiy/heart-of-stars/internal/scene"
)

// SettleFrames is how many frames run before the picture is taken; enough
// for the 6% easing to close any gap on screen.
const SettleFrames = 600

// Canvas draws onto a gg context.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
}

func NewCanvas(dc *gg.Context, background color.Color) *Canvas {
	return &Canvas{dc: dc, background: straight(background)}
}

// straight converts c to gg's unpremultiplied float color.
func straight(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA2(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

func (c *Canvas) setColor(col color.Color) {
	s := straight(col)
	c.dc.SetRGBA(s.R, s.G, s.B, s.A)
}

func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
}

func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	c.setColor(col)
	c.dc.DrawCircle(x, y, r)
	if err := c.dc.Fill(); err != nil {
		logging.Logger().Debug("fill star", "error", err)
	}
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.Color) {
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	if err := c.dc.Stroke(); err != nil {
		logging.Logger().Debug("stroke connection", "error", err)
	}
}

// Render builds a w×h scene, settles it at progress and draws one frame at
// time nowMs.
func Render(w, h int, progress, nowMs float64, rng *rand.Rand) (*gg.Context, *scene.Scene) {
	s := scene.New(rng)
	s.Resize(float64(w), float64(h))
	s.SetProgress(progress)
	s.Settle(SettleFrames)

	dc := gg.NewContext(w, h)
	s.Render(NewCanvas(dc, config.SkyTop), nowMs)
	return dc, s
}

// Save renders the scene described by opts and writes it to opts.SnapshotPath.
func Save(opts config.Options, rng *rand.Rand) error {
	dc, s := Render(opts.Width, opts.Height, opts.SnapshotProgress, 0, rng)
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(opts.SnapshotPath); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	logging.Logger().Info("snapshot written",
		"path", opts.SnapshotPath,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"progress", s.Formation.Progress,
		"links", len(scene.Connections(s.Particles, s.Formation.Progress)),
	)
	return nil
}
