package scene

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/heart"
)

// Particle is one star. Outline and interior stars differ only in their
// target point, size range and formed opacity.
type Particle struct {
	Index   int
	Outline bool

	DriftX, DriftY float64 // free drift, wraps at the viewport edges
	HeartX, HeartY float64 // formed position, fixed until the next resize
	X, Y           float64 // rendered position
	VX, VY         float64

	Size         float64
	TwinkleSpeed float64 // radians per millisecond
	TwinklePhase float64
}

// NewParticle creates star index for a w×h viewport.
func NewParticle(index int, w, h float64, rng *rand.Rand) Particle {
	p := Particle{
		Index:   index,
		Outline: index < config.OutlineCount,
		DriftX:  rng.Float64() * w,
		DriftY:  rng.Float64() * h,
		VX:      config.DriftMinVX + rng.Float64()*config.DriftRangeVX,
		VY:      (rng.Float64() - 0.5) * config.DriftRangeVY,
	}

	var raw heart.Point
	if p.Outline {
		raw = heart.OutlinePoint(heart.OutlineAngle(index, config.OutlineCount))
		p.Size = rng.Float64()*config.SizeRange + config.OutlineMinSz
	} else {
		raw = heart.InteriorPoint(rng)
		p.Size = rng.Float64()*config.SizeRange + config.InteriorMinSz
	}
	p.HeartX, p.HeartY = HeartTarget(raw, w, h)

	p.X, p.Y = p.DriftX, p.DriftY
	p.TwinkleSpeed = rng.Float64()*config.TwinkleSpeedRange + config.TwinkleMinSpeed
	p.TwinklePhase = rng.Float64() * 2 * math.Pi
	return p
}

// HeartTarget maps a curve point to screen space: centered, scaled to the
// smaller viewport side, y flipped.
func HeartTarget(raw heart.Point, w, h float64) (x, y float64) {
	scale := math.Min(w, h) / config.HeartScaleDiv
	return w/2 + raw.X*scale, h/2 - raw.Y*scale
}

// Update advances one frame at the given formation progress.
func (p *Particle) Update(progress, w, h float64) {
	p.DriftX += p.VX
	p.DriftY += p.VY

	// Wrapping shifts the rendered position too, so the visible star keeps
	// easing from where it was relative to its new drift point.
	if p.DriftX > w {
		p.DriftX = 0
		p.X -= w
	} else if p.DriftX < 0 {
		p.DriftX = w
		p.X += w
	}
	if p.DriftY > h {
		p.DriftY = 0
		p.Y -= h
	} else if p.DriftY < 0 {
		p.DriftY = h
		p.Y += h
	}

	tx, ty := p.Target(progress)
	p.X += (tx - p.X) * config.EaseFactor
	p.Y += (ty - p.Y) * config.EaseFactor
}

// Target is the point the rendered position eases toward.
func (p *Particle) Target(progress float64) (x, y float64) {
	return p.DriftX + (p.HeartX-p.DriftX)*progress,
		p.DriftY + (p.HeartY-p.DriftY)*progress
}

// Twinkle oscillates smoothly in [0,1].
func (p *Particle) Twinkle(nowMs float64) float64 {
	return (math.Sin(nowMs*p.TwinkleSpeed+p.TwinklePhase) + 1) / 2
}

// Opacity blends the dim sky opacity into the formed heart opacity.
func (p *Particle) Opacity(nowMs, progress float64) float64 {
	t := p.Twinkle(nowMs)
	sky := config.SkyOpacityMin + t*config.SkyOpacityRange

	base := config.InteriorBaseOpacity
	if p.Outline {
		base = config.OutlineBaseOpacity
	}
	formed := base + t*(1-base)

	return sky + (formed-sky)*progress
}

func (p *Particle) Draw(c Canvas, nowMs, progress float64) {
	c.FillCircle(p.X, p.Y, p.Size, withAlpha(config.StarColor, p.Opacity(nowMs, progress)))
}
