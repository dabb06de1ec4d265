// Package scene simulates the star field: drifting stars that gather into a
// heart as formation progress rises, and the lines drawn between close
// stars.
//
// A Scene is owned by a single goroutine. The window calls Resize, Scroll
// and Step from its update callback and Render from its draw callback; these
// never overlap.
package scene

import (
	"math/rand/v2"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/logging"
)

type Scene struct {
	Width, Height float64
	Particles     []Particle
	Formation     Formation

	rng *rand.Rand
}

func New(rng *rand.Rand) *Scene {
	return &Scene{rng: rng}
}

// Resize discards every star and builds a fresh set for the new viewport.
func (s *Scene) Resize(w, h float64) {
	s.Width, s.Height = w, h
	s.Particles = make([]Particle, config.ParticleCount)
	for i := range s.Particles {
		s.Particles[i] = NewParticle(i, w, h, s.rng)
	}
	logging.Logger().Debug("stars rebuilt", "width", w, "height", h, "count", len(s.Particles))
}

// Scroll forwards a page scroll to the formation driver.
func (s *Scene) Scroll(m ScrollMetrics) {
	s.Formation.OnScroll(m)
}

// SetProgress forces the formation progress, bypassing the page.
func (s *Scene) SetProgress(p float64) {
	s.Formation.Progress = clamp01(p)
	s.Formation.TextShown = s.Formation.Progress > config.TextShowProgress
}

// Step advances every star by one frame, in creation order.
func (s *Scene) Step() {
	for i := range s.Particles {
		s.Particles[i].Update(s.Formation.Progress, s.Width, s.Height)
	}
}

// Settle runs n frames without drawing.
func (s *Scene) Settle(n int) {
	for range n {
		s.Step()
	}
}

// Render clears c, draws every star in creation order, then the
// connections on top.
func (s *Scene) Render(c Canvas, nowMs float64) {
	c.Clear()
	progress := s.Formation.Progress
	for i := range s.Particles {
		s.Particles[i].Draw(c, nowMs, progress)
	}
	DrawConnections(c, s.Particles, progress)
}
