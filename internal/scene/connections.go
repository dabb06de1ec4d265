package scene

import (
	"math"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

// Link is a connection line between particles I < J.
type Link struct {
	I, J  int
	Alpha float64
}

// ConnectionAlpha is the line opacity for two stars dist apart. Lines
// between two outline stars are twice as strong as any other pair.
func ConnectionAlpha(dist, progress float64, bothOutline bool) float64 {
	if dist >= config.ConnectionDistance {
		return 0
	}
	weight := config.MixedPairAlpha
	if bothOutline {
		weight = config.OutlinePairAlpha
	}
	return (1 - dist/config.ConnectionDistance) * progress * weight
}

// Connections lists every pair of stars close enough to be joined, in pair
// order. It checks all n² pairs, which stays cheap for a few hundred stars.
func Connections(ps []Particle, progress float64) []Link {
	if progress < config.ConnectionMinProg {
		return nil
	}
	var links []Link
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			dist := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if dist < config.ConnectionDistance {
				links = append(links, Link{
					I:     i,
					J:     j,
					Alpha: ConnectionAlpha(dist, progress, ps[i].Outline && ps[j].Outline),
				})
			}
		}
	}
	return links
}

func DrawConnections(c Canvas, ps []Particle, progress float64) {
	for _, l := range Connections(ps, progress) {
		a, b := &ps[l.I], &ps[l.J]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, config.ConnectionWidth, withAlpha(config.ConnectionColor, l.Alpha))
	}
}
