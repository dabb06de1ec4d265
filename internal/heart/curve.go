// Package heart samples points on and inside the heart curve
// (x²+y²-1)³ - x²y³ = 0.
package heart

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

// Point is a position in curve space, y pointing up.
type Point struct {
	X, Y float64
}

// Center is the origin of the rays cast by OutlinePoint. It sits inside the
// curve, slightly above the lower cusp's midpoint.
var Center = Point{X: 0, Y: 0.2}

// Implicit evaluates the heart polynomial. Negative values are inside.
func Implicit(x, y float64) float64 {
	s := x*x + y*y - 1
	return s*s*s - x*x*y*y*y
}

// OutlineAngle is the ray angle for outline particle i of n.
func OutlineAngle(i, n int) float64 {
	return float64(i) / float64(n) * 2 * math.Pi
}

// OutlinePoint finds where the ray from Center at angle crosses the curve.
// It always runs config.BisectionSteps halvings of [0, config.BisectionMaxR].
func OutlinePoint(angle float64) Point {
	dx, dy := math.Cos(angle), math.Sin(angle)
	rMin, rMax := 0.0, config.BisectionMaxR

	for range config.BisectionSteps {
		r := (rMin + rMax) / 2
		if Implicit(Center.X+r*dx, Center.Y+r*dy) <= 0 {
			rMin = r
		} else {
			rMax = r
		}
	}

	r := (rMin + rMax) / 2
	return Point{X: Center.X + r*dx, Y: Center.Y + r*dy}
}

// InteriorPoint rejection-samples the box [-1.5, 1.5]² until it draws a
// point at least config.InteriorMargin inside the curve. The interior covers
// a fixed share of the box, so the loop ends almost surely.
func InteriorPoint(rng *rand.Rand) Point {
	for {
		x := (rng.Float64() - 0.5) * 2 * config.SampleHalfBox
		y := (rng.Float64() - 0.5) * 2 * config.SampleHalfBox
		if Implicit(x, y) <= config.InteriorMargin {
			return Point{X: x, Y: y}
		}
	}
}
