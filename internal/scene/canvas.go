package scene

import "image/color"

// Canvas is the drawing surface the scene renders onto. Coordinates are in
// pixels with y pointing down.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// withAlpha returns c with its alpha channel replaced by a in [0,1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
