package scene

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

// recorder is a Canvas that remembers what was drawn.
type recorder struct {
	ops     []string
	circles []circleOp
	lines   []lineOp
}

type circleOp struct {
	x, y, r float64
	c       color.NRGBA
}

type lineOp struct {
	x1, y1, x2, y2, w float64
	c                 color.NRGBA
}

func (r *recorder) Clear() { r.ops = append(r.ops, "clear") }

func (r *recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.ops = append(r.ops, "circle")
	r.circles = append(r.circles, circleOp{x, y, rad, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2, w float64, c color.Color) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, lineOp{x1, y1, x2, y2, w, color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func TestConnectionAlpha(t *testing.T) {
	tests := []struct {
		name        string
		dist        float64
		progress    float64
		bothOutline bool
		want        float64
	}{
		{"at threshold", 45, 1, true, 0},
		{"beyond threshold", 80, 1, false, 0},
		{"touching outline pair", 0, 1, true, 0.7},
		{"touching mixed pair", 0, 1, false, 0.35},
		{"half way outline pair", 22.5, 1, true, 0.35},
		{"half way mixed pair", 22.5, 1, false, 0.175},
		{"half formed", 0, 0.5, true, 0.35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConnectionAlpha(tt.dist, tt.progress, tt.bothOutline); !near(got, tt.want, 1e-12) {
				t.Errorf("ConnectionAlpha(%v, %v, %v) = %v, want %v", tt.dist, tt.progress, tt.bothOutline, got, tt.want)
			}
		})
	}
}

func TestConnectionAlphaLinear(t *testing.T) {
	prev := ConnectionAlpha(0, 1, false)
	for d := 1.0; d < config.ConnectionDistance; d++ {
		got := ConnectionAlpha(d, 1, false)
		if got >= prev {
			t.Fatalf("alpha not decreasing at %v: %v >= %v", d, got, prev)
		}
		want := config.MixedPairAlpha * (1 - d/config.ConnectionDistance)
		if !near(got, want, 1e-12) {
			t.Fatalf("alpha at %v = %v, want %v", d, got, want)
		}
		prev = got
	}
}

func TestConnections(t *testing.T) {
	ps := []Particle{
		{Outline: true, X: 0, Y: 0},
		{Outline: true, X: 30, Y: 40},   // 50 from #0
		{Outline: false, X: 0, Y: -10}, // 10 from #0
		{Outline: true, X: 30, Y: 20},   // 20 from #1
	}

	if links := Connections(ps, 0.05); links != nil {
		t.Fatalf("progress below 0.1 should draw nothing, got %v", links)
	}

	links := Connections(ps, 1)
	want := []Link{
		{I: 0, J: 2, Alpha: (1 - 10.0/45) * 0.35},
		{I: 0, J: 3, Alpha: (1 - 36.05551275463989/45) * 0.7},
		{I: 1, J: 3, Alpha: (1 - 20.0/45) * 0.7},
		{I: 2, J: 3, Alpha: (1 - 42.42640687119285/45) * 0.35},
	}
	if len(links) != len(want) {
		t.Fatalf("got %d links %v, want %d", len(links), links, len(want))
	}
	for i := range want {
		if links[i].I != want[i].I || links[i].J != want[i].J || !near(links[i].Alpha, want[i].Alpha, 1e-9) {
			t.Errorf("link %d = %+v, want %+v", i, links[i], want[i])
		}
	}
}

func TestDrawConnections(t *testing.T) {
	ps := []Particle{
		{Outline: true, X: 0, Y: 0},
		{Outline: true, X: 0, Y: 9},
	}
	var r recorder
	DrawConnections(&r, ps, 1)
	if len(r.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(r.lines))
	}
	l := r.lines[0]
	if l.x1 != 0 || l.y1 != 0 || l.x2 != 0 || l.y2 != 9 || l.w != config.ConnectionWidth {
		t.Errorf("line %+v has wrong geometry", l)
	}
	// (1 - 9/45) * 0.7 = 0.56
	if l.c.A != 143 || l.c.R != 209 || l.c.G != 217 || l.c.B != 230 {
		t.Errorf("line color %+v, want rgba(209,217,230,143)", l.c)
	}
}
