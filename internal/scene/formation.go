package scene

import (
	"math"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

// ScrollMetrics is what the page reports on every scroll.
type ScrollMetrics struct {
	ScrollTop      float64
	DocumentHeight float64
	ViewportHeight float64

	HasCard bool
	CardTop float64 // relative to the top of the viewport
}

// Formation is the scroll-driven state read by every frame.
type Formation struct {
	Progress    float64
	TextShown   bool
	CardVisible bool // one-way; never cleared once set
}

// Progress converts a scroll offset into formation progress in [0,1]. A page
// that cannot scroll has progress 0.
func Progress(scrollTop, documentHeight, viewportHeight float64) float64 {
	span := documentHeight - viewportHeight
	if span <= 0 {
		return 0
	}
	p := scrollTop / span
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return clamp01(p)
}

// OnScroll applies one scroll event.
func (f *Formation) OnScroll(m ScrollMetrics) {
	f.Progress = Progress(m.ScrollTop, m.DocumentHeight, m.ViewportHeight)
	f.TextShown = f.Progress > config.TextShowProgress
	if m.HasCard && m.CardTop < m.ViewportHeight*config.CardRevealRatio {
		f.CardVisible = true
	}
}

// Page is the virtual scrollable document the window stands in for: a
// stack of viewport-high sections with the poem card near the start of the
// second-to-last one.
type Page struct {
	ViewportHeight float64
	Sections       int
	ScrollTop      float64
}

func NewPage(viewportHeight float64, sections int) *Page {
	return &Page{ViewportHeight: viewportHeight, Sections: sections}
}

func (p *Page) DocumentHeight() float64 {
	return p.ViewportHeight * float64(p.Sections)
}

func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.DocumentHeight()-p.ViewportHeight)
}

// ScrollTo moves to y, kept within the scrollable range. It reports whether
// the offset changed.
func (p *Page) ScrollTo(y float64) bool {
	y = math.Max(0, math.Min(y, p.MaxScroll()))
	if y == p.ScrollTop {
		return false
	}
	p.ScrollTop = y
	return true
}

func (p *Page) ScrollBy(dy float64) bool {
	return p.ScrollTo(p.ScrollTop + dy)
}

// Resize changes the viewport height and keeps the relative scroll position.
func (p *Page) Resize(viewportHeight float64) {
	frac := 0.0
	if m := p.MaxScroll(); m > 0 {
		frac = p.ScrollTop / m
	}
	p.ViewportHeight = viewportHeight
	p.ScrollTop = frac * p.MaxScroll()
}

// CardDocumentTop is the card's offset from the top of the document.
func (p *Page) CardDocumentTop() float64 {
	return float64(max(p.Sections-2, 0))*p.ViewportHeight + p.ViewportHeight/4
}

func (p *Page) Metrics() ScrollMetrics {
	return ScrollMetrics{
		ScrollTop:      p.ScrollTop,
		DocumentHeight: p.DocumentHeight(),
		ViewportHeight: p.ViewportHeight,
		HasCard:        true,
		CardTop:        p.CardDocumentTop() - p.ScrollTop,
	}
}
