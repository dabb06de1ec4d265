package config

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	WindowWidth  = 1024
	WindowHeight = 720
	WindowTitle  = "Heart of Stars - scroll to gather the stars, O: soundtrack, Space: pause music, Esc/Q: quit"

	// Particle population
	ParticleCount = 320
	OutlineCount  = 120

	// Curve sampling
	BisectionSteps = 15
	BisectionMaxR  = 2.0
	SampleHalfBox  = 1.5
	InteriorMargin = -0.05
	HeartScaleDiv  = 3.5

	// Motion
	EaseFactor    = 0.06
	DriftMinVX    = 0.05
	DriftRangeVX  = 0.08
	DriftRangeVY  = 0.04
	OutlineMinSz  = 1.2
	InteriorMinSz = 0.5
	SizeRange     = 1.5

	// Twinkle, radians per millisecond
	TwinkleMinSpeed   = 0.001
	TwinkleSpeedRange = 0.003

	// Opacity
	SkyOpacityMin       = 0.2
	SkyOpacityRange     = 0.3
	OutlineBaseOpacity  = 0.6
	InteriorBaseOpacity = 0.25

	// Connections
	ConnectionDistance = 45.0
	ConnectionMinProg  = 0.1
	ConnectionWidth    = 0.5
	OutlinePairAlpha   = 0.7
	MixedPairAlpha     = 0.35

	// Formation driver
	TextShowProgress = 0.95
	CardRevealRatio  = 0.8
	DefaultSections  = 3

	// Soundtrack
	LevelRingSize   = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6
	QuietGain       = 0.15 // soundtrack gain while the stars are scattered

	// Scroll input, pixels
	WheelStep = 60.0
	ArrowStep = 10.0 // per tick while held
	PageRatio = 0.9
)

var (
	StarColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ConnectionColor = color.NRGBA{R: 209, G: 217, B: 230, A: 255}
	SkyTop          = color.NRGBA{R: 5, G: 6, B: 20, A: 255}
	SkyBottom       = color.NRGBA{R: 28, G: 10, B: 38, A: 255}
	CardFill        = color.NRGBA{R: 20, G: 14, B: 34, A: 200}
	CardBorder      = color.NRGBA{R: 220, G: 150, B: 190, A: 255}
)

// ErrInvalidOptions is wrapped by every error Validate returns.
var ErrInvalidOptions = errors.New("invalid options")

// Options are the runtime settings chosen on the command line.
type Options struct {
	Width    int
	Height   int
	Seed     uint64 // 0 picks a time-based seed
	Sections int

	Soundtrack string

	SnapshotPath     string
	SnapshotProgress float64

	LogLevel string
}

// Default returns the options used when no flag is given.
func Default() Options {
	return Options{
		Width:            WindowWidth,
		Height:           WindowHeight,
		Sections:         DefaultSections,
		SnapshotProgress: 1,
		LogLevel:         "info",
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Sections < 2 {
		return fmt.Errorf("%w: need at least 2 sections, got %d", ErrInvalidOptions, o.Sections)
	}
	if o.SnapshotProgress < 0 || o.SnapshotProgress > 1 {
		return fmt.Errorf("%w: snapshot progress %v outside [0,1]", ErrInvalidOptions, o.SnapshotProgress)
	}
	return nil
}

// Snapshot reports whether the run renders a PNG instead of opening a window.
func (o Options) Snapshot() bool { return o.SnapshotPath != "" }
