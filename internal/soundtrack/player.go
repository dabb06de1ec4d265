// Package soundtrack plays an optional looped music file behind the star
// field. The music starts quiet and swells as the heart forms.
package soundtrack

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/logging"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Patterns lists the file patterns Decode understands, for file dialogs.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Decode opens path and picks a decoder from its extension. The returned
// streamer owns the file; closing it closes the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Gain is the linear soundtrack gain at the given formation progress.
func Gain(progress float64) float64 {
	progress = math.Max(0, math.Min(1, progress))
	return config.QuietGain + (1-config.QuietGain)*progress
}

// volumeFor converts a linear gain into effects.Volume settings (base 2).
// log2(0) is -Inf, so zero gain is expressed as silence.
func volumeFor(gain float64) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(gain), false
}

// Player owns the speaker and the currently looping track. Its methods are
// called from the window's update callback; the speaker streams on its own
// goroutine and is guarded by speaker.Lock.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *levelTap

	path     string
	paused   bool
	initDone bool
	level    float64
}

func NewPlayer() *Player { return &Player{} }

// Load stops the current track, if any, and loops the file at path.
func (p *Player) Load(path string, progress float64) error {
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	// streamer -> loop -> tap -> ctrl -> volume
	t := newLevelTap(beep.Loop(-1, streamer), config.LevelRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}
	vol, silent := volumeFor(Gain(progress))
	volume := &effects.Volume{Streamer: ctrl, Base: 2, Volume: vol, Silent: silent}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("reinit speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.closeStreamer()

	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.volume = volume
	p.tap = t
	p.path = path
	p.paused = false
	p.level = 0

	speaker.Play(volume)
	logging.Logger().Info("soundtrack playing", "file", filepath.Base(path), "rate", int(format.SampleRate))
	return nil
}

// Loaded reports whether a track is playing or paused.
func (p *Player) Loaded() bool { return p.ctrl != nil }

func (p *Player) Paused() bool { return p.paused }

func (p *Player) Track() string {
	if p.path == "" {
		return ""
	}
	return filepath.Base(p.path)
}

// SetProgress fades the music with formation progress.
func (p *Player) SetProgress(progress float64) {
	if p.volume == nil {
		return
	}
	vol, silent := volumeFor(Gain(progress))
	speaker.Lock()
	p.volume.Volume = vol
	p.volume.Silent = silent
	speaker.Unlock()
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Level is a smoothed, compressed loudness in [0,1] of what just played.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	mag := math.Min(1, math.Pow(p.tap.rms(config.LevelWindow), 0.3))
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
	return p.level
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.closeStreamer()
	p.ctrl, p.volume, p.tap = nil, nil, nil
}

func (p *Player) closeStreamer() {
	if p.streamer == nil {
		return
	}
	if err := p.streamer.Close(); err != nil {
		logging.Logger().Warn("close soundtrack", "error", err)
	}
	p.streamer = nil
}
