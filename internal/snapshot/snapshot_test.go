package snapshot

import (
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/heart-of-stars/internal/config"
)

func TestStraight(t *testing.T) {
	got := straight(color.NRGBA{R: 255, G: 0, B: 51, A: 102})
	if got.R != 1 || got.G != 0 || got.B != 0.2 || got.A != 0.4 {
		t.Errorf("straight = %+v, want unpremultiplied {1 0 0.2 0.4}", got)
	}
}

func TestRenderFormsHeart(t *testing.T) {
	dc, s := Render(320, 240, 1, 0, rand.New(rand.NewPCG(3, 5)))
	defer dc.Close()

	if dc.Width() != 320 || dc.Height() != 240 {
		t.Fatalf("context %dx%d, want 320x240", dc.Width(), dc.Height())
	}
	if s.Formation.Progress != 1 {
		t.Errorf("Progress = %v, want 1", s.Formation.Progress)
	}

	// The heart is centered; at least one star must light up its middle.
	img := dc.Image()
	lit := 0
	for y := 60; y < 180; y++ {
		for x := 100; x < 220; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			bg, _, _, _ := config.SkyTop.RGBA()
			if r > bg+0x1000 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no star pixels inside the heart")
	}
}

func TestSave(t *testing.T) {
	opts := config.Default()
	opts.Width, opts.Height = 200, 150
	opts.SnapshotPath = filepath.Join(t.TempDir(), "heart.png")

	if err := Save(opts, rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(opts.SnapshotPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("png %dx%d, want 200x150", cfg.Width, cfg.Height)
	}
}

func TestSaveBadPath(t *testing.T) {
	opts := config.Default()
	opts.Width, opts.Height = 50, 50
	opts.SnapshotPath = filepath.Join(t.TempDir(), "missing", "dir", "heart.png")
	if err := Save(opts, rand.New(rand.NewPCG(1, 1))); err == nil {
		t.Error("Save into a missing directory should fail")
	}
}
