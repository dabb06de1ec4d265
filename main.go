package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-of-stars/internal/config"
	"github.com/iburimskiy/heart-of-stars/internal/game"
	"github.com/iburimskiy/heart-of-stars/internal/logging"
	"github.com/iburimskiy/heart-of-stars/internal/snapshot"
	"github.com/iburimskiy/heart-of-stars/internal/soundtrack"
)

func main() {
	opts := config.Default()
	flag.IntVar(&opts.Width, "width", opts.Width, "window or snapshot width")
	flag.IntVar(&opts.Height, "height", opts.Height, "window or snapshot height")
	flag.Uint64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	flag.IntVar(&opts.Sections, "sections", opts.Sections, "page length in viewport heights")
	flag.StringVar(&opts.Soundtrack, "soundtrack", "", "music file to loop (wav, mp3, flac)")
	flag.StringVar(&opts.SnapshotPath, "snapshot", "", "render one frame to this PNG and exit")
	flag.Float64Var(&opts.SnapshotProgress, "snapshot-progress", opts.SnapshotProgress, "formation progress for -snapshot, 0..1")
	flag.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "heart-of-stars: %v\n", err)
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	level, ok := logging.ParseLevel(opts.LogLevel)
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if !ok {
		logging.Logger().Warn("unknown log level, using info", "level", opts.LogLevel)
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|1))
	logging.Logger().Debug("random seed", "seed", seed)

	if opts.Snapshot() {
		return snapshot.Save(opts, rng)
	}

	player := soundtrack.NewPlayer()
	if opts.Soundtrack != "" {
		// Missing music is logged; the window still opens.
		if err := player.Load(opts.Soundtrack, 0); err != nil {
			logging.Logger().Warn("soundtrack not loaded", "file", opts.Soundtrack, "error", err)
		}
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(opts, rng, player)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
