package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-of-stars/internal/logging"
	"github.com/iburimskiy/heart-of-stars/internal/soundtrack"
)

// openSoundtrackDialog asks for a music file and starts looping it.
// Cancelling the dialog is not an error.
func (g *game) openSoundtrackDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: soundtrack.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	logging.Logger().Debug("soundtrack selected", "file", filename)
	return g.player.Load(filename, g.scene.Formation.Progress)
}
