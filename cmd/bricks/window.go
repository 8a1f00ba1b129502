package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/games/bricks"
	"github.com/vovakirdan/bricks/internal/platform/window"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. Windows report real key presses and
releases, so the paddle stops as soon as a direction key is let go.

Controls:
  Left/Right, A/D   - Move the paddle
  P                 - Pause
  R                 - Restart
  Q/Esc             - Quit

Examples:
  bricks window
  bricks window bricks_overlap --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args, bricks.VariantClassic)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("opening window", "variant", gameID, "fps", flagFPS, "scale", flagScale)
	return window.Run(game, window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Store:    store,
		Session:  sessionName(),
		Logger:   logger,
	})
}
