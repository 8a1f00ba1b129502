package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without a variant a picker is shown.

Terminals do not report key releases, so the paddle keeps moving while
a direction key repeats and stops shortly after it is let go.

Controls:
  Left/Right, A/D   - Move the paddle
  P                 - Pause
  R                 - Restart
  ?                 - Rules
  T                 - Runs this session
  Q/Ctrl+C          - Quit

Examples:
  bricks play
  bricks play bricks_overlap
  bricks play --config ./my-bricks.yaml --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	// The terminal UI owns stdout; logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS

	gameID := ""
	if len(args) > 0 {
		if gameID, err = variantArg(args, ""); err != nil {
			return err
		}
	} else {
		result, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			return fmt.Errorf("menu: %w", menuErr)
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg = result.Config
	}
	cfg.Variant = gameID

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Open the session run log
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "variant", gameID, "fps", cfg.TickRate)
	err = tui.Run(game, cfg, tui.Options{
		Store:   store,
		Logger:  logger,
		Session: sessionName(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// sessionName names the local player in the run log.
func sessionName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
