// bricks is a single-screen paddle-and-ball brick breaker for terminals,
// desktop windows and SSH.
//
// Usage:
//
//	bricks list               - List available variants
//	bricks play [variant]     - Play in the terminal
//	bricks window [variant]   - Play in a desktop window
//	bricks serve              - Start SSH server for remote play
//	bricks sim [variant]      - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Load game config from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/games/bricks"
	"github.com/vovakirdan/bricks/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - a paddle and ball brick breaker",
	Long: `Bricks is a single-screen brick breaker. Move the paddle, keep the
ball in play and knock out the bricks.

Available commands:
  list     - Show all available variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation and print the final state

Examples:
  bricks play
  bricks play bricks_overlap
  bricks window --scale 1.5
  bricks serve --ssh :2222
  bricks sim --ticks 5000 --hold right`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the game config once for every command.
func loadConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	cfg, err := config.LoadBricks(flagConfig)
	if err != nil {
		return err
	}
	bricks.SetConfig(cfg)
	return nil
}

// variantArg returns the variant named on the command line, or fallback.
func variantArg(args []string, fallback string) (string, error) {
	id := fallback
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q; run 'bricks list' to see available variants", id)
	}
	return id, nil
}
