package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game with a variant picker. Games are not
shared between connections; only the in-memory run log is, and it is
discarded when the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bricks/host_key

Examples:
  bricks serve                           # Listen on :23234 with auto-generated key
  bricks serve --ssh :2222               # Listen on port 2222
  bricks serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", defaults.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

// serverConfig applies the serve flags on top of the server defaults.
func serverConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	server, err := tui.NewSSHServer(serverConfig(), logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting bricks SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
