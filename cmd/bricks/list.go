package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all game variants registered with the platform.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return nil
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'bricks play <id>' to play a variant.")
	return nil
}
