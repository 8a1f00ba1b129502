package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/bricks"
	"github.com/vovakirdan/bricks/internal/loop"
	"github.com/vovakirdan/bricks/internal/registry"
)

var (
	flagTicks    int
	flagHold     string
	flagRealtime bool
	flagShow     bool
	flagCols     int
	flagRows     int
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless simulation",
	Long: `Run the game without a display for a number of ticks and print the
final state. With --hold a direction key is pressed before the first tick
and never released.

Examples:
  bricks sim --ticks 5000
  bricks sim bricks_overlap --ticks 2000 --hold left --show
  bricks sim --ticks 600 --realtime --fps 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagHold, "hold", "none", "Direction held for the whole run: left, right or none")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame as text")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Text frame width for --show")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Text frame height for --show")
}

// stopAfter stops a loop once it has waited for a number of frames.
type stopAfter struct {
	inner     loop.Scheduler
	loop      *loop.Loop
	remaining int
}

func (s *stopAfter) Wait(ctx context.Context) error {
	s.remaining--
	if s.remaining <= 0 {
		s.loop.Stop()
		return nil
	}
	return s.inner.Wait(ctx)
}

// simCounts tallies simulation events.
type simCounts struct {
	hits       int
	milestones int
	misses     int
	bestRun    int
}

func (c *simCounts) observe(ev core.Event) {
	switch ev.Kind {
	case core.EventBrickHit:
		c.hits++
	case core.EventMilestone:
		c.milestones++
	case core.EventMiss:
		c.misses++
		c.bestRun = max(c.bestRun, ev.Score)
	}
}

func holdKey(name string) (core.Key, bool, error) {
	switch name {
	case "", "none":
		return "", false, nil
	case "left":
		return core.KeyArrowLeft, true, nil
	case "right":
		return core.KeyArrowRight, true, nil
	}
	return "", false, fmt.Errorf("invalid --hold %q: want left, right or none", name)
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	key, hold, err := holdKey(flagHold)
	if err != nil {
		return err
	}
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
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Variant = gameID
	game.Reset(cfg)

	var surface core.Surface = core.NewDrawList()
	var screen *core.Screen
	if flagShow {
		screen = core.NewScreen(flagCols, flagRows)
		w, h := game.Playfield()
		surface = core.NewScreenSurface(screen, w, h)
	}

	l := loop.New(game, surface, loop.WithLogger(logger))
	var counts simCounts
	l.OnEvent(counts.observe)
	if hold {
		l.Post(core.Press(key))
	}

	var inner loop.Scheduler = loop.Unthrottled{}
	if flagRealtime {
		ticker := loop.NewTickerScheduler(flagFPS)
		defer ticker.Stop()
		inner = ticker
	}

	logger.Debug("simulation started", "variant", gameID, "ticks", flagTicks, "hold", flagHold)
	if err := l.Run(cmd.Context(), &stopAfter{inner: inner, loop: l, remaining: flagTicks}); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	printSim(cmd.OutOrStdout(), game, l.Last().State, counts)
	if screen != nil {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), screen.String())
	}
	return nil
}

func printSim(out io.Writer, game registry.Game, st core.GameState, counts simCounts) {
	fmt.Fprintf(out, "variant:    %s\n", game.ID())
	fmt.Fprintf(out, "ticks:      %d\n", st.Tick)
	fmt.Fprintf(out, "score:      %d\n", st.Score)
	fmt.Fprintf(out, "best:       %d\n", st.Best)
	fmt.Fprintf(out, "hits:       %d\n", counts.hits)
	fmt.Fprintf(out, "milestones: %d\n", counts.milestones)
	fmt.Fprintf(out, "misses:     %d (best run %d)\n", counts.misses, counts.bestRun)

	g, ok := game.(*bricks.Game)
	if !ok {
		return
	}
	snap := g.Sim().Snapshot()
	fmt.Fprintf(out, "ball:       (%.1f, %.1f) v=(%.1f, %.1f)\n", snap.BallX, snap.BallY, snap.BallDX, snap.BallDY)
	fmt.Fprintf(out, "paddle:     x=%.1f intent=%.1f\n", snap.PaddleX, snap.Intent)
	fmt.Fprintf(out, "hidden:     %d/%d\n", snap.Hidden, len(snap.Visible))
	fmt.Fprintf(out, "hash:       %016x\n", snap.Hash())
}
