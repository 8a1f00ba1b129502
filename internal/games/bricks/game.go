package bricks

import (
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/registry"
)

// Registered variant IDs.
const (
	VariantClassic = "bricks"
	VariantOverlap = "bricks_overlap"
)

// sharedConfig stores the config set via CLI
var sharedConfig *config.BricksConfig

// SetConfig sets the configuration used by games created through the
// registry. Without it each Reset looks the config up on disk.
func SetConfig(cfg config.BricksConfig) {
	sharedConfig = &cfg
}

// Game adapts the simulation to the platform's registry.Game interface.
type Game struct {
	variant string
	fixed   *config.BricksConfig // Per-instance config, wins over sharedConfig

	cfg    config.BricksConfig
	rules  Rules
	style  Style
	state  *State
	best   int
	misses int
}

// New creates a game using the configured collision policy. The layout is
// built by Reset, or on first use.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewOverlap creates a game that always uses the overlap collision policy.
func NewOverlap() *Game {
	return &Game{variant: VariantOverlap}
}

// NewWithConfig creates a classic game bound to cfg, ignoring SetConfig and
// config files.
func NewWithConfig(cfg config.BricksConfig) *Game {
	g := New()
	g.fixed = &cfg
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantOverlap {
		return "Bricks (overlap hits)"
	}
	return "Bricks"
}

// Playfield returns the logical surface size in pixels.
func (g *Game) Playfield() (float64, float64) {
	cfg := g.config()
	return cfg.Surface.Width, cfg.Surface.Height
}

// config returns the config for the next Reset.
func (g *Game) config() config.BricksConfig {
	switch {
	case g.fixed != nil:
		return *g.fixed
	case sharedConfig != nil:
		return *sharedConfig
	}
	cfg, err := config.LoadBricks("")
	if err != nil {
		cfg = config.DefaultBricksConfig()
	}
	return cfg
}

// Reset rebuilds the starting layout. The score resets; the session best
// and miss count survive.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg := g.config()
	if g.variant == VariantOverlap {
		cfg.Collision.Policy = config.PolicyOverlap
	}

	rules, err := RulesFromConfig(cfg)
	if err != nil {
		// Validated configs never get here; keep playing with the defaults.
		cfg = config.DefaultBricksConfig()
		rules, _ = RulesFromConfig(cfg)
	}

	g.cfg = cfg
	g.rules = rules
	g.style = StyleFromConfig(cfg.Render)
	g.state = NewState(cfg)
}

// ready builds the starting layout if Reset has not run yet.
func (g *Game) ready() *State {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.state
}

// Rules returns the active step rules.
func (g *Game) Rules() Rules {
	g.ready()
	return g.rules
}

// Sim exposes the simulation state, mainly for tests and tools.
func (g *Game) Sim() *State {
	return g.ready()
}

// Step applies the frame's key events to the paddle intent, then advances
// the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
	}

	s := g.ready()
	for _, ev := range in.Keys {
		s.HandleKey(ev)
	}

	before := s.Score
	rep := s.Step(g.rules)
	events := g.events(before, rep)

	if rep.Missed {
		g.misses++
		g.best = core.Max(g.best, rep.LostScore)
	}
	g.best = core.Max(g.best, s.Score)

	return core.StepResult{State: g.State(), Events: events}
}

// events converts a step report into platform events. Brick hits carry the
// score right after they were applied; a milestone follows the hit that
// reached it.
func (g *Game) events(before int, rep Report) []core.Event {
	if len(rep.Hits) == 0 && !rep.Missed {
		return nil
	}

	tick := g.state.Tick
	events := make([]core.Event, 0, len(rep.Hits)+len(rep.Milestones)+1)
	mi := 0
	for i, h := range rep.Hits {
		score := before + (i+1)*g.rules.PointsPerBrick
		events = append(events, core.Event{
			Kind:  core.EventBrickHit,
			Tick:  tick,
			Score: score,
			Row:   h.Row,
			Col:   h.Col,
		})
		if mi < len(rep.Milestones) && rep.Milestones[mi] == score {
			events = append(events, core.Event{Kind: core.EventMilestone, Tick: tick, Score: score})
			mi++
		}
	}

	if rep.Missed {
		events = append(events, core.Event{
			Kind:   core.EventMiss,
			Tick:   tick,
			Score:  rep.LostScore,
			Bricks: rep.LostBricks,
		})
	}
	return events
}

// Render draws the current state.
func (g *Game) Render(dst core.Surface) {
	s := g.ready()
	Draw(dst, s, g.style)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.ready()
	return core.GameState{
		Score:  s.Score,
		Best:   g.best,
		Misses: g.misses,
		Tick:   s.Tick,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(VariantClassic, func() registry.Game {
		return New()
	})
	registry.Register(VariantOverlap, func() registry.Game {
		return NewOverlap()
	})
}
