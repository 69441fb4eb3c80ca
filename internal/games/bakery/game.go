package bakery

import (
	"github.com/vovakirdan/tui-bakery/internal/config"
	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/grid"
	"github.com/vovakirdan/tui-bakery/internal/registry"
)

// Variant selects the registered board size.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantLarge   Variant = "large"
)

// Game adapts the pure session to the platform Game interface. It
// owns the scheduling policy the engine deliberately leaves out:
// gravity on a fixed cadence, a collection sweep shortly after things
// settle and a spawn attempt shortly after a successful move.
type Game struct {
	variant Variant
	conf    config.BakeryConfig
	session *Session

	cursor  grid.Coord
	screenW int
	screenH int

	tick      uint64
	fallIn    int
	collectIn int // 0 = nothing scheduled
	spawnIn   int // 0 = nothing scheduled

	paused   bool
	tooSmall bool
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets a custom config file path for subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// New creates the classic 6x6 game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLarge creates the 8x8 variant.
func NewLarge() *Game {
	return &Game{variant: VariantLarge}
}

func init() {
	registry.Register("bakery", func() registry.Game {
		return New()
	})
	registry.Register("bakery_large", func() registry.Game {
		return NewLarge()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantLarge {
		return "bakery_large"
	}
	return "bakery"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLarge {
		return "Bun Kitchen (Large)"
	}
	return "Bun Kitchen"
}

// parseThings converts config strings into things, dropping entries
// that do not parse rather than failing the whole game.
func parseThings(specs []string) []Thing {
	out := make([]Thing, 0, len(specs))
	for _, s := range specs {
		if t, err := ParseThing(s); err == nil {
			out = append(out, t)
		}
	}
	return out
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadBakery(configPath)
	if err != nil {
		conf = config.DefaultBakeryConfig()
	}
	if g.variant == VariantLarge {
		conf.Board.Width = 8
		conf.Board.Height = 8
	}
	g.conf = conf

	spawns := parseThings(conf.Spawner.Contents)
	weights := parseThings(conf.Fill.Weights)

	lay := BuildLayout(conf.Board.Width, conf.Board.Height, spawns)
	g.session = NewSession(lay, weights, NewSeed(cfg.Seed))
	g.session.Restart()

	g.cursor = grid.C(1+conf.Board.Width/2, 1+conf.Board.Height/2)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tick = 0
	g.fallIn = conf.Cadence.FallTicks
	g.collectIn = 0
	g.spawnIn = 0
	g.paused = false

	g.checkScreenSize()
}

// SetScreenSize picks up a new terminal size without restarting the
// running board.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SeedString returns the current sampler seed for result storage.
func (g *Game) SeedString() string {
	return g.session.SeedString()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := (g.conf.Board.Width+2)*2 + 2
	minH := g.conf.Board.Height + 2 + 5
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.fallIn = g.conf.Cadence.FallTicks
		g.collectIn = 0
		g.spawnIn = 0
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	if in.Has(core.ActionCancel) {
		g.session.ClearSelection()
	}
	if in.Has(core.ActionConfirm) {
		if g.session.Select(g.cursor) {
			g.spawnIn = g.conf.Cadence.SpawnDelay
		}
	}

	g.runCadence()
	return core.StepResult{State: g.State()}
}

// handleCursor moves the cursor within the playable interior.
func (g *Game) handleCursor(in core.InputFrame) {
	c := g.cursor
	switch {
	case in.Has(core.ActionUp):
		c = c.Add(0, 1)
	case in.Has(core.ActionDown):
		c = c.Add(0, -1)
	case in.Has(core.ActionLeft):
		c = c.Add(-1, 0)
	case in.Has(core.ActionRight):
		c = c.Add(1, 0)
	}
	if !g.session.Layout().IsWall(c) {
		g.cursor = c
	}
}

// runCadence drives the tick counters: gravity on a fixed interval, a
// collection sweep after a gravity pass that changed the grid, and a
// spawn attempt scheduled by a successful move.
func (g *Game) runCadence() {
	g.fallIn--
	if g.fallIn <= 0 {
		if g.session.Gravity() {
			g.collectIn = g.conf.Cadence.CollectDelay
		}
		g.fallIn = g.conf.Cadence.FallTicks
	}

	if g.collectIn > 0 {
		g.collectIn--
		if g.collectIn == 0 {
			g.session.CollectTick()
		}
	}

	if g.spawnIn > 0 {
		g.spawnIn--
		if g.spawnIn == 0 {
			g.session.SpawnTick()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Collected(),
		Moves:    g.session.Moves(),
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying session for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}
