package bakery

import (
	"testing"

	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/grid"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
}

func stepN(g *Game, n int, frame core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(frame)
	}
}

func TestGameResetDealsBoard(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	st := g.State()
	if st.Moves != 0 || st.Score != 0 {
		t.Errorf("fresh game should have zero counters, got %+v", st)
	}
	if g.Session().Things().Len() == 0 {
		t.Fatal("reset should deal a filled board")
	}

	// The deal covers the spawner row, so the board reads game over
	// until gravity compacts it; a few cadence intervals settle it.
	stepN(g, 600, core.NewInputFrame())
	if !g.Session().IsStable() {
		t.Fatal("board should settle within a few gravity passes")
	}
	if g.State().GameOver {
		t.Error("settling must free the spawner row")
	}
}

func TestGameCursorClampsAtWalls(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	stepN(g, 10, left)

	if g.cursorCoord().X != 1 {
		t.Errorf("cursor should stop at the wall, got %v", g.cursorCoord())
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	stepN(g, 10, down)
	if g.cursorCoord().Y != 1 {
		t.Errorf("cursor should stop above the bottom wall, got %v", g.cursorCoord())
	}
}

func TestGameConfirmSelects(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepN(g, 600, core.NewInputFrame()) // settle so Select is not suppressed

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	sel, ok := g.Session().Selected()
	if !ok {
		t.Fatal("confirm should store a selection")
	}
	if sel != g.cursorCoord() {
		t.Errorf("selection should be the cursor cell, got %v vs %v", sel, g.cursorCoord())
	}

	cancel := core.NewInputFrame()
	cancel.Set(core.ActionCancel)
	g.Step(cancel)
	if _, ok := g.Session().Selected(); ok {
		t.Error("cancel should drop the selection")
	}
}

func TestGameRestartCarriesSeed(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	before := g.Session().SeedString()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Session().SeedString() == before {
		t.Error("restart should advance the carried seed, not reset it")
	}
	if g.State().Moves != 0 {
		t.Error("restart should zero the move counter")
	}
}

func TestGamePauseStopsCadence(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}

	before := g.Session().Things().Clone()
	stepN(g, 120, core.NewInputFrame())
	if !grid.Equal(before, g.Session().Things()) {
		t.Error("no gravity may run while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestGameRenderFits(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen) // must not panic and must draw something

	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != ' ' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("render should draw the board")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("an undersized screen should hold the game paused")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen) // renders the resize hint without panicking
}
