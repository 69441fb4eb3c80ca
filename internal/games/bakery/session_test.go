package bakery

import (
	"testing"

	"github.com/vovakirdan/tui-bakery/internal/grid"
)

func testWeights() []Thing {
	return []Thing{
		Water(), Water(),
		Flour(), Flour(),
		FlavouringOf(FlavourSugar), FlavouringOf(FlavourChocolate), FlavouringOf(FlavourChilli),
	}
}

func TestSelectMoveMixScenario(t *testing.T) {
	s := NewSession(testLayout(), testWeights(), NewSeed(1))
	s.things.Put(grid.C(2, 3), Water())
	s.things.Put(grid.C(3, 3), Flour())

	if changed := s.Select(grid.C(2, 3)); changed {
		t.Error("first selection must not change the grid")
	}
	if sel, ok := s.Selected(); !ok || sel != grid.C(2, 3) {
		t.Fatalf("expected selection at (2,3), got (%v,%v)", sel, ok)
	}

	if changed := s.Select(grid.C(3, 3)); !changed {
		t.Error("second selection should resolve the move")
	}

	if s.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", s.Moves())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection must be cleared after the move")
	}
	if s.things.Has(grid.C(2, 3)) {
		t.Error("origin must be empty after mixing")
	}
	if got, _ := s.things.Get(grid.C(3, 3)); got != Bun() {
		t.Errorf("expected a plain bun at (3,3), got %v", got)
	}
}

func TestSelectSwapFallbackExchangesPositions(t *testing.T) {
	s := NewSession(testLayout(), testWeights(), NewSeed(1))
	// Distinguishable unmixable pair.
	s.things.Put(grid.C(2, 3), WaterOf(FlavourChilli))
	s.things.Put(grid.C(3, 3), WaterOf(FlavourSugar))

	s.Select(grid.C(2, 3))
	s.Select(grid.C(3, 3))

	if got, _ := s.things.Get(grid.C(2, 3)); got != WaterOf(FlavourSugar) {
		t.Errorf("expected sugar water at (2,3) after swap, got %v", got)
	}
	if got, _ := s.things.Get(grid.C(3, 3)); got != WaterOf(FlavourChilli) {
		t.Errorf("expected chilli water at (3,3) after swap, got %v", got)
	}
	if s.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", s.Moves())
	}
}

func TestSelectSuppressedWhileGameOver(t *testing.T) {
	lay := BuildLayout(2, 3, []Thing{Water()})
	s := NewSession(lay, testWeights(), NewSeed(1))
	for _, c := range lay.SpawnerCoords() {
		s.things.Put(c, Obstacle())
	}

	if !s.IsGameOver() {
		t.Fatal("all spawners occupied should be game over")
	}
	s.Select(grid.C(1, 1))
	if _, ok := s.Selected(); ok {
		t.Error("Select while game over must be a no-op")
	}
	if s.Moves() != 0 {
		t.Error("no move may be counted while game over")
	}
}

func TestRestartCarriesSeedForward(t *testing.T) {
	s := NewSession(testLayout(), testWeights(), NewSeed(42))

	s.Restart()
	first := s.things.Clone()
	firstSeed := s.SeedString()

	s.Restart()
	secondSeed := s.SeedString()

	if firstSeed == secondSeed {
		t.Error("restart must carry the seed forward, not reset it")
	}
	if grid.Equal(first, s.things) {
		// Vanishingly unlikely for a 30-cell weighted fill.
		t.Error("consecutive restarts should deal different boards")
	}
	if s.Moves() != 0 || s.Collected() != 0 {
		t.Error("restart must zero the counters")
	}
}

func TestCollectTickTracksTotal(t *testing.T) {
	s := NewSession(testLayout(), testWeights(), NewSeed(1))
	collectors := s.Layout().CollectorCoords()
	s.things.Put(collectors[0], Bun())
	s.things.Put(collectors[1], BunOf(FlavourChilli))

	if got := s.CollectTick(); got != 2 {
		t.Errorf("expected 2 buns collected, got %d", got)
	}
	if s.Collected() != 2 {
		t.Errorf("expected running total 2, got %d", s.Collected())
	}

	s.things.Put(collectors[0], Bun())
	s.CollectTick()
	if s.Collected() != 3 {
		t.Errorf("expected running total 3, got %d", s.Collected())
	}
}

func TestRenderableProjection(t *testing.T) {
	s := NewSession(testLayout(), testWeights(), NewSeed(1))
	s.things.Put(grid.C(3, 3), WaterOf(FlavourSugar))
	s.Select(grid.C(3, 3))

	view := s.Renderable()
	if view.Len() != s.Layout().Floor().Len() {
		t.Errorf("projection must cover the whole layout: %d vs %d", view.Len(), s.Layout().Floor().Len())
	}

	tile, ok := view.Get(grid.C(3, 3))
	if !ok {
		t.Fatal("expected a tile at (3,3)")
	}
	if !tile.HasThing || tile.Thing != WaterOf(FlavourSugar) {
		t.Errorf("tile should carry the sugar water, got %+v", tile)
	}
	if !tile.Highlight {
		t.Error("selected tile should be highlighted")
	}
	if tile.Floor != FloorPlain {
		t.Errorf("expected plain floor, got %v", tile.Floor)
	}

	empty, _ := view.Get(grid.C(4, 4))
	if empty.HasThing || empty.Highlight {
		t.Error("unoccupied, unselected tile should be bare")
	}
}

// Two sessions fed the identical event sequence from the same seed
// must stay byte-identical at every step.
func TestDeterministicRuns(t *testing.T) {
	run := func() *Session {
		s := NewSession(testLayout(), testWeights(), NewSeed(2024))
		s.Restart()
		return s
	}

	a, b := run(), run()

	step := func(f func(s *Session)) {
		f(a)
		f(b)
		if !grid.Equal(a.things, b.things) {
			t.Fatal("thing grids diverged")
		}
		if a.SeedString() != b.SeedString() {
			t.Fatal("seeds diverged")
		}
	}

	for i := 0; i < 20; i++ {
		step(func(s *Session) { s.Gravity() })
		step(func(s *Session) { s.SpawnTick() })
		step(func(s *Session) { s.CollectTick() })
		step(func(s *Session) { s.Select(grid.C(2, 2)) })
		step(func(s *Session) { s.Select(grid.C(3, 2)) })
	}
}
