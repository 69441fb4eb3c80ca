package bakery

import "github.com/vovakirdan/tui-bakery/internal/grid"

// Session holds the mutable state of one game: the thing grid, the
// sampler seed, the current selection and the move counter. All
// mutation goes through the transition engine; the session only
// dispatches and commits results. Scheduling (when to fall, spawn or
// collect) is the caller's business — each transition just reports
// whether the grid changed.
type Session struct {
	layout      *Layout
	things      *Things
	fillWeights []Thing

	selected    grid.Coord
	hasSelected bool
	moves       int
	collected   int
	seed        Seed
}

// NewSession creates a session over a fixed layout with an empty
// thing grid. The seed is set once at process start; restarts carry
// it forward rather than resetting it.
func NewSession(lay *Layout, fillWeights []Thing, seed Seed) *Session {
	return &Session{
		layout:      lay,
		things:      NewThings(),
		fillWeights: fillWeights,
		seed:        seed,
	}
}

// Restart refills the board with the deterministic-random fill,
// zeroes the move and collection counters and clears the selection.
// The seed carries forward from wherever the previous game left it.
func (s *Session) Restart() {
	s.things, s.seed = FillBoard(s.layout, s.fillWeights, s.seed)
	s.hasSelected = false
	s.moves = 0
	s.collected = 0
}

// Select handles a resolved cell selection. The first selection is
// stored; the second attempts a move from the stored cell, clears the
// selection and counts a move. While the game is over, Select is a
// no-op. Reports whether the grid changed.
func (s *Session) Select(c grid.Coord) bool {
	if s.IsGameOver() {
		return false
	}
	if !s.hasSelected {
		s.selected = c
		s.hasSelected = true
		return false
	}
	changed := MoveAttempt(s.layout, s.things, s.selected, c)
	s.hasSelected = false
	s.moves++
	return changed
}

// ClearSelection drops any pending selection without counting a move.
func (s *Session) ClearSelection() {
	s.hasSelected = false
}

// Gravity runs one gravity pass; reports whether the grid changed.
func (s *Session) Gravity() bool {
	return ApplyGravity(s.layout, s.things)
}

// IsStable reports whether a further gravity pass would be a no-op.
func (s *Session) IsStable() bool {
	return IsStable(s.layout, s.things)
}

// SpawnTick attempts one spawn; reports whether the grid changed.
func (s *Session) SpawnTick() bool {
	var changed bool
	s.seed, changed = Spawn(s.layout, s.things, s.seed)
	return changed
}

// CollectTick runs a collection pass and returns how many buns were
// collected; the running total is tracked on the session.
func (s *Session) CollectTick() int {
	n := Collect(s.layout, s.things)
	s.collected += n
	return n
}

// IsGameOver reports whether every spawner is occupied.
func (s *Session) IsGameOver() bool {
	return IsGameOver(s.layout, s.things)
}

// Moves returns the move counter.
func (s *Session) Moves() int {
	return s.moves
}

// Collected returns the number of buns collected since the last restart.
func (s *Session) Collected() int {
	return s.collected
}

// Selected returns the pending selection, if any.
func (s *Session) Selected() (grid.Coord, bool) {
	return s.selected, s.hasSelected
}

// Layout returns the static level geometry.
func (s *Session) Layout() *Layout {
	return s.layout
}

// Things exposes the live thing grid. Callers must treat it as
// read-only; mutation goes through the transition methods.
func (s *Session) Things() *Things {
	return s.things
}

// SeedString returns the sampler seed's debug representation.
func (s *Session) SeedString() string {
	return s.seed.String()
}

// Tile is the render projection of one board cell: the floor kind,
// the occupying thing if any, and whether the cell is the current
// selection. Built fresh per render, never stored.
type Tile struct {
	Floor     FloorKind
	Thing     Thing
	HasThing  bool
	Highlight bool
}

// Renderable overlays the thing grid and selection highlight onto the
// static layout, clipped to the layout's footprint.
func (s *Session) Renderable() *grid.Grid[Tile] {
	out := grid.New[Tile]()
	for _, e := range s.layout.floor.Entries() {
		tile := Tile{Floor: e.Value.Kind}
		if t, ok := s.things.Get(e.Coord); ok {
			tile.Thing = t
			tile.HasThing = true
		}
		if s.hasSelected && s.selected == e.Coord {
			tile.Highlight = true
		}
		out.Put(e.Coord, tile)
	}
	return out
}
