package bakery

import "github.com/vovakirdan/tui-bakery/internal/grid"

// The transition engine: pure rule functions over (layout, thing
// grid, seed). Every function is total — invalid coordinates, missing
// occupants and non-mixable pairs all resolve to "grid unchanged",
// never an error. The caller owns the thing grid exclusively; the
// functions mutate it in place and report whether anything changed.

// Things is the dynamic board state.
type Things = grid.Grid[Thing]

// NewThings returns an empty thing grid.
func NewThings() *Things {
	return grid.New[Thing]()
}

// moveThing relocates the occupant of from into to: into an empty
// cell directly, into an occupied cell by mixing. Reports false when
// nothing changed (no occupant at from, or the pair does not react).
func moveThing(things *Things, from, to grid.Coord) bool {
	occ, ok := things.Get(from)
	if !ok {
		return false
	}
	if dst, occupied := things.Get(to); occupied {
		mixed, reacted := Mix(occ, dst)
		if !reacted {
			return false
		}
		things.Put(to, mixed)
		if from != to {
			things.Delete(from)
		}
		return true
	}
	things.Put(to, occ)
	things.Delete(from)
	return true
}

// MoveAttempt resolves a player move. Valid only between cells at
// Chebyshev distance <= 1 with a non-wall destination. A valid move
// relocates into an empty cell, mixes into an occupied one, and
// falls back to swapping the two cells when an occupied destination
// does not react — so unmixable neighbours trade places instead of
// dead-ending. An unoccupied origin is a pure no-op.
func MoveAttempt(lay *Layout, things *Things, from, to grid.Coord) bool {
	if from.Chebyshev(to) > 1 || lay.IsWall(to) {
		return false
	}
	if !things.Has(from) {
		return false
	}
	if moveThing(things, from, to) {
		return true
	}
	if from != to {
		things.Swap(from, to)
		return true
	}
	return false
}

// ApplyGravity advances every faller one cell down where possible and
// reports whether the grid changed. Obstacle membership (walls plus
// obstacle things) is snapshotted before the pass; fallers are
// processed bottom row first so a column compacts deterministically.
// A faller landing on another thing mixes with full move semantics.
// Repeated passes converge to a stable configuration.
func ApplyGravity(lay *Layout, things *Things) bool {
	blocked := make(map[grid.Coord]bool)
	for _, c := range lay.WallCoords() {
		blocked[c] = true
	}

	var fallers []grid.Coord
	for _, e := range things.Entries() {
		if e.Value.Kind == KindObstacle {
			blocked[e.Coord] = true
		} else {
			fallers = append(fallers, e.Coord)
		}
	}

	changed := false
	for _, c := range fallers {
		below := c.Below()
		if blocked[below] {
			continue
		}
		if moveThing(things, c, below) {
			changed = true
		}
	}
	return changed
}

// IsStable reports whether a further gravity pass would be a no-op.
func IsStable(lay *Layout, things *Things) bool {
	probe := things.Clone()
	return !ApplyGravity(lay, probe)
}

// Spawn inserts one random thing at one random unoccupied spawner.
// With no free spawner the state and seed are unchanged. A spawner
// with an empty content list leaves the grid unchanged but the seed
// advanced by the spawner draw, which did find a candidate.
func Spawn(lay *Layout, things *Things, seed Seed) (Seed, bool) {
	var free []grid.Coord
	for _, c := range lay.SpawnerCoords() {
		if !things.Has(c) {
			free = append(free, c)
		}
	}

	i, seed, ok := PickIndex(seed, len(free))
	if !ok {
		return seed, false
	}
	at := free[i]

	spawns := lay.SpawnsAt(at)
	j, seed, ok := PickIndex(seed, len(spawns))
	if !ok {
		return seed, false
	}

	things.Put(at, spawns[j])
	return seed, true
}

// Collect removes every bun sitting on a collector tile and returns
// how many were collected. All other things are retained, as is any
// bun elsewhere on the board.
func Collect(lay *Layout, things *Things) int {
	collected := 0
	for _, c := range lay.CollectorCoords() {
		if t, ok := things.Get(c); ok && t.Kind == KindBun {
			things.Delete(c)
			collected++
		}
	}
	return collected
}

// IsGameOver reports whether every spawner coordinate is occupied,
// leaving no free spawn point. This is a pure query; callers suppress
// selection while it holds.
func IsGameOver(lay *Layout, things *Things) bool {
	for _, c := range lay.SpawnerCoords() {
		if !things.Has(c) {
			return false
		}
	}
	return true
}

// FillBoard produces a freshly filled board: every playable cell
// except the collector row gets a weighted random pick from weights
// (repeat a thing to weight it higher). A failed pick becomes an
// obstacle. The seed is threaded through every draw in grid order,
// so the fill is reproducible.
func FillBoard(lay *Layout, weights []Thing, seed Seed) (*Things, Seed) {
	things := NewThings()
	for _, c := range lay.floor.Coords() {
		switch lay.KindAt(c) {
		case FloorWall, FloorCollector:
			continue
		}
		i, next, ok := PickIndex(seed, len(weights))
		seed = next
		if !ok {
			things.Put(c, Obstacle())
			continue
		}
		things.Put(c, weights[i])
	}
	return things, seed
}
