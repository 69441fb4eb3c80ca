// Package grid provides a sparse, coordinate-addressed 2D grid used as
// the board representation for the bakery simulation. Occupancy is
// modeled by key presence: an absent coordinate means "empty", never a
// zero value. The grid has no implicit bounds and may hold disjoint
// regions and negative coordinates.
package grid

import "sort"

// Grid is a sparse mapping from Coord to a payload value.
type Grid[T any] struct {
	cells map[Coord]T
}

// New creates an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[Coord]T)}
}

// Entry is a single (coordinate, value) pair.
type Entry[T any] struct {
	Coord Coord
	Value T
}

// FromEntries builds a grid from a list of entries. Later entries
// overwrite earlier ones at the same coordinate.
func FromEntries[T any](entries []Entry[T]) *Grid[T] {
	g := New[T]()
	for _, e := range entries {
		g.Put(e.Coord, e.Value)
	}
	return g
}

// Get returns the value at the coordinate and whether it is present.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	v, ok := g.cells[c]
	return v, ok
}

// Has returns true if the coordinate is occupied.
func (g *Grid[T]) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Put inserts or overwrites the value at the coordinate.
func (g *Grid[T]) Put(c Coord, v T) {
	g.cells[c] = v
}

// Delete removes the coordinate from the grid. Removing an absent
// coordinate is a no-op.
func (g *Grid[T]) Delete(c Coord) {
	delete(g.cells, c)
}

// Swap exchanges the contents of two coordinates, including the
// present/absent state: if one side is absent, the result has the
// other side absent there too.
func (g *Grid[T]) Swap(a, b Coord) {
	av, aok := g.cells[a]
	bv, bok := g.cells[b]
	if bok {
		g.cells[a] = bv
	} else {
		delete(g.cells, a)
	}
	if aok {
		g.cells[b] = av
	} else {
		delete(g.cells, b)
	}
}

// Len returns the number of occupied coordinates.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Coords returns all occupied coordinates ordered by row, then column.
// The simulation relies on this order being deterministic.
func (g *Grid[T]) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].less(coords[j])
	})
	return coords
}

// Entries returns all (coordinate, value) pairs in Coords order.
func (g *Grid[T]) Entries() []Entry[T] {
	coords := g.Coords()
	entries := make([]Entry[T], 0, len(coords))
	for _, c := range coords {
		entries = append(entries, Entry[T]{Coord: c, Value: g.cells[c]})
	}
	return entries
}

// Bounds returns the bounding box over occupied coordinates as
// (min, max). ok is false for an empty grid.
func (g *Grid[T]) Bounds() (min, max Coord, ok bool) {
	first := true
	for c := range g.cells {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, !first
}

// NumRows returns the bounding-box height (max-min+1) over occupied
// coordinates, zero for an empty grid.
func (g *Grid[T]) NumRows() int {
	min, max, ok := g.Bounds()
	if !ok {
		return 0
	}
	return max.Y - min.Y + 1
}

// NumCols returns the bounding-box width over occupied coordinates,
// zero for an empty grid.
func (g *Grid[T]) NumCols() int {
	min, max, ok := g.Bounds()
	if !ok {
		return 0
	}
	return max.X - min.X + 1
}

// Clone returns a deep copy of the grid structure. Values are copied
// as-is; payload types are expected to be value types.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make(map[Coord]T, len(g.cells))
	for c, v := range g.cells {
		cells[c] = v
	}
	return &Grid[T]{cells: cells}
}

// EqualFunc reports whether two grids hold the same coordinates with
// values equal under eq.
func (g *Grid[T]) EqualFunc(other *Grid[T], eq func(a, b T) bool) bool {
	if len(g.cells) != len(other.cells) {
		return false
	}
	for c, v := range g.cells {
		ov, ok := other.cells[c]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

// Merge copies every entry of other into g, overwriting collisions.
func (g *Grid[T]) Merge(other *Grid[T]) {
	for c, v := range other.cells {
		g.cells[c] = v
	}
}

// Equal reports whether two grids of a comparable payload type hold
// exactly the same entries.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
