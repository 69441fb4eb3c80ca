package grid

// Translate returns a new grid with every key shifted by (dx, dy).
// Values are unchanged. Translating by (dx, dy) and then by
// (-dx, -dy) returns the original grid exactly.
func Translate[T any](g *Grid[T], dx, dy int) *Grid[T] {
	out := New[T]()
	for c, v := range g.cells {
		out.cells[c.Add(dx, dy)] = v
	}
	return out
}

// RotateCW returns a new grid with every key rotated 90 degrees
// clockwise about the origin: (x, y) -> (y, -x). Four successive
// rotations return the original grid.
func RotateCW[T any](g *Grid[T]) *Grid[T] {
	out := New[T]()
	for c, v := range g.cells {
		out.cells[Coord{X: c.Y, Y: -c.X}] = v
	}
	return out
}

// RotateCCW returns a new grid with every key rotated 90 degrees
// counter-clockwise about the origin: (x, y) -> (-y, x).
func RotateCCW[T any](g *Grid[T]) *Grid[T] {
	out := New[T]()
	for c, v := range g.cells {
		out.cells[Coord{X: -c.Y, Y: c.X}] = v
	}
	return out
}
