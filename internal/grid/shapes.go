package grid

// FillRect builds a w x h rectangle of cells all holding value, with
// its bottom-left corner at the origin. Zero or negative dimensions
// produce an empty grid.
func FillRect[T any](value T, w, h int) *Grid[T] {
	g := New[T]()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[Coord{X: x, Y: y}] = value
		}
	}
	return g
}

// OutlineRect builds the perimeter of a w x h rectangle anchored like
// FillRect; interior cells stay absent. For w, h >= 2 the outline
// holds exactly 2*(w+h)-4 cells.
func OutlineRect[T any](value T, w, h int) *Grid[T] {
	g := New[T]()
	if w <= 0 || h <= 0 {
		return g
	}
	for x := 0; x < w; x++ {
		g.cells[Coord{X: x, Y: 0}] = value
		g.cells[Coord{X: x, Y: h - 1}] = value
	}
	for y := 0; y < h; y++ {
		g.cells[Coord{X: 0, Y: y}] = value
		g.cells[Coord{X: w - 1, Y: y}] = value
	}
	return g
}
