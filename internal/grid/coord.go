package grid

import "fmt"

// Coord represents a 2D coordinate on a sparse grid.
// X increases to the right, Y increases upward (gravity decreases Y).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Neg returns the component-wise negation.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Below returns the coordinate one row down.
func (c Coord) Below() Coord {
	return Coord{X: c.X, Y: c.Y - 1}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Chebyshev returns the Chebyshev distance to another coordinate:
// the larger of the absolute axis differences. Adjacent cells
// (including diagonals) are at distance 1.
func (c Coord) Chebyshev(other Coord) int {
	dx := abs(c.X - other.X)
	dy := abs(c.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// less orders coordinates by row, then by column. Used for the
// deterministic iteration order the simulation depends on.
func (c Coord) less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}
