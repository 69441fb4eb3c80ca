package grid_test

import (
	"testing"

	"github.com/vovakirdan/tui-bakery/internal/grid"
)

func sampleGrid() *grid.Grid[string] {
	g := grid.New[string]()
	g.Put(grid.C(0, 0), "origin")
	g.Put(grid.C(3, 1), "a")
	g.Put(grid.C(-2, 4), "b")
	g.Put(grid.C(1, -5), "c")
	return g
}

func TestTranslate(t *testing.T) {
	g := sampleGrid()

	moved := grid.Translate(g, 2, -3)
	if v, ok := moved.Get(grid.C(2, -3)); !ok || v != "origin" {
		t.Errorf("origin should land at (2,-3), got (%q,%v)", v, ok)
	}
	if moved.Len() != g.Len() {
		t.Errorf("translation changed entry count: %d != %d", moved.Len(), g.Len())
	}

	// Round-trip law: translating back restores the original exactly.
	back := grid.Translate(moved, -2, 3)
	if !grid.Equal(back, g) {
		t.Error("translate(-d, translate(d, g)) should equal g")
	}
}

func TestRotateRoundTrip(t *testing.T) {
	g := sampleGrid()

	cw := g
	for i := 0; i < 4; i++ {
		cw = grid.RotateCW(cw)
	}
	if !grid.Equal(cw, g) {
		t.Error("four clockwise rotations should be the identity")
	}

	ccw := g
	for i := 0; i < 4; i++ {
		ccw = grid.RotateCCW(ccw)
	}
	if !grid.Equal(ccw, g) {
		t.Error("four counter-clockwise rotations should be the identity")
	}

	// CW and CCW are inverses of each other.
	if !grid.Equal(grid.RotateCCW(grid.RotateCW(g)), g) {
		t.Error("RotateCCW(RotateCW(g)) should equal g")
	}
}

func TestRotateCWMapping(t *testing.T) {
	g := grid.New[int]()
	g.Put(grid.C(2, 1), 7)

	rotated := grid.RotateCW(g)
	// (x, y) -> (y, -x)
	if v, ok := rotated.Get(grid.C(1, -2)); !ok || v != 7 {
		t.Errorf("expected 7 at (1,-2) after CW rotation, got (%d,%v)", v, ok)
	}
}
