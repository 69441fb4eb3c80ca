package grid_test

import (
	"testing"

	"github.com/vovakirdan/tui-bakery/internal/grid"
)

func TestFillRect(t *testing.T) {
	g := grid.FillRect("T", 3, 4)

	if g.Len() != 12 {
		t.Errorf("expected 12 entries, got %d", g.Len())
	}
	if g.NumCols() != 3 {
		t.Errorf("expected 3 columns, got %d", g.NumCols())
	}
	if g.NumRows() != 4 {
		t.Errorf("expected 4 rows, got %d", g.NumRows())
	}
	for _, c := range []grid.Coord{grid.C(0, 0), grid.C(2, 3), grid.C(1, 2)} {
		if v, ok := g.Get(c); !ok || v != "T" {
			t.Errorf("expected T at %v", c)
		}
	}
	if g.Has(grid.C(3, 0)) || g.Has(grid.C(0, 4)) {
		t.Error("cells outside the rectangle should be absent")
	}
}

func TestOutlineRect(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{5, 8, 22}, // 2*(5+8)-4
		{2, 2, 4},
		{6, 2, 12},
	}

	for _, tc := range tests {
		g := grid.OutlineRect("T", tc.w, tc.h)
		if g.Len() != tc.want {
			t.Errorf("OutlineRect(%dx%d): expected %d cells, got %d", tc.w, tc.h, tc.want, g.Len())
		}
	}

	g := grid.OutlineRect("T", 5, 8)
	if g.Has(grid.C(1, 1)) {
		t.Error("interior cell (1,1) should be absent")
	}
	for _, c := range []grid.Coord{grid.C(0, 0), grid.C(4, 0), grid.C(0, 7), grid.C(4, 7), grid.C(2, 0), grid.C(0, 3)} {
		if !g.Has(c) {
			t.Errorf("perimeter cell %v should be present", c)
		}
	}
}

func TestDegenerateShapes(t *testing.T) {
	if g := grid.FillRect(1, 0, 4); g.Len() != 0 {
		t.Error("zero-width FillRect should be empty")
	}
	if g := grid.OutlineRect(1, -1, 3); g.Len() != 0 {
		t.Error("negative-width OutlineRect should be empty")
	}
	if g := grid.OutlineRect(1, 1, 1); g.Len() != 1 {
		t.Errorf("1x1 outline should hold one cell, got %d", g.Len())
	}
}
