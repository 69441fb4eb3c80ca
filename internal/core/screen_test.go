package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 10)

	if s.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", s.Width())
	}
	if s.Height() != 10 {
		t.Errorf("Height() = %d, expected 10", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d,%d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("expected red X at (5,5), got %+v", cell)
	}

	// Out of bounds writes are silent, reads return a blank cell.
	s.Set(-1, 0, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds reads should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorBlue)

	s.Clear()
	if s.Get(2, 2) != ' ' || s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should blank runes and colors")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("expected 20x5 after resize, got %dx%d", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'X' {
		t.Error("content inside the new bounds should survive a resize")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place runes left to right")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(8, 0, "long")
	if s.Get(9, 0) != 'o' {
		t.Errorf("expected 'o' at (9,0), got %q", s.Get(9, 0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("unexpected render: %q", got)
	}
}
