package bakery

import (
	"fmt"

	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/grid"
)

// flavourColor maps a flavour to its display color.
func flavourColor(f Flavour) core.Color {
	switch f {
	case FlavourSugar:
		return core.ColorBrightWhite
	case FlavourChocolate:
		return core.ColorOrange
	case FlavourChilli:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// thingGlyph returns the rune and color for a thing.
func thingGlyph(t Thing) (rune, core.Color) {
	var r rune
	var c core.Color
	switch t.Kind {
	case KindBun:
		r, c = '@', core.ColorWhite
	case KindFlour:
		r, c = 'F', core.ColorYellow
	case KindWater:
		r, c = '~', core.ColorCyan
	case KindFlavouring:
		r, c = '*', core.ColorMagenta
	case KindObstacle:
		r, c = '#', core.ColorGray
	}
	if t.Flavoured {
		c = flavourColor(t.Flavour)
	}
	return r, c
}

// floorGlyph returns the rune and color for an empty floor tile.
func floorGlyph(k FloorKind) (rune, core.Color) {
	switch k {
	case FloorWall:
		return '█', core.ColorGray
	case FloorSpawner:
		return '▼', core.ColorGreen
	case FloorCollector:
		return '◇', core.ColorBlue
	default:
		return '·', core.ColorGray
	}
}

// Render draws the board, cursor, selection and HUD into the screen
// buffer. Board rows grow upward in the simulation, so the Y axis is
// flipped to screen rows here; cells are drawn two columns wide to
// look roughly square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for the board")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize and the game will pick it up")
		return
	}

	view := g.session.Renderable()
	_, max, ok := view.Bounds()
	if !ok {
		return
	}

	boardW := view.NumCols() * 2
	boardH := view.NumRows()
	left := (dst.Width() - boardW) / 2
	top := (dst.Height() - boardH - 3) / 2
	if top < 1 {
		top = 1
	}

	for _, e := range view.Entries() {
		px := left + e.Coord.X*2
		py := top + (max.Y - e.Coord.Y)

		r, c := floorGlyph(e.Value.Floor)
		if e.Value.HasThing {
			r, c = thingGlyph(e.Value.Thing)
		}
		if e.Value.Highlight {
			c = core.ColorBrightYellow
		}
		dst.SetColored(px, py, r, c)

		if e.Coord == g.cursor {
			dst.SetColored(px-1, py, '[', core.ColorBrightYellow)
			dst.SetColored(px+1, py, ']', core.ColorBrightYellow)
		}
	}

	g.renderHUD(dst, left, top+boardH)
}

// renderHUD draws the status lines under the board.
func (g *Game) renderHUD(dst *core.Screen, left, y int) {
	dst.DrawTextColored(left, y+1,
		fmt.Sprintf("buns %d  moves %d", g.session.Collected(), g.session.Moves()),
		core.ColorWhite)
	dst.DrawTextColored(left, y+2,
		fmt.Sprintf("seed %s", g.session.SeedString()),
		core.ColorGray)

	switch {
	case g.session.IsGameOver():
		dst.DrawTextColored(left, y+3, "GAME OVER - spawners blocked - R to restart", core.ColorBrightRed)
	case g.paused:
		dst.DrawTextColored(left, y+3, "PAUSED - P to resume", core.ColorBrightYellow)
	default:
		if sel, ok := g.session.Selected(); ok {
			dst.DrawTextColored(left, y+3, fmt.Sprintf("selected %s", sel), core.ColorBrightYellow)
		} else {
			dst.DrawTextColored(left, y+3, "arrows move, space selects", core.ColorGray)
		}
	}
}

// cursorCoord exposes the cursor for tests.
func (g *Game) cursorCoord() grid.Coord {
	return g.cursor
}
