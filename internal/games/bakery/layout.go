package bakery

import "github.com/vovakirdan/tui-bakery/internal/grid"

// FloorKind tags the variant of a floor tile.
type FloorKind uint8

const (
	FloorPlain FloorKind = iota
	FloorSpawner
	FloorCollector
	FloorWall
)

// String returns the lowercase kind name.
func (k FloorKind) String() string {
	switch k {
	case FloorPlain:
		return "plain"
	case FloorSpawner:
		return "spawner"
	case FloorCollector:
		return "collector"
	case FloorWall:
		return "wall"
	default:
		return "unknown"
	}
}

// FloorTile is the payload of the static layout grid. Spawns lists
// the things a spawner tile may produce and is only meaningful for
// FloorSpawner tiles.
type FloorTile struct {
	Kind   FloorKind
	Spawns []Thing
}

// Layout is the static level geometry: a grid of floor tiles built
// once and never mutated by transitions. The transition engine treats
// it as read-only data, so alternate levels are a configuration
// change, not a code change.
type Layout struct {
	floor *grid.Grid[FloorTile]
}

// BuildLayout assembles the standard level shape: a w x h play field
// wrapped in a wall outline, with the top interior row spawning the
// given things and the bottom interior row collecting buns.
// Coordinates grow upward; the collector row sits at y=1 and the
// spawner row at y=h, inside a (w+2) x (h+2) wall perimeter.
func BuildLayout(w, h int, spawns []Thing) *Layout {
	floor := grid.OutlineRect(FloorTile{Kind: FloorWall}, w+2, h+2)

	interior := grid.Translate(grid.FillRect(FloorTile{Kind: FloorPlain}, w, h), 1, 1)
	collectors := grid.Translate(grid.FillRect(FloorTile{Kind: FloorCollector}, w, 1), 1, 1)
	spawners := grid.Translate(grid.FillRect(FloorTile{Kind: FloorSpawner, Spawns: spawns}, w, 1), 1, h)

	floor.Merge(interior)
	floor.Merge(collectors)
	floor.Merge(spawners)
	return &Layout{floor: floor}
}

// Floor exposes the underlying tile grid for rendering projections.
func (l *Layout) Floor() *grid.Grid[FloorTile] {
	return l.floor
}

// KindAt returns the floor kind at a coordinate. Coordinates outside
// the layout report FloorWall: the simulation never places things
// off the board.
func (l *Layout) KindAt(c grid.Coord) FloorKind {
	tile, ok := l.floor.Get(c)
	if !ok {
		return FloorWall
	}
	return tile.Kind
}

// IsWall reports whether the coordinate is a wall or off the board.
func (l *Layout) IsWall(c grid.Coord) bool {
	return l.KindAt(c) == FloorWall
}

// coordsOfKind returns the coordinates of one tile kind in the
// deterministic grid order.
func (l *Layout) coordsOfKind(kind FloorKind) []grid.Coord {
	var out []grid.Coord
	for _, c := range l.floor.Coords() {
		if tile, _ := l.floor.Get(c); tile.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// SpawnerCoords returns all spawner coordinates in deterministic order.
func (l *Layout) SpawnerCoords() []grid.Coord {
	return l.coordsOfKind(FloorSpawner)
}

// CollectorCoords returns all collector coordinates in deterministic order.
func (l *Layout) CollectorCoords() []grid.Coord {
	return l.coordsOfKind(FloorCollector)
}

// WallCoords returns all wall coordinates in deterministic order.
func (l *Layout) WallCoords() []grid.Coord {
	return l.coordsOfKind(FloorWall)
}

// SpawnsAt returns the spawnable things of a spawner tile, nil for
// any other tile.
func (l *Layout) SpawnsAt(c grid.Coord) []Thing {
	tile, ok := l.floor.Get(c)
	if !ok || tile.Kind != FloorSpawner {
		return nil
	}
	return tile.Spawns
}
