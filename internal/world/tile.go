// Package world provides dungeon generation and the tile-grid queries used for movement validation.
package world

// TileKind classifies a single grid cell.
type TileKind uint8

const (
	// TileVoid is unused space outside any room or corridor.
	TileVoid TileKind = iota
	// TileFloor is walkable space inside a room or corridor.
	TileFloor
	// TileWall borders floor space.
	TileWall
)

// IsPassable returns true if the tile can be walked on.
func (t TileKind) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	default:
		return ' '
	}
}

// String returns a human-readable tile name.
func (t TileKind) String() string {
	switch t {
	case TileVoid:
		return "void"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}
