// Package world provides cave level generation over a wall/floor grid.
package world

// Tile is the display character of a single grid cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileFloor represents an open floor cell.
	TileFloor Tile = '.'
)

// TileOf returns the tile for a cell value, where true means wall.
func TileOf(wall bool) Tile {
	if wall {
		return TileWall
	}
	return TileFloor
}

// IsWall returns true if the tile blocks traversal.
func (t Tile) IsWall() bool {
	return t != TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
