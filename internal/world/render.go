package world

import "strings"

// Render returns one line per grid row, '#' for wall and '.' for floor.
func Render(g *Grid) []string {
	lines := make([]string, g.height)
	var sb strings.Builder
	for row, cells := range g.cells {
		sb.Reset()
		sb.Grow(len(cells))
		for _, wall := range cells {
			sb.WriteRune(TileOf(wall).Rune())
		}
		lines[row] = sb.String()
	}
	return lines
}
