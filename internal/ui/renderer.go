package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/world"
)

// Renderer draws map lines onto a Screen.
type Renderer struct {
	screen  *Screen
	palette presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the visible window of lines starting at (offsetX, offsetY)
// and a status line on the bottom row.
func (r *Renderer) Render(lines []string, offsetX, offsetY int, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapRows := height - 1
	for y := 0; y < mapRows && offsetY+y < len(lines); y++ {
		line := []rune(lines[offsetY+y])
		for x := 0; x < width && offsetX+x < len(line); x++ {
			tile := world.Tile(line[offsetX+x])
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// tileStyle returns the style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	if tile.IsWall() {
		return tcell.StyleDefault.Foreground(r.palette.Wall)
	}
	return tcell.StyleDefault.Foreground(r.palette.Floor)
}

// RenderMessage writes a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
