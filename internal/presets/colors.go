package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the viewer colors for the two tile kinds.
type Palette struct {
	Wall  tcell.Color
	Floor tcell.Color
}

// DefaultPalette is used when a preset names no colors.
var DefaultPalette = Palette{Wall: tcell.ColorDarkGray, Floor: tcell.ColorYellow}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette returns the preset's colors, falling back to DefaultPalette for
// unset or unparsable entries.
func (p Preset) Palette() Palette {
	palette := DefaultPalette
	if c, err := ParseHexColor(p.WallColor); err == nil {
		palette.Wall = c
	}
	if c, err := ParseHexColor(p.FloorColor); err == nil {
		palette.Floor = c
	}
	return palette
}
