package world

import (
	"fmt"
	"strings"
)

// Coord is a (row, column) position on a grid.
type Coord struct {
	Row, Col int
}

// Grid is a fixed-size rectangular wall/floor map. A true cell is wall.
// Dimensions never change after construction.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a width x height grid with every cell set to the given value.
func NewGrid(width, height int, wall bool) *Grid {
	cells := make([][]bool, height)
	for row := range cells {
		cells[row] = make([]bool, width)
		if wall {
			for col := range cells[row] {
				cells[row][col] = true
			}
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor) characters.
// All rows must have the same length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	width := len(lines[0])
	g := NewGrid(width, len(lines), false)
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("parse grid: row %d has %d columns, want %d", row, len(line), width)
		}
		for col, ch := range line {
			switch Tile(ch) {
			case TileWall:
				g.cells[row][col] = true
			case TileFloor:
			default:
				return nil, fmt.Errorf("parse grid: unexpected %q at (%d,%d)", ch, row, col)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(lines ...string) *Grid {
	g, err := ParseGrid(lines...)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (row, col). Out-of-range coordinates are clamped to
// the nearest valid row and column, so edge values are replicated outward.
func (g *Grid) At(row, col int) bool {
	return g.cells[clamp(row, g.height)][clamp(col, g.width)]
}

// InBounds returns true if (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Set writes a cell. Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, wall bool) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = wall
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([][]bool, g.height)}
	for row := range g.cells {
		out.cells[row] = append([]bool(nil), g.cells[row]...)
	}
	return out
}

// Map builds a new grid of the same size by evaluating fn for every cell.
// fn sees the cell value from g; g itself is never written, so rules that
// read neighbours observe the previous generation only.
func (g *Grid) Map(fn func(row, col int, wall bool) bool) *Grid {
	out := NewGrid(g.width, g.height, false)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			out.cells[row][col] = fn(row, col, g.cells[row][col])
		}
	}
	return out
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, cells := range g.cells {
		for _, wall := range cells {
			if wall {
				n++
			}
		}
	}
	return n
}

// WallFraction returns the share of cells that are wall, in [0, 1].
func (g *Grid) WallFraction() float64 {
	total := g.width * g.height
	if total == 0 {
		return 0
	}
	return float64(g.WallCount()) / float64(total)
}

// SameSize returns true if both grids have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.width == other.width && g.height == other.height
}

// String renders the grid as '#'/'.' rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(Render(g), "\n")
}

// clamp limits i to [0, n).
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
