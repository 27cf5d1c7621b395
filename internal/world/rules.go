package world

// Cellular automaton parameters.
const (
	smoothWindow  = 3 // window for the majority rule
	fillWindow    = 5 // wide window for the gap-fill rule
	wallThreshold = 5 // 3x3 wall count at or above which a cell becomes wall
	fillThreshold = 1 // 5x5 wall count at or below which a cell becomes wall
)

// CountWalls counts wall cells in the size x size window centred on
// (row, col). Cells outside the grid are read through the clamped accessor.
// size should be odd.
func CountWalls(g *Grid, row, col, size int) int {
	shift := (size - 1) / 2
	n := 0
	for r := row - shift; r < row-shift+size; r++ {
		for c := col - shift; c < col-shift+size; c++ {
			if g.At(r, c) {
				n++
			}
		}
	}
	return n
}

// KernelA applies the shaping rule: a cell becomes wall if its 3x3 window
// holds at least five walls, or if its 5x5 window holds at most one wall.
func KernelA(g *Grid) *Grid {
	return g.Map(func(row, col int, _ bool) bool {
		return CountWalls(g, row, col, smoothWindow) >= wallThreshold ||
			CountWalls(g, row, col, fillWindow) <= fillThreshold
	})
}

// KernelB applies the smoothing rule only: a cell becomes wall if its 3x3
// window holds at least five walls.
func KernelB(g *Grid) *Grid {
	return g.Map(func(row, col int, _ bool) bool {
		return CountWalls(g, row, col, smoothWindow) >= wallThreshold
	})
}

// EnforceBoundary returns a copy of g with the outermost ring set to wall.
func EnforceBoundary(g *Grid) *Grid {
	return g.Map(func(row, col int, wall bool) bool {
		return row == 0 || col == 0 || row == g.height-1 || col == g.width-1 || wall
	})
}
