package world

import "math"

const (
	minCorridorHeight   = 3
	corridorHeightRatio = 0.05
)

// CorridorBand returns the half-open row range [top, bottom) carved by
// CarveEntrances for a grid of the given height.
func CorridorBand(height int) (top, bottom int) {
	size := max(minCorridorHeight, int(math.Round(float64(height)*corridorHeightRatio)))
	top = height/2 - size/2
	bottom = top + size
	return max(top, 0), min(bottom, height)
}

// CarveEntrances digs an entrance through the left edge and an exit through
// the right edge. Each corridor advances one column at a time and stops after
// carving a column whose band was already entirely floor.
func CarveEntrances(g *Grid) *Grid {
	out := g.Clone()
	top, bottom := CorridorBand(g.height)

	dig := func(start, end, step int) {
		for col := start; col != end; col += step {
			hitWall := false
			for row := top; row < bottom; row++ {
				hitWall = hitWall || out.cells[row][col]
				out.cells[row][col] = false
			}
			if !hitWall {
				return
			}
		}
	}

	dig(0, g.width, 1)
	dig(g.width-1, -1, -1)

	return out
}
