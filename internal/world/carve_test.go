package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorridorBand(t *testing.T) {
	tests := []struct {
		height      int
		top, bottom int
	}{
		{30, 14, 17},
		{10, 4, 7},
		{100, 48, 53},
		{2, 0, 2},
	}
	for _, tt := range tests {
		top, bottom := CorridorBand(tt.height)
		assert.Equal(t, tt.top, top, "top for height %d", tt.height)
		assert.Equal(t, tt.bottom, bottom, "bottom for height %d", tt.height)
	}
}

func TestCarveEntrancesStopsAtOpenSpace(t *testing.T) {
	g := EnforceBoundary(NewGrid(8, 10, false))

	out := CarveEntrances(g)

	top, bottom := CorridorBand(g.Height())
	for row := 0; row < g.Height(); row++ {
		inBand := row >= top && row < bottom
		assert.Equal(t, !inBand, out.At(row, 0), "left edge row %d", row)
		assert.Equal(t, !inBand, out.At(row, 7), "right edge row %d", row)
	}
	assert.Equal(t, g.WallCount()-2*(bottom-top), out.WallCount())
}

func TestCarveEntrancesDigsThroughSolidRock(t *testing.T) {
	g := NewGrid(9, 12, true)
	g.Set(5, 5, false)
	g.Set(6, 5, false)
	g.Set(7, 5, false)

	out := CarveEntrances(g)

	top, bottom := CorridorBand(g.Height())
	assert.Equal(t, 5, top)
	for row := top; row < bottom; row++ {
		for col := 0; col < g.Width(); col++ {
			assert.False(t, out.At(row, col), "band cell (%d,%d) should be floor", row, col)
		}
	}
	assert.True(t, out.At(top-1, 0))
	assert.True(t, out.At(bottom, 8))
	assert.True(t, g.At(top, 0), "CarveEntrances modified its input")
}

func TestCarveEntrancesOpensBothEdges(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := EnforceBoundary(randomGrid(20, 16, seed))
		out := CarveEntrances(g)

		top, bottom := CorridorBand(g.Height())
		for row := top; row < bottom; row++ {
			if out.At(row, 0) || out.At(row, g.Width()-1) {
				t.Fatalf("seed %d: edge cell in row %d is still wall", seed, row)
			}
		}
	}
}
