package world

import "testing"

// scriptedRand replays fixed values and panics when it runs dry.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(lines...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

// rowsOf returns a copy of the cell values, indexed [row][col].
func rowsOf(g *Grid) [][]bool {
	return g.Clone().cells
}
