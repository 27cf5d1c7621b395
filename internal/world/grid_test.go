package world

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGridClampedAccess(t *testing.T) {
	g := mustParse(t,
		"#..",
		".#.",
		"..#",
	)

	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{-3, 0, 0, 0},
		{0, -1, 0, 0},
		{-1, -1, 0, 0},
		{5, 1, 2, 1},
		{1, 9, 1, 2},
		{99, 99, 2, 2},
		{-7, 2, 0, 2},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		got := g.At(tt.row, tt.col)
		want := g.At(tt.wantRow, tt.wantCol)
		if got != want {
			t.Errorf("At(%d,%d) = %v, want %v (same as (%d,%d))", tt.row, tt.col, got, want, tt.wantRow, tt.wantCol)
		}
	}
}

func TestGridClampedAccessRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := NewGrid(6, 4, false)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			g.Set(row, col, rng.Intn(2) == 0)
		}
	}

	for i := 0; i < 500; i++ {
		row := rng.Intn(20) - 10
		col := rng.Intn(20) - 10
		if g.At(row, col) != g.At(clamp(row, g.Height()), clamp(col, g.Width())) {
			t.Fatalf("At(%d,%d) differs from nearest in-range cell", row, col)
		}
	}
}

func TestParseGridRejectsMalformedInput(t *testing.T) {
	if _, err := ParseGrid(); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ParseGrid("##", "#"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := ParseGrid("#x"); err == nil {
		t.Error("expected error for unknown character")
	}
}

func TestGridMapLeavesSourceUntouched(t *testing.T) {
	g := mustParse(t,
		"#.#",
		"...",
	)
	before := rowsOf(g)

	inverted := g.Map(func(_, _ int, wall bool) bool { return !wall })

	if diff := cmp.Diff(before, rowsOf(g)); diff != "" {
		t.Errorf("source grid changed (-before +after):\n%s", diff)
	}
	want := []string{".#.", "###"}
	if diff := cmp.Diff(want, Render(inverted)); diff != "" {
		t.Errorf("Map result mismatch (-want +got):\n%s", diff)
	}
}

func TestGridSetIgnoresOutOfRange(t *testing.T) {
	g := NewGrid(2, 2, false)
	g.Set(-1, 0, true)
	g.Set(0, 2, true)
	if g.WallCount() != 0 {
		t.Errorf("out-of-range Set wrote a wall, WallCount = %d", g.WallCount())
	}
}

func TestGridWallFraction(t *testing.T) {
	g := mustParse(t,
		"##..",
		"....",
	)
	if got := g.WallCount(); got != 2 {
		t.Errorf("WallCount = %d, want 2", got)
	}
	if got := g.WallFraction(); got != 0.25 {
		t.Errorf("WallFraction = %v, want 0.25", got)
	}
}

func TestRenderAndString(t *testing.T) {
	g := mustParse(t,
		"###",
		"#.#",
	)
	if got, want := g.String(), "###\n#.#"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := TileOf(true); got != TileWall || !got.IsWall() {
		t.Errorf("TileOf(true) = %q", got)
	}
	if got := TileOf(false); got != TileFloor || got.IsWall() {
		t.Errorf("TileOf(false) = %q", got)
	}
}
