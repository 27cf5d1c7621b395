package world

import (
	"context"
	"strings"
)

// Level is a finished cave level.
type Level struct {
	grid     *Grid
	attempts int
}

// NewLevel generates a level of the given size with default options.
func NewLevel(ctx context.Context, width, height int) (*Level, error) {
	return NewGenerator(Options{Width: width, Height: height}).Generate(ctx)
}

// LevelFromGrid wraps an existing grid as a level.
func LevelFromGrid(g *Grid) *Level {
	return &Level{grid: g.Clone(), attempts: 0}
}

// Width returns the number of columns.
func (l *Level) Width() int { return l.grid.width }

// Height returns the number of rows.
func (l *Level) Height() int { return l.grid.height }

// Attempts returns how many generation attempts produced this level.
func (l *Level) Attempts() int { return l.attempts }

// At returns true if (row, col) is wall. Out-of-range coordinates are clamped.
func (l *Level) At(row, col int) bool {
	return l.grid.At(row, col)
}

// Set writes a cell. It exists for composing levels into a larger map.
func (l *Level) Set(row, col int, wall bool) {
	l.grid.Set(row, col, wall)
}

// Lines renders the level one row per line.
func (l *Level) Lines() []string {
	return Render(l.grid)
}

func (l *Level) String() string {
	return strings.Join(l.Lines(), "\n")
}
