package world

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a stage changes the grid's size.
var ErrDimensionMismatch = errors.New("stage changed grid dimensions")

// Stage transforms one grid into a new grid of the same size.
type Stage func(g *Grid) (*Grid, error)

// Pure lifts an infallible grid transform into a Stage.
func Pure(fn func(*Grid) *Grid) Stage {
	return func(g *Grid) (*Grid, error) {
		return fn(g), nil
	}
}

// Pipeline is an ordered list of stages applied for a number of rounds.
type Pipeline struct {
	Rounds int
	Stages []Stage
}

// Apply runs every stage in order, Rounds times, and returns the final grid.
// The input grid is not modified.
func (p Pipeline) Apply(g *Grid) (*Grid, error) {
	current := g
	for round := 0; round < p.Rounds; round++ {
		for i, stage := range p.Stages {
			next, err := stage(current)
			if err != nil {
				return current, err
			}
			if !current.SameSize(next) {
				return current, fmt.Errorf("round %d stage %d: %w", round, i, ErrDimensionMismatch)
			}
			current = next
		}
	}
	return current, nil
}
