package world

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// maxSeedDraws bounds the random search for a floor cell to flood from.
const maxSeedDraws = 10000

// ErrSeedNotFound is returned when no floor cell could be sampled to start
// the main cavern flood fill.
var ErrSeedNotFound = errors.New("couldn't find a valid starting point to fill the main room from")

// Rand is the source of randomness used by generation. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RemoveOrphans keeps only the floor region connected to a randomly chosen
// floor cell. Every floor cell not 4-connected to that seed becomes wall.
func RemoveOrphans(g *Grid, rng Rand) (*Grid, error) {
	seed, ok := findFloor(g, rng)
	if !ok {
		return nil, ErrSeedNotFound
	}
	return FloodFrom(g, seed), nil
}

// FloodFrom returns a grid where exactly the floor component containing seed
// is floor and everything else is wall. A seed on a wall yields an all-wall grid.
func FloodFrom(g *Grid, seed Coord) *Grid {
	filled := NewGrid(g.width, g.height, true)

	visited := mapset.New[Coord]()
	frontier := mapset.New[Coord]()
	frontier.Put(seed)

	for frontier.Size() > 0 {
		next := mapset.New[Coord]()
		frontier.Each(func(c Coord) {
			visited.Put(c)
		})
		frontier.Each(func(c Coord) {
			if !g.InBounds(c.Row, c.Col) || g.cells[c.Row][c.Col] {
				return
			}
			filled.cells[c.Row][c.Col] = false
			for _, n := range neighbours(c) {
				if !visited.Has(n) {
					next.Put(n)
				}
			}
		})
		frontier = next
	}

	return filled
}

// findFloor rejection-samples a floor coordinate.
func findFloor(g *Grid, rng Rand) (Coord, bool) {
	for i := 0; i < maxSeedDraws; i++ {
		c := Coord{Row: rng.Intn(g.height), Col: rng.Intn(g.width)}
		if !g.cells[c.Row][c.Col] {
			return c, true
		}
	}
	return Coord{}, false
}

// neighbours returns the 4-connected neighbours of c, in or out of range.
func neighbours(c Coord) [4]Coord {
	return [4]Coord{
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row, Col: c.Col + 1},
		{Row: c.Row, Col: c.Col - 1},
	}
}
