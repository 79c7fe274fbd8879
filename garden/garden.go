// Package garden counts the garden plots an elf can stand on after walking an
// exact number of orthogonal steps from the start, never entering rocks.
//
// A plot reachable in d ≤ n steps is also reachable in exactly n steps when d
// and n have the same parity (step back and forth), so one bounded flood fill
// answers the question.
package garden

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Sentinel errors for garden maps.
var (
	// ErrNoStart indicates the map has no 'S' marker.
	ErrNoStart = errors.New("garden: no start marker")
	// ErrMultipleStarts indicates more than one 'S' marker.
	ErrMultipleStarts = errors.New("garden: more than one start marker")
	// ErrNegativeSteps indicates a negative step budget.
	ErrNegativeSteps = errors.New("garden: step count must be non-negative")
)

// Plot is one cell of the garden map.
type Plot uint8

const (
	// Open is a walkable plot, '.'.
	Open Plot = iota
	// Rock blocks movement, '#'.
	Rock
	// Start is the 'S' marker; it becomes Open after parsing.
	Start
)

// Decode is the gridgraph.Parse decoder for garden maps.
func Decode(r rune) (Plot, bool) {
	switch r {
	case '.':
		return Open, true
	case '#':
		return Rock, true
	case 'S':
		return Start, true
	}
	return Open, false
}

// Rune returns the map character for p.
func (p Plot) Rune() rune {
	switch p {
	case Rock:
		return '#'
	case Start:
		return 'S'
	}
	return '.'
}

// Garden is a parsed map. It implements search.Graph[gridgraph.Coord].
type Garden struct {
	grid  *gridgraph.Grid[Plot]
	start gridgraph.Coord
}

// Parse decodes a garden map and locates its single start marker.
func Parse(text string) (*Garden, error) {
	g, err := gridgraph.Parse(text, Decode)
	if err != nil {
		return nil, err
	}
	starts := g.Find(func(p Plot) bool { return p == Start })
	switch {
	case len(starts) == 0:
		return nil, ErrNoStart
	case len(starts) > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, len(starts))
	}
	g.Set(starts[0], Open)

	return &Garden{grid: g, start: starts[0]}, nil
}

// Start returns the start position.
func (g *Garden) Start() gridgraph.Coord { return g.start }

// String re-encodes the map with the start marker.
func (g *Garden) String() string {
	c := g.grid.Clone()
	c.Set(g.start, Start)
	return c.Format(Plot.Rune)
}

// Contains implements search.Graph.
func (g *Garden) Contains(c gridgraph.Coord) bool { return g.grid.InBounds(c) }

// Successors implements search.Graph: orthogonal non-rock neighbors, cost 1.
func (g *Garden) Successors(c gridgraph.Coord) []search.Edge[gridgraph.Coord] {
	out := make([]search.Edge[gridgraph.Coord], 0, 4)
	for _, nb := range g.grid.Neighbors(c) {
		if g.grid.At(nb) != Rock {
			out = append(out, search.Edge[gridgraph.Coord]{To: nb, Cost: 1})
		}
	}
	return out
}

// Distances returns the step count from the start to every reachable plot,
// stopping after maxSteps (0 means unbounded).
func (g *Garden) Distances(maxSteps int, opts ...search.Option) (*search.FloodResult[gridgraph.Coord], error) {
	opts = append([]search.Option{search.WithMaxDepth(maxSteps)}, opts...)
	return search.FloodFill[gridgraph.Coord](g, []gridgraph.Coord{g.start}, opts...)
}

// Reachable returns how many plots the walker can end on after exactly steps moves.
func (g *Garden) Reachable(steps int, opts ...search.Option) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	if steps == 0 {
		return 1, nil
	}
	res, err := g.Distances(steps, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range res.Dist {
		if d%2 == steps%2 {
			n++
		}
	}
	return n, nil
}
