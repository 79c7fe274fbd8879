// Package crucible finds the cheapest route for a cart across a city of
// weighted blocks when the cart can neither reverse nor travel too few or too
// many blocks in a straight line.
//
// The grid decodes from digits; each digit is the heat lost on entering that
// block. A search node is a State (position plus run-length counters), so the
// same block reached with a different run is a different node.
package crucible

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// City is a parsed grid of block weights.
type City struct {
	grid *gridgraph.Grid[int]
}

// Decode is the gridgraph.Parse decoder for block weights '0'..'9'.
func Decode(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Parse decodes a city map.
func Parse(text string) (*City, error) {
	g, err := gridgraph.Parse(text, Decode)
	if err != nil {
		return nil, err
	}
	return &City{grid: g}, nil
}

// Width returns the number of columns.
func (c *City) Width() int { return c.grid.Width }

// Height returns the number of rows.
func (c *City) Height() int { return c.grid.Height }

// Weight returns the heat lost entering pos, and false when pos is out of bounds.
func (c *City) Weight(pos gridgraph.Coord) (int, bool) { return c.grid.Get(pos) }

// Graph is the turn-constrained view of a City. It implements
// search.Graph[State].
type Graph struct {
	city   *City
	rules  Rules
	target gridgraph.Coord
}

// Graph builds the constrained view of c under r, heading for the bottom-right
// block. Returns ErrBadRules if r is invalid.
func (c *City) Graph(r Rules) (*Graph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Graph{
		city:   c,
		rules:  r,
		target: gridgraph.Coord{Row: c.grid.Height - 1, Col: c.grid.Width - 1},
	}, nil
}

// Start returns the initial state: top-left block, not yet moving.
func (g *Graph) Start() State { return State{} }

// Target returns the destination block.
func (g *Graph) Target() gridgraph.Coord { return g.target }

// Contains implements search.Graph.
func (g *Graph) Contains(s State) bool { return g.city.grid.InBounds(s.Pos) }

// IsGoal reports whether s is at the target having run at least MinRun
// blocks in its final direction.
func (g *Graph) IsGoal(s State) bool {
	if s.Pos != g.target {
		return false
	}
	_, run, _ := s.Heading()
	return run >= g.rules.MinRun
}

// Successors implements search.Graph.
//
// From a moving state the candidates are straight, left and right; reversing
// is never allowed. While the run is below MinRun only straight is offered;
// once it reaches MaxRun straight is dropped. Every edge costs the weight of
// the block it enters.
func (g *Graph) Successors(s State) []search.Edge[State] {
	dir, run, moving := s.Heading()

	var cands []gridgraph.Direction
	switch {
	case !moving:
		cands = gridgraph.Directions[:]
	case run < g.rules.MinRun:
		cands = []gridgraph.Direction{dir}
	case run >= g.rules.MaxRun:
		cands = []gridgraph.Direction{dir.TurnLeft(), dir.TurnRight()}
	default:
		cands = []gridgraph.Direction{dir, dir.TurnLeft(), dir.TurnRight()}
	}

	out := make([]search.Edge[State], 0, len(cands))
	for _, d := range cands {
		nb, ok := g.city.grid.Neighbor(s.Pos, d)
		if !ok {
			continue
		}
		out = append(out, search.Edge[State]{
			To:   s.advance(nb, d),
			Cost: g.city.grid.At(nb),
		})
	}
	return out
}

// MinHeatLoss returns the cheapest route from the top-left to the
// bottom-right block under r. An unreachable target is reported through
// Result.Reachable, not as an error. Extra options (e.g. WithReturnPath)
// are passed to search.ShortestPath.
func (c *City) MinHeatLoss(r Rules, opts ...search.Option) (search.Result[State], error) {
	g, err := c.Graph(r)
	if err != nil {
		return search.Result[State]{}, err
	}
	return search.ShortestPath[State](g, g.Start(), g.IsGoal, opts...)
}
