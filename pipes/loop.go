package pipes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Sentinel errors for pipe diagrams. All are raised before any search runs.
var (
	// ErrNoStart indicates the diagram has no 'S' marker.
	ErrNoStart = errors.New("pipes: no start marker")
	// ErrMultipleStarts indicates more than one 'S' marker.
	ErrMultipleStarts = errors.New("pipes: more than one start marker")
	// ErrAmbiguousStart indicates the start does not have exactly two
	// neighbors pointing back at it.
	ErrAmbiguousStart = errors.New("pipes: start marker does not connect to exactly two neighbors")
)

// Loop is a pipe diagram with its start marker resolved. It implements
// search.Graph[gridgraph.Coord] with mutual-connectivity adjacency.
type Loop struct {
	grid  *gridgraph.Grid[Pipe]
	start gridgraph.Coord
}

// Parse decodes a pipe diagram and resolves the start marker in a second pass,
// once the whole grid is known.
func Parse(text string) (*Loop, error) {
	g, err := gridgraph.Parse(text, Decode)
	if err != nil {
		return nil, err
	}
	starts := g.Find(func(p Pipe) bool { return p == Start })
	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, len(starts))
	}
	start := starts[0]
	p, err := ResolveStart(g, start)
	if err != nil {
		return nil, err
	}
	g.Set(start, p)

	return &Loop{grid: g, start: start}, nil
}

// ResolveStart deduces the real pipe under the start marker at pos from which
// of its four neighbors open back towards it. Exactly two must.
func ResolveStart(g *gridgraph.Grid[Pipe], pos gridgraph.Coord) (Pipe, error) {
	var mask Pipe
	var n int
	for _, d := range gridgraph.Directions {
		nb, ok := g.Neighbor(pos, d)
		if !ok {
			continue
		}
		if g.At(nb).Opens(d.Opposite()) {
			mask |= 1 << d
			n++
		}
	}
	if n != 2 {
		return Ground, fmt.Errorf("%w: %d at %v", ErrAmbiguousStart, n, pos)
	}
	return mask, nil
}

// Start returns the position of the (resolved) start marker.
func (l *Loop) Start() gridgraph.Coord { return l.start }

// Width returns the number of columns.
func (l *Loop) Width() int { return l.grid.Width }

// Height returns the number of rows.
func (l *Loop) Height() int { return l.grid.Height }

// Pipe returns the pipe at c, or Ground when c is out of bounds.
func (l *Loop) Pipe(c gridgraph.Coord) Pipe {
	p, _ := l.grid.Get(c)
	return p
}

// Contains implements search.Graph.
func (l *Loop) Contains(c gridgraph.Coord) bool { return l.grid.InBounds(c) }

// Successors implements search.Graph: the neighbors that c opens towards and
// that open back towards c. Every edge costs 1.
func (l *Loop) Successors(c gridgraph.Coord) []search.Edge[gridgraph.Coord] {
	p, ok := l.grid.Get(c)
	if !ok {
		return nil
	}
	out := make([]search.Edge[gridgraph.Coord], 0, 2)
	for _, d := range gridgraph.Directions {
		if !p.Opens(d) {
			continue
		}
		nb, ok := l.grid.Neighbor(c, d)
		if !ok || !l.grid.At(nb).Opens(d.Opposite()) {
			continue
		}
		out = append(out, search.Edge[gridgraph.Coord]{To: nb, Cost: 1})
	}
	return out
}

// Distances flood-fills from the start along connected pipes. The key set of
// the result is exactly the loop through the start.
func (l *Loop) Distances(opts ...search.Option) (*search.FloodResult[gridgraph.Coord], error) {
	return search.FloodFill[gridgraph.Coord](l, []gridgraph.Coord{l.start}, opts...)
}

// Farthest returns the step count to the loop cell farthest from the start,
// which is half the loop length.
func (l *Loop) Farthest(opts ...search.Option) (int, error) {
	res, err := l.Distances(opts...)
	if err != nil {
		return 0, err
	}
	return res.Max(), nil
}

// CleanMap returns a copy of the diagram in which every cell that is not part
// of the start loop is Ground.
func (l *Loop) CleanMap(opts ...search.Option) (*Loop, error) {
	res, err := l.Distances(opts...)
	if err != nil {
		return nil, err
	}
	return &Loop{grid: l.clean(res), start: l.start}, nil
}

// clean copies the grid, grounding every cell absent from res.
func (l *Loop) clean(res *search.FloodResult[gridgraph.Coord]) *gridgraph.Grid[Pipe] {
	g := l.grid.Clone()
	g.Cells(func(c gridgraph.Coord, _ Pipe) {
		if _, onLoop := res.Dist[c]; !onLoop {
			g.Set(c, Ground)
		}
	})
	return g
}

// EnclosedCount returns how many cells lie strictly inside the start loop.
func (l *Loop) EnclosedCount(opts ...search.Option) (int, error) {
	res, err := l.Distances(opts...)
	if err != nil {
		return 0, err
	}
	return countInside(l.clean(res)), nil
}

// countInside scans each row of a clean map left to right. The inside/outside
// state flips on every loop cell that opens North ('|', 'L', 'J'), which
// counts each vertical crossing exactly once.
func countInside(g *gridgraph.Grid[Pipe]) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		inside := false
		for x := 0; x < g.Width; x++ {
			p := g.At(gridgraph.Coord{Row: y, Col: x})
			switch {
			case p.Opens(gridgraph.North):
				inside = !inside
			case p == Ground && inside:
				count++
			}
		}
	}
	return count
}

// String re-encodes the diagram with the start marker written back as 'S',
// so that Parse(l.String()) reproduces l.
func (l *Loop) String() string {
	g := l.grid.Clone()
	g.Set(l.start, Start)
	return g.Format(Pipe.Rune)
}
