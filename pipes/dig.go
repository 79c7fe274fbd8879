package pipes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

var (
	// ErrBadPlan indicates a dig plan line that cannot be read.
	ErrBadPlan = errors.New("pipes: malformed dig plan")
	// ErrOpenTrench indicates a dig plan whose trench does not close back on
	// its origin, or that crosses or retraces itself.
	ErrOpenTrench = errors.New("pipes: trench is not a simple closed loop")
)

var digHeadings = map[string]gridgraph.Direction{
	"U": gridgraph.North,
	"R": gridgraph.East,
	"D": gridgraph.South,
	"L": gridgraph.West,
}

// DigStep is one instruction of a dig plan: move Length cells towards Heading.
type DigStep struct {
	Heading gridgraph.Direction
	Length  int
}

// ParseDigPlan reads lines of the form "R 6 (#70c710)". The trailing colour
// field is optional and ignored.
func ParseDigPlan(text string) ([]DigStep, error) {
	var steps []DigStep
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 3 || len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadPlan, i+1, line)
		}
		d, ok := digHeadings[fields[0]]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown heading %q", ErrBadPlan, i+1, fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: line %d: bad length %q", ErrBadPlan, i+1, fields[1])
		}
		steps = append(steps, DigStep{Heading: d, Length: n})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no instructions", ErrBadPlan)
	}
	return steps, nil
}

// FromDigPlan digs the trench described by text into a pipe grid and returns
// it as a Loop whose start is the first cell dug. Every trench cell opens
// towards the cells dug before and after it, so the result behaves exactly
// like a parsed pipe diagram.
func FromDigPlan(text string) (*Loop, error) {
	steps, err := ParseDigPlan(text)
	if err != nil {
		return nil, err
	}

	// First pass: bounding box relative to the origin.
	var pos, lo, hi gridgraph.Coord
	for _, s := range steps {
		dr, dc := s.Heading.Offset()
		pos.Row += dr * s.Length
		pos.Col += dc * s.Length
		lo.Row, lo.Col = min(lo.Row, pos.Row), min(lo.Col, pos.Col)
		hi.Row, hi.Col = max(hi.Row, pos.Row), max(hi.Col, pos.Col)
	}
	if pos != (gridgraph.Coord{}) {
		return nil, fmt.Errorf("%w: ends at offset %v", ErrOpenTrench, pos)
	}

	rows := make([][]Pipe, hi.Row-lo.Row+1)
	for y := range rows {
		rows[y] = make([]Pipe, hi.Col-lo.Col+1)
	}
	g, err := gridgraph.New(rows)
	if err != nil {
		return nil, err
	}

	// Second pass: dig, marking both sides of every move.
	origin := gridgraph.Coord{Row: -lo.Row, Col: -lo.Col}
	cur := origin
	for i, s := range steps {
		for k := 0; k < s.Length; k++ {
			g.Set(cur, g.At(cur)|1<<s.Heading)
			next := cur.Step(s.Heading)
			closing := i == len(steps)-1 && k == s.Length-1
			if g.At(next) != Ground && !closing {
				return nil, fmt.Errorf("%w: revisits %v", ErrOpenTrench, next)
			}
			g.Set(next, g.At(next)|1<<s.Heading.Opposite())
			cur = next
		}
	}
	if n := len(g.At(origin).Sides()); n != 2 {
		return nil, fmt.Errorf("%w: origin has %d sides", ErrOpenTrench, n)
	}

	return &Loop{grid: g, start: origin}, nil
}

// Area returns the number of cells on the start loop plus the cells it
// encloses: the lagoon size of a dug trench.
func (l *Loop) Area(opts ...search.Option) (int, error) {
	res, err := l.Distances(opts...)
	if err != nil {
		return 0, err
	}
	return len(res.Dist) + countInside(l.clean(res)), nil
}
