package pipes

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Pipe is a grid cell of a pipe diagram. Resolved pipes are bitmasks of the
// sides they open towards, bit 1<<d for gridgraph.Direction d.
type Pipe uint8

const (
	// Ground holds no pipe and connects to nothing.
	Ground Pipe = 0
	// Vertical is '|', connecting North and South.
	Vertical = Pipe(1<<gridgraph.North | 1<<gridgraph.South)
	// Horizontal is '-', connecting East and West.
	Horizontal = Pipe(1<<gridgraph.East | 1<<gridgraph.West)
	// NorthEast is 'L'.
	NorthEast = Pipe(1<<gridgraph.North | 1<<gridgraph.East)
	// NorthWest is 'J'.
	NorthWest = Pipe(1<<gridgraph.North | 1<<gridgraph.West)
	// SouthWest is '7'.
	SouthWest = Pipe(1<<gridgraph.South | 1<<gridgraph.West)
	// SouthEast is 'F'.
	SouthEast = Pipe(1<<gridgraph.South | 1<<gridgraph.East)
	// Start is the 'S' placeholder. It opens nowhere until ResolveStart
	// replaces it with the real pipe.
	Start Pipe = 1 << 4
)

var runes = map[rune]Pipe{
	'.': Ground,
	'|': Vertical,
	'-': Horizontal,
	'L': NorthEast,
	'J': NorthWest,
	'7': SouthWest,
	'F': SouthEast,
	'S': Start,
}

var symbols = map[Pipe]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthWest:  '7',
	SouthEast:  'F',
	Start:      'S',
}

// Decode is the gridgraph.Parse decoder for pipe diagrams.
func Decode(r rune) (Pipe, bool) {
	p, ok := runes[r]
	return p, ok
}

// Rune returns the diagram character for p.
func (p Pipe) Rune() rune {
	if r, ok := symbols[p]; ok {
		return r
	}
	return '?'
}

// String implements fmt.Stringer.
func (p Pipe) String() string { return string(p.Rune()) }

// Opens reports whether p has an opening towards d. Start and Ground open nowhere.
func (p Pipe) Opens(d gridgraph.Direction) bool {
	return p != Start && p&(1<<d) != 0
}

// Sides returns the directions p opens towards, in N, E, S, W order.
func (p Pipe) Sides() []gridgraph.Direction {
	var out []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		if p.Opens(d) {
			out = append(out, d)
		}
	}
	return out
}
