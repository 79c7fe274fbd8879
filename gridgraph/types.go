// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridsearch.
package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input text has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrDimensionMismatch indicates rows of differing lengths.
	ErrDimensionMismatch = errors.New("gridgraph: all rows must have the same length")
	// ErrMalformedInput indicates a character that the decode table does not know.
	ErrMalformedInput = errors.New("gridgraph: unrecognized cell character")
)

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	// North decreases Row.
	North Direction = iota
	// East increases Col.
	East
	// South increases Row.
	South
	// West decreases Col.
	West
)

// Directions lists the four headings in clockwise order starting at North.
// Index i of this slice is Direction(i).
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offset returns the unit {dRow, dCol} step for d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Opposite returns the reversed heading (North↔South, East↔West).
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// TurnLeft returns the heading 90° counter-clockwise from d.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// TurnRight returns the heading 90° clockwise from d.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool { return d == North || d == South }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Coord addresses a cell by row and column, both 0-based.
type Coord struct {
	Row, Col int
}

// Step returns c moved one cell towards d. The result may be out of bounds;
// use Grid.Neighbor when bounds matter.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Offset()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String implements fmt.Stringer as "row,col".
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Grid is a rectangular, row-major array of decoded cells.
// Width and Height are fixed at construction; cells[y*Width+x] holds (row y, col x).
// A Grid is treated as immutable once parsed; Set exists only for one-time
// post-parse fix-ups such as start-marker resolution.
type Grid[C any] struct {
	Width, Height int
	cells         []C
}
