// Package gridgraph provides utilities to treat a 2D grid of decoded cells
// as a graph. It supports:
//
//   - Decoding newline-delimited text through a per-problem rune table
//   - Bounds-checked cell access that never panics
//   - Four-neighbor coordinate arithmetic (North, East, South, West)
//   - Serialization back to text for round-trip checks
package gridgraph

import (
	"fmt"
	"strings"
)

// Parse decodes text into a Grid using decode for every rune; decode reports
// ok=false for a rune it does not recognize.
// Lines are separated by '\n'; a trailing newline and '\r' line endings are
// tolerated. Returns ErrEmptyGrid if there are no rows or the first row is
// empty, ErrDimensionMismatch if any row length differs, and
// ErrMalformedInput (wrapped with position) for an unknown rune.
// No partial grid is ever returned.
// Algorithmic complexity: O(W×H) time and memory.
func Parse[C any](text string, decode func(r rune) (C, bool)) (*Grid[C], error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	// Row length is measured in runes, not bytes.
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}
	w := len(rows[0])
	if w == 0 && allEmpty(rows) {
		return nil, ErrEmptyGrid
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, y, len(row), w)
		}
	}

	g := &Grid[C]{Width: w, Height: len(rows), cells: make([]C, 0, w*len(rows))}
	for y, row := range rows {
		for x, r := range row {
			cell, ok := decode(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrMalformedInput, r, y, x)
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// New builds a Grid from an already-decoded, rectangular 2D slice.
// It deep-copies the input. Returns ErrEmptyGrid or ErrDimensionMismatch
// under the same rules as Parse.
func New[C any](values [][]C) (*Grid[C], error) {
	if len(values) == 0 || allEmpty(values) {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := &Grid[C]{Width: w, Height: h, cells: make([]C, 0, w*h)}
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, y, len(row), w)
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// allEmpty reports whether every row has zero cells.
func allEmpty[T any](rows [][]T) bool {
	for _, row := range rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[C]) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Get returns the cell at c and true, or the zero value and false when c is
// out of bounds. It never panics.
func (g *Grid[C]) Get(c Coord) (C, bool) {
	if !g.InBounds(c) {
		var zero C
		return zero, false
	}
	return g.cells[g.Index(c)], true
}

// At returns the cell at c. The caller must have checked InBounds.
func (g *Grid[C]) At(c Coord) C {
	return g.cells[g.Index(c)]
}

// Set overwrites the cell at c. Reports false if c is out of bounds.
func (g *Grid[C]) Set(c Coord, v C) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.Index(c)] = v
	return true
}

// Neighbor applies the unit offset of d to c. It reports false when the
// result falls outside the grid; no cell is looked up.
// Complexity: O(1).
func (g *Grid[C]) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Step(d)
	if !g.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Neighbors returns the in-bounds orthogonal neighbors of c in
// North, East, South, West order.
func (g *Grid[C]) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if n, ok := g.Neighbor(c, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the coordinates of every cell for which match is true,
// in row-major order.
func (g *Grid[C]) Find(match func(C) bool) []Coord {
	var out []Coord
	for i, cell := range g.cells {
		if match(cell) {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Cells calls fn for every cell in row-major order.
func (g *Grid[C]) Cells(fn func(c Coord, cell C)) {
	for i, cell := range g.cells {
		fn(g.Coordinate(i), cell)
	}
}

// Clone returns a deep copy of g.
func (g *Grid[C]) Clone() *Grid[C] {
	cells := make([]C, len(g.cells))
	copy(cells, g.cells)
	return &Grid[C]{Width: g.Width, Height: g.Height, cells: cells}
}

// Format serializes the grid back to text, one line per row, using encode
// for every cell. Rows are joined by '\n' with no trailing newline.
func (g *Grid[C]) Format(encode func(C) rune) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			b.WriteRune(encode(g.cells[y*g.Width+x]))
		}
	}
	return b.String()
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid[C]) Index(c Coord) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid[C]) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}
