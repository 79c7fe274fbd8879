// Package beam simulates light rays through a grid of mirrors and splitters
// and counts the cells they energize.
//
// Tiles decode from '.' (empty), '/' and '\' (mirrors), '|' and '-'
// (splitters). A ray state is its cell plus its heading; the same cell
// entered with a different heading is a different node, which both stops
// cycles and lets splitters fan out correctly.
package beam

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Tile is one cell of the contraption.
type Tile uint8

const (
	// Empty passes rays straight through.
	Empty Tile = iota
	// MirrorSlash is '/'.
	MirrorSlash
	// MirrorBackslash is '\'.
	MirrorBackslash
	// SplitVertical is '|': rays travelling East or West split North and South.
	SplitVertical
	// SplitHorizontal is '-': rays travelling North or South split East and West.
	SplitHorizontal
)

const tileRunes = `./\|-`

// Decode is the gridgraph.Parse decoder for contraption maps.
func Decode(r rune) (Tile, bool) {
	for i, c := range tileRunes {
		if c == r {
			return Tile(i), true
		}
	}
	return Empty, false
}

// Rune returns the map character for t.
func (t Tile) Rune() rune { return rune(tileRunes[t]) }

// Ray is the search state: the cell a ray occupies and the heading it
// travels in while inside that cell's entry.
type Ray struct {
	Pos     gridgraph.Coord
	Heading gridgraph.Direction
}

// Field is a parsed contraption. It implements search.Graph[Ray].
type Field struct {
	grid *gridgraph.Grid[Tile]
}

// Parse decodes a contraption map.
func Parse(text string) (*Field, error) {
	g, err := gridgraph.Parse(text, Decode)
	if err != nil {
		return nil, err
	}
	return &Field{grid: g}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.grid.Width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.grid.Height }

// String re-encodes the map.
func (f *Field) String() string { return f.grid.Format(Tile.Rune) }

// Contains implements search.Graph.
func (f *Field) Contains(r Ray) bool { return f.grid.InBounds(r.Pos) }

// exits returns the headings a ray leaves a tile with after entering it
// travelling h.
func exits(t Tile, h gridgraph.Direction) []gridgraph.Direction {
	switch t {
	case MirrorSlash:
		// '/' swaps North↔East and South↔West.
		return []gridgraph.Direction{[4]gridgraph.Direction{
			gridgraph.North: gridgraph.East,
			gridgraph.East:  gridgraph.North,
			gridgraph.South: gridgraph.West,
			gridgraph.West:  gridgraph.South,
		}[h]}
	case MirrorBackslash:
		// '\' swaps North↔West and South↔East.
		return []gridgraph.Direction{[4]gridgraph.Direction{
			gridgraph.North: gridgraph.West,
			gridgraph.West:  gridgraph.North,
			gridgraph.South: gridgraph.East,
			gridgraph.East:  gridgraph.South,
		}[h]}
	case SplitVertical:
		if !h.Vertical() {
			return []gridgraph.Direction{gridgraph.North, gridgraph.South}
		}
	case SplitHorizontal:
		if h.Vertical() {
			return []gridgraph.Direction{gridgraph.East, gridgraph.West}
		}
	}
	return []gridgraph.Direction{h}
}

// Successors implements search.Graph. Rays that would leave the grid simply
// have no successor.
func (f *Field) Successors(r Ray) []search.Edge[Ray] {
	t, ok := f.grid.Get(r.Pos)
	if !ok {
		return nil
	}
	dirs := exits(t, r.Heading)
	out := make([]search.Edge[Ray], 0, len(dirs))
	for _, d := range dirs {
		if nb, ok := f.grid.Neighbor(r.Pos, d); ok {
			out = append(out, search.Edge[Ray]{To: Ray{Pos: nb, Heading: d}, Cost: 1})
		}
	}
	return out
}

// Energized traces the beam entering at entry and returns the number of
// distinct cells it passes through.
func (f *Field) Energized(entry Ray, opts ...search.Option) (int, error) {
	res, err := search.FloodFill[Ray](f, []Ray{entry}, opts...)
	if err != nil {
		return 0, err
	}
	cells := make(map[gridgraph.Coord]struct{}, len(res.Dist))
	for r := range res.Dist {
		cells[r.Pos] = struct{}{}
	}
	return len(cells), nil
}

// Entries lists every way a beam can enter from outside: each top cell
// heading South, each bottom cell heading North, each left cell heading East
// and each right cell heading West.
func (f *Field) Entries() []Ray {
	w, h := f.grid.Width, f.grid.Height
	out := make([]Ray, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out,
			Ray{Pos: gridgraph.Coord{Row: 0, Col: x}, Heading: gridgraph.South},
			Ray{Pos: gridgraph.Coord{Row: h - 1, Col: x}, Heading: gridgraph.North},
		)
	}
	for y := 0; y < h; y++ {
		out = append(out,
			Ray{Pos: gridgraph.Coord{Row: y, Col: 0}, Heading: gridgraph.East},
			Ray{Pos: gridgraph.Coord{Row: y, Col: w - 1}, Heading: gridgraph.West},
		)
	}
	return out
}

// MaxEnergized runs one independent trace per entry in Entries on up to
// workers goroutines (GOMAXPROCS when workers <= 0) and returns the best
// count together with the entry that produced it.
func (f *Field) MaxEnergized(ctx context.Context, workers int) (int, Ray, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	entries := f.Entries()
	counts := make([]int, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			n, err := f.Energized(entry, search.WithContext(gctx))
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, Ray{}, err
	}

	best, at := 0, Ray{}
	for i, n := range counts {
		if n > best {
			best, at = n, entries[i]
		}
	}
	return best, at, nil
}
