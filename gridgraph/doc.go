// Package gridgraph treats a 2D grid of decoded cells as the vertex set of a
// graph, giving every rule set in gridsearch one shared, bounds-checked model.
//
// What:
//
//   - Grid[C] wraps a rectangular, row-major array of cells of any type C.
//   - Parse decodes newline-delimited text through a per-problem rune decoder.
//   - Get and Neighbor are the only ways to touch coordinates near the edge;
//     both report validity instead of panicking.
//   - Format re-encodes a grid so that Parse(Format(g)) reproduces g.
//
// Why:
//
//   - Puzzle maps: pipes, mirrors, weighted terrain and gardens all share the
//     same "rows of runes" shape and the same four-neighbor arithmetic.
//   - Search drivers work on coordinates; the grid keeps index math in one place.
//
// Complexity:
//
//   - Parse, New, Clone, Format: O(W×H) time and memory.
//   - Get, At, Set, Neighbor, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or every row is empty.
//   - ErrDimensionMismatch: rows have differing lengths.
//   - ErrMalformedInput: a rune is unknown to the decode table.
package gridgraph
