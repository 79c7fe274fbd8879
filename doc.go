// Package gridsearch is a constrained-path-search engine for 2-D character
// grids: parse a map once, view it as a graph of path states, and run a flood
// fill or a shortest-path search over it.
//
// Under the hood, everything is organized in three layers:
//
//	gridgraph/ — Grid[C], Coord, Direction: decoding, bounds checks, neighbors
//	search/    — FloodFill and ShortestPath over any Graph[S]
//	rule sets  — state-augmented views that implement search.Graph:
//	    pipes/    — closed pipe loops (mutual connectivity, start resolution)
//	    beam/     — light rays through mirrors and splitters (heading in state)
//	    crucible/ — turn-limited carts (run-length counters in state)
//	    garden/   — step-bounded walks around rocks
//
// Quick ASCII example:
//
//	..F7.
//	.FJ|.
//	SJ.L7      → pipes: farthest loop cell is 8 steps from S
//	|F--J
//	LJ...
//
// The gridsearch command (cmd/gridsearch) is a thin caller that reads a grid
// from a file or stdin and prints the answers.
package gridsearch
