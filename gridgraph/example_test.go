// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse decodes a small weighted map and walks from a corner.
// Scenario:
//
//   - Each rune is a digit weight.
//   - Neighbor reports false instead of panicking at the border.
func ExampleParse() {
	g, err := gridgraph.Parse("241\n321", func(r rune) (int, bool) {
		return int(r - '0'), r >= '0' && r <= '9'
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d\n", g.Width, g.Height)

	start := gridgraph.Coord{Row: 0, Col: 0}
	for _, d := range gridgraph.Directions {
		if n, ok := g.Neighbor(start, d); ok {
			fmt.Printf("%v -> %v = %d\n", d, n, g.At(n))
		} else {
			fmt.Printf("%v -> outside\n", d)
		}
	}

	// Output:
	// 3x2
	// N -> outside
	// E -> 0,1 = 4
	// S -> 1,0 = 3
	// W -> outside
}
