// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/search"
)

// ExampleShortestPath routes through the cheaper branch of a diamond.
func ExampleShortestPath() {
	g := adj{
		"A": {e("B", 1), e("C", 2)},
		"B": {e("D", 5)},
		"C": {e("D", 1)},
		"D": {},
	}
	res, err := search.ShortestPath[string](g, "A",
		func(v string) bool { return v == "D" }, search.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Reachable, res.Cost, res.Path)

	// Output:
	// true 3 [A C D]
}

// ExampleFloodFill counts steps, not costs.
func ExampleFloodFill() {
	g := adj{
		"A": {e("B", 1), e("C", 2)},
		"B": {e("D", 5)},
		"C": {e("D", 1)},
		"D": {},
	}
	res, err := search.FloodFill[string](g, []string{"A"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist["D"], res.Max())

	// Output:
	// 2 2
}
