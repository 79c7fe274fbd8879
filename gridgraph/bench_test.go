package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// BenchmarkParse measures Parse on a randomly generated 500×500 digit grid.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Parse(text, digit); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
