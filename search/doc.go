// Package search is the frontier driver of gridsearch: generic breadth-first
// flood fill and Dijkstra shortest path over any state-augmented graph.
//
// What
//
//   - A Graph[S] exposes Contains and Successors for a comparable state type S.
//     S carries whatever the rule set needs (coordinate, heading, run length);
//     two states are distinct nodes unless they compare equal.
//   - FloodFill runs a FIFO, multi-source, unit-step search and returns a
//     FloodResult with expansion Order, minimum Dist per state and Parent links.
//   - ShortestPath runs a priority-ordered search with non-negative edge costs
//     and stops at the first settled state accepted by a goal predicate.
//   - Hooks (WithOnVisit, WithOnEnqueue) observe the frontier; WithMaxDepth and
//     WithMaxCost bound it; WithContext cancels it.
//
// Why
//
//   - Pipe loops, light rays, turn-limited carts and garden walks are the same
//     search over different successor rules.
//   - Each call owns its frontier and maps, so independent searches may run on
//     separate goroutines with no synchronization.
//
// Complexity (V = states explored, E = edges examined)
//
//   - FloodFill:    O(V + E) time, O(V) memory.
//   - ShortestPath: O((V + E) log V) time, O(V + E) memory.
//
// Usage
//
//	res, err := search.FloodFill(loop, []gridgraph.Coord{start})
//	far := res.Max()
//
//	best, err := search.ShortestPath(m, src, m.IsGoal, search.WithReturnPath())
//	if err == nil && best.Reachable {
//	    fmt.Println(best.Cost, len(best.Path))
//	}
//
// Errors
//
//   - ErrNilGraph          if the graph is nil.
//   - ErrSourceNotFound    if a source state is not in the graph.
//   - ErrNilGoal           if ShortestPath gets a nil goal.
//   - ErrNegativeCost      if a successor edge has a negative cost.
//   - ErrOptionViolation   for negative limits or mistyped hooks.
//   - Wrapped OnVisit hook errors and context errors.
//
// An unreachable goal is reported as Result.Reachable == false, not as an error.
package search
