package search

import (
	"container/heap"
	"fmt"
)

// ShortestPath computes the minimum total edge cost from source to any state
// satisfying goal, using Dijkstra's algorithm with a lazy-decrease-key heap.
//
// A state is finalized the first time it is popped; stale heap entries for
// finalized states are skipped. The search stops as soon as a popped state
// satisfies goal, so the reported cost is minimal.
//
// Returns:
//
//   - Result.Reachable == false (and a nil error) when no goal state can be
//     reached; this is a valid outcome, not a fault.
//   - ErrNilGraph, ErrNilGoal, ErrSourceNotFound or ErrOptionViolation for
//     invalid input, ErrNegativeCost if a negative edge is met, or the
//     context error on cancellation.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the states actually explored.
//   - Space: O(V + E) for the cost map and the heap under lazy decrease-key.
func ShortestPath[S comparable](g Graph[S], source S, goal func(S) bool, opts ...Option) (Result[S], error) {
	var res Result[S]

	// 1) Validate inputs
	if g == nil {
		return res, ErrNilGraph
	}
	if goal == nil {
		return res, ErrNilGoal
	}
	o, h, err := buildOptions[S](opts)
	if err != nil {
		return res, err
	}
	if !g.Contains(source) {
		return res, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	// 2) Prepare per-run state; nothing here outlives the call.
	r := &runner[S]{
		g:     g,
		goal:  goal,
		opts:  o,
		hooks: h,
		dist:  make(map[S]int),
		done:  make(map[S]bool),
	}
	if o.ReturnPath {
		r.prev = make(map[S]S)
	}

	// 3) Seed the heap and run the main loop.
	r.dist[source] = 0
	heap.Push(&r.pq, &stateItem[S]{state: source, cost: 0})
	h.onEnqueue(source, 0)

	return r.process()
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[S comparable] struct {
	g     Graph[S]
	goal  func(S) bool
	opts  Options
	hooks hooks[S]
	dist  map[S]int  // best known cost per state
	prev  map[S]S    // predecessor on the best path; nil unless ReturnPath
	done  map[S]bool // finalized states
	pq    statePQ[S] // min-heap of candidate states
}

// process repeatedly extracts the cheapest state and relaxes its edges.
//
// Loop termination conditions:
//
//   - A popped state satisfies the goal (Reachable).
//   - The heap becomes empty or the cheapest entry exceeds MaxCost (unreachable).
func (r *runner[S]) process() (Result[S], error) {
	var res Result[S]
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return res, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem[S])
		u, d := item.state, item.cost

		// Skip stale heap entries.
		if r.done[u] {
			continue
		}
		// Everything left in the heap is at least this expensive.
		if r.opts.MaxCost > 0 && d > r.opts.MaxCost {
			break
		}
		r.done[u] = true
		res.Settled++

		if err := r.hooks.onVisit(u, d); err != nil {
			return res, fmt.Errorf("search: OnVisit error at %v: %w", u, err)
		}

		if r.goal(u) {
			res.Reachable = true
			res.Goal = u
			res.Cost = d
			if r.prev != nil {
				res.Path = r.pathTo(u)
			}
			return res, nil
		}

		if err := r.relax(u, d); err != nil {
			return res, err
		}
	}

	return res, nil
}

// relax examines each successor of u and pushes any strictly cheaper route.
func (r *runner[S]) relax(u S, d int) error {
	for _, e := range r.g.Successors(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.done[e.To] {
			continue
		}
		nd := d + e.Cost
		if r.opts.MaxCost > 0 && nd > r.opts.MaxCost {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates for equal costs.
		if old, ok := r.dist[e.To]; ok && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.hooks.onEnqueue(e.To, nd)
		heap.Push(&r.pq, &stateItem[S]{state: e.To, cost: nd})
	}
	return nil
}

// pathTo walks predecessors back from target to the source.
func (r *runner[S]) pathTo(target S) []S {
	path := []S{target}
	for cur := target; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)
	return path
}

// stateItem represents a state and its tentative cost from the source.
type stateItem[S comparable] struct {
	state S
	cost  int
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Outdated entries stay in the heap and are ignored when popped.
type statePQ[S comparable] []*stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
