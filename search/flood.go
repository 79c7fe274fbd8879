package search

import (
	"fmt"
)

// queueItem pairs a state with its step count from the nearest source.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable flood-fill state. One walker serves exactly one
// FloodFill call; nothing in it is shared.
type walker[S comparable] struct {
	graph   Graph[S]
	opts    Options
	hooks   hooks[S]
	queue   []queueItem[S]
	head    int
	visited map[S]bool
	res     *FloodResult[S]
}

// FloodFill runs an unweighted breadth-first search on g from every state in
// sources at once, applying any number of functional Options.
//
// Every edge counts as one step regardless of Edge.Cost. The distance kept for
// a state is the minimum over all copies that reached the frontier; a visited
// set gates expansion so each state is expanded at most once.
//
// Returns ErrNilGraph or ErrSourceNotFound for invalid input, ErrOptionViolation
// for bad options, the context error on cancellation, or any OnVisit error.
func FloodFill[S comparable](g Graph[S], sources []S, opts ...Option) (*FloodResult[S], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, h, err := buildOptions[S](opts)
	if err != nil {
		return nil, err
	}
	for _, s := range sources {
		if !g.Contains(s) {
			return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, s)
		}
	}

	w := &walker[S]{
		graph:   g,
		opts:    o,
		hooks:   h,
		visited: make(map[S]bool),
		res: &FloodResult[S]{
			Dist:   make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range sources {
		w.offer(s, 0, s, false)
	}

	return w.res, w.loop()
}

// offer records depth d for s if it improves on the best known distance and
// appends s to the queue. Already-expanded states are filtered out first.
func (w *walker[S]) offer(s S, d int, parent S, hasParent bool) {
	if w.visited[s] {
		return
	}
	if old, ok := w.res.Dist[s]; ok && old <= d {
		return
	}
	w.res.Dist[s] = d
	if hasParent {
		w.res.Parent[s] = parent
	}
	w.hooks.onEnqueue(s, d)
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if w.visited[item.state] {
			continue
		}
		w.visited[item.state] = true
		d := w.res.Dist[item.state]

		w.res.Order = append(w.res.Order, item.state)
		if err := w.hooks.onVisit(item.state, d); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", item.state, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.Successors(item.state) {
			w.offer(e.To, next, item.state, true)
		}
	}
	return nil
}
