// Package search provides tunable options, result types and error definitions
// for frontier searches over a state graph.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSourceNotFound is returned when a source state is not part of the graph,
	// e.g. a grid coordinate outside the grid.
	ErrSourceNotFound = errors.New("search: source state not in graph")

	// ErrNilGoal is returned when ShortestPath is called without a goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost is returned when a successor edge carries a negative cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state that was never reached.
	ErrNoPath = errors.New("search: no path to state")
)

// Edge is one outgoing transition of a state: the successor and the cost of
// moving there. Costs must be non-negative.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Graph is the state-augmented view a search runs over. S is the full
// PathState (coordinate plus any auxiliary data); two states are the same
// node exactly when they compare equal.
type Graph[S comparable] interface {
	// Contains reports whether s is a valid node, e.g. its coordinate is in bounds.
	Contains(s S) bool
	// Successors lists the legal transitions out of s. A state with no legal
	// move returns an empty slice.
	Successors(s S) []Edge[S]
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by FloodFill and ShortestPath.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per popped state.
	Ctx context.Context

	// MaxDepth, if > 0, stops FloodFill from exploring beyond this many steps.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxCost, if > 0, stops ShortestPath from settling states costlier than this.
	// A value of 0 explicitly disables any cost limit.
	MaxCost int

	// ReturnPath makes ShortestPath reconstruct the state sequence to the goal.
	ReturnPath bool

	// onVisit and onEnqueue hold typed hooks (func(S, int) error and
	// func(S, int)); they are type-checked against S when the search starts.
	onVisit   any
	onEnqueue any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth or cost limit
//   - no path reconstruction
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops FloodFill at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxCost stops ShortestPath from settling any state whose cost exceeds c.
// Same conventions as WithMaxDepth.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithReturnPath enables path reconstruction in ShortestPath.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnVisit registers a callback run when a state is expanded; returning an
// error from it stops the search. S must match the graph's state type, or the
// search fails with ErrOptionViolation.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a state enters the frontier.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// hooks are the resolved, typed callbacks for one search run.
type hooks[S comparable] struct {
	onVisit   func(S, int) error
	onEnqueue func(S, int)
}

// buildOptions applies opts over DefaultOptions and resolves hooks for S.
func buildOptions[S comparable](opts []Option) (Options, hooks[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := hooks[S]{
		onVisit:   func(S, int) error { return nil },
		onEnqueue: func(S, int) {},
	}
	if o.err != nil {
		return o, h, o.err
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(S, int) error)
		if !ok {
			return o, h, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
		}
		h.onVisit = fn
	}
	if o.onEnqueue != nil {
		fn, ok := o.onEnqueue.(func(S, int))
		if !ok {
			return o, h, fmt.Errorf("%w: OnEnqueue hook has type %T", ErrOptionViolation, o.onEnqueue)
		}
		h.onEnqueue = fn
	}

	return o, h, nil
}

// FloodResult holds the outcome of a FloodFill:
//   - Order: states expanded, in expansion sequence.
//   - Dist: map from state to its minimum step count from the nearest source.
//   - Parent: map from state to its predecessor in the search tree.
type FloodResult[S comparable] struct {
	Order  []S
	Dist   map[S]int
	Parent map[S]S
}

// Max returns the largest recorded distance, or 0 for an empty result.
func (r *FloodResult[S]) Max() int {
	best := 0
	for _, d := range r.Dist {
		if d > best {
			best = d
		}
	}
	return best
}

// PathTo reconstructs the path from a source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *FloodResult[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(path)

	return path, nil
}

// Result is the outcome of ShortestPath. Reachable is false when the frontier
// emptied (or MaxCost was hit) before any goal state was settled; Cost, Goal
// and Path are meaningful only when Reachable is true.
type Result[S comparable] struct {
	Reachable bool
	Goal      S
	Cost      int
	Path      []S // source → goal, only with WithReturnPath
	Settled   int // number of states finalized before returning
}

func reverse[S any](s []S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
