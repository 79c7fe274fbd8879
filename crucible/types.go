// Package crucible defines the run-length path state, turn rules and sentinel
// errors for the crucible subpackage of github.com/katalvlaran/gridsearch.
package crucible

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for crucible operations.
var (
	// ErrBadRules indicates MaxRun < 1, MinRun < 0, MinRun > MaxRun, or a
	// limit too large for the run counters.
	ErrBadRules = errors.New("crucible: invalid run-length rules")
)

// Rules bounds how far the cart may travel in a straight line.
//
// MinRun – steps the cart must take in its current direction before it may
// turn or stop (0 disables the minimum).
// MaxRun – steps after which it must turn.
type Rules struct {
	MinRun int
	MaxRun int
}

// Validate checks r and returns ErrBadRules (wrapped) if it is unusable.
func (r Rules) Validate() error {
	switch {
	case r.MinRun < 0:
		return fmt.Errorf("%w: MinRun=%d is negative", ErrBadRules, r.MinRun)
	case r.MaxRun < 1:
		return fmt.Errorf("%w: MaxRun=%d must be at least 1", ErrBadRules, r.MaxRun)
	case r.MinRun > r.MaxRun:
		return fmt.Errorf("%w: MinRun=%d exceeds MaxRun=%d", ErrBadRules, r.MinRun, r.MaxRun)
	case r.MaxRun > math.MaxUint8:
		return fmt.Errorf("%w: MaxRun=%d exceeds %d", ErrBadRules, r.MaxRun, math.MaxUint8)
	}
	return nil
}

// State is the search node: a position plus one consecutive-step counter per
// direction, indexed by gridgraph.Direction. At most one counter is nonzero;
// all zero means the cart has not moved yet.
type State struct {
	Pos gridgraph.Coord
	Run [4]uint8
}

// Heading returns the direction the cart is currently running in and how many
// steps it has taken that way. moving is false for the initial state.
func (s State) Heading() (d gridgraph.Direction, run int, moving bool) {
	for _, dir := range gridgraph.Directions {
		if n := s.Run[dir]; n > 0 {
			return dir, int(n), true
		}
	}
	return gridgraph.North, 0, false
}

// advance returns the state after stepping to pos heading d.
func (s State) advance(pos gridgraph.Coord, d gridgraph.Direction) State {
	next := State{Pos: pos}
	if dir, run, moving := s.Heading(); moving && dir == d {
		next.Run[d] = uint8(run + 1)
	} else {
		next.Run[d] = 1
	}
	return next
}
