// Package backtrack defines the Path type, tunable options, and sentinel
// errors for shortest-path reconstruction.
package backtrack

import (
	"errors"
	"fmt"

	"github.com/borismassesa/grassfire/grid"
)

// Sentinel errors for Reconstruct.
var (
	// ErrNoPath indicates the goal is Unreachable from the start.
	// Callers should report "no path found" rather than fail.
	ErrNoPath = errors.New("backtrack: no path exists to goal")

	// ErrDistanceMapNil is returned if a nil distance map is passed.
	ErrDistanceMapNil = errors.New("backtrack: distance map is nil")

	// ErrCellOutOfBounds is returned when start or goal lies outside the map.
	ErrCellOutOfBounds = errors.New("backtrack: cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")

	// ErrMalformedMap is returned when the map cannot be a wavefront result
	// for the given start: its label is not 0, or the gradient dead-ends.
	ErrMalformedMap = errors.New("backtrack: distance map inconsistent with start")
)

// Path is an ordered cell sequence from start to goal inclusive; each
// consecutive pair is adjacent under the reconstruction connectivity and
// the distance labels increase by exactly one per step.
type Path []grid.Cell

// Edges returns the number of steps in the path (cells minus one).
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Option configures Reconstruct behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Reconstruct is invoked.
type Option func(*Options)

// Options holds parameters for path reconstruction.
type Options struct {
	// AllPaths switches to multi-path mode: every distinct shortest
	// sequence is returned instead of the first deterministic one.
	AllPaths bool

	// MaxPaths, if > 0, caps the number of paths collected in multi-path
	// mode. 0 disables the cap. Ignored in single-path mode.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options for deterministic single-path mode with
// no result cap.
func DefaultOptions() Options {
	return Options{AllPaths: false, MaxPaths: 0, err: nil}
}

// WithAllPaths enables multi-path mode.
func WithAllPaths() Option {
	return func(o *Options) { o.AllPaths = true }
}

// WithMaxPaths caps multi-path results at n.
//
//	n > 0:  collect at most n paths
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxPaths = n
		}
	}
}
