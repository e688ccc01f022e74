// Package backtrack walks a wavefront DistanceMap backward from the goal,
// producing one or every shortest path in start→goal order.
package backtrack

import (
	"fmt"
	"strings"

	"github.com/borismassesa/grassfire/grid"
	"github.com/borismassesa/grassfire/wavefront"
)

// tracer encapsulates state shared by one reconstruction run.
type tracer struct {
	dm      *wavefront.DistanceMap
	start   grid.Cell
	offsets [][2]int
	opts    Options

	paths []Path
	seen  map[string]struct{}
}

// Reconstruct derives shortest paths from dm, which must be the result of
// propagating from start; conn selects the neighbor order (and must match
// the connectivity dm was produced under for the paths to be valid).
//
// Default mode returns exactly one deterministic path. With WithAllPaths,
// every distinct shortest sequence is returned, deduplicated and capped by
// WithMaxPaths. Paths are pure results; dm is never mutated.
//
// Returns ErrNoPath with an empty result when the goal is Unreachable.
// Complexity: O(path length) single mode; exponential in the number of
// equal-distance branch points in multi-path mode.
func Reconstruct(dm *wavefront.DistanceMap, start, goal grid.Cell, conn grid.Connectivity, opts ...Option) ([]Path, error) {
	if dm == nil {
		return nil, ErrDistanceMapNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !dm.InBounds(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrCellOutOfBounds, start.Row, start.Col)
	}
	if !dm.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrCellOutOfBounds, goal.Row, goal.Col)
	}
	if dm.At(start) != 0 {
		return nil, fmt.Errorf("%w: start label %d, want 0", ErrMalformedMap, dm.At(start))
	}
	if !dm.Reachable(goal) {
		return nil, ErrNoPath
	}

	tr := &tracer{
		dm:      dm,
		start:   start,
		offsets: grid.Offsets(conn),
		opts:    o,
		seen:    make(map[string]struct{}),
	}

	if o.AllPaths {
		if err := tr.branch(goal, Path{goal}); err != nil {
			return nil, err
		}

		return tr.paths, nil
	}

	p, err := tr.first(goal)
	if err != nil {
		return nil, err
	}

	return []Path{p}, nil
}

// first walks the gradient goal→start taking the first qualifying neighbor
// at every step, then reverses into start→goal order.
func (tr *tracer) first(goal grid.Cell) (Path, error) {
	path := Path{goal}
	cur := goal
	for tr.dm.At(cur) > 0 {
		next, ok := tr.stepDown(cur)
		if !ok {
			return nil, fmt.Errorf("%w: gradient dead-ends at (%d,%d)", ErrMalformedMap, cur.Row, cur.Col)
		}
		cur = next
		path = append(path, cur)
	}
	if cur != tr.start {
		return nil, fmt.Errorf("%w: walk ends at (%d,%d), not start", ErrMalformedMap, cur.Row, cur.Col)
	}

	return reversed(path), nil
}

// stepDown returns the first neighbor of c (tie-break order) whose label is
// exactly one below c's label.
func (tr *tracer) stepDown(c grid.Cell) (grid.Cell, bool) {
	want := tr.dm.At(c) - 1
	for _, d := range tr.offsets {
		n := grid.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if tr.dm.At(n) == want { // At is Unreachable out of bounds, never matches
			return n, true
		}
	}

	return grid.Cell{}, false
}

// branch recursively explores every qualifying neighbor of cur, collecting
// each completed walk. acc holds the goal→cur prefix.
func (tr *tracer) branch(cur grid.Cell, acc Path) error {
	if tr.capped() {
		return nil
	}
	d := tr.dm.At(cur)
	if d == 0 {
		if cur != tr.start {
			return fmt.Errorf("%w: walk ends at (%d,%d), not start", ErrMalformedMap, cur.Row, cur.Col)
		}
		tr.collect(acc)

		return nil
	}

	branched := false
	for _, off := range tr.offsets {
		n := grid.Cell{Row: cur.Row + off[0], Col: cur.Col + off[1]}
		if tr.dm.At(n) != d-1 {
			continue
		}
		branched = true
		if err := tr.branch(n, append(acc, n)); err != nil {
			return err
		}
		if tr.capped() {
			return nil
		}
	}
	if !branched {
		return fmt.Errorf("%w: gradient dead-ends at (%d,%d)", ErrMalformedMap, cur.Row, cur.Col)
	}

	return nil
}

// collect reverses a completed goal→start walk and stores it unless an
// identical sequence was already recorded.
func (tr *tracer) collect(walk Path) {
	p := reversed(walk)
	sig := signature(p)
	if _, dup := tr.seen[sig]; dup {
		return
	}
	tr.seen[sig] = struct{}{}
	tr.paths = append(tr.paths, p)
}

// capped reports whether the MaxPaths bound has been reached.
func (tr *tracer) capped() bool {
	return tr.opts.MaxPaths > 0 && len(tr.paths) >= tr.opts.MaxPaths
}

// reversed returns a fresh copy of p in opposite order.
func reversed(p Path) Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}

	return out
}

// signature builds a unique key for exact-duplicate detection.
func signature(p Path) string {
	var b strings.Builder
	b.Grow(len(p) * 8)
	for _, c := range p {
		fmt.Fprintf(&b, "(%d,%d);", c.Row, c.Col)
	}

	return b.String()
}
