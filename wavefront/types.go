// Package wavefront defines tunable options, the DistanceMap result type,
// and sentinel errors for grassfire propagation.
package wavefront

import (
	"errors"

	"github.com/borismassesa/grassfire/grid"
)

// Sentinel errors for Propagate.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("wavefront: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("wavefront: start cell out of bounds")

	// ErrStartObstacle is returned when the start cell is an Obstacle.
	ErrStartObstacle = errors.New("wavefront: start cell is an obstacle")
)

// Unreachable is the DistanceMap sentinel for cells the wavefront never
// reached: every Obstacle cell, and every cell cut off from the start.
const Unreachable = -1

// DistanceMap records, per cell, the minimum number of grid steps from the
// start cell of the Propagate run that produced it. Each run allocates a
// fresh map; the map is never mutated after Propagate returns.
type DistanceMap struct {
	rows, cols int
	dist       []int // row-major, Unreachable where never labeled
}

// newDistanceMap allocates an all-Unreachable map of the given dimensions.
func newDistanceMap(rows, cols int) *DistanceMap {
	d := make([]int, rows*cols)
	for i := range d {
		d[i] = Unreachable
	}

	return &DistanceMap{rows: rows, cols: cols, dist: d}
}

// Rows returns the number of map rows.
func (m *DistanceMap) Rows() int { return m.rows }

// Cols returns the number of map columns.
func (m *DistanceMap) Cols() int { return m.cols }

// InBounds reports whether c lies within the map.
func (m *DistanceMap) InBounds(c grid.Cell) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// At returns the distance label of c, or Unreachable when c was never
// labeled or lies out of bounds. Complexity: O(1).
func (m *DistanceMap) At(c grid.Cell) int {
	if !m.InBounds(c) {
		return Unreachable
	}

	return m.dist[c.Row*m.cols+c.Col]
}

// Reachable reports whether the wavefront labeled c.
func (m *DistanceMap) Reachable(c grid.Cell) bool {
	return m.At(c) != Unreachable
}

// set stores label d for c. Internal: callers guarantee bounds.
func (m *DistanceMap) set(c grid.Cell, d int) {
	m.dist[c.Row*m.cols+c.Col] = d
}

// Option configures Propagate behavior via functional arguments.
type Option func(*Options)

// Options holds observability hooks for a propagation run.
// All hooks receive the cell and its distance label.
type Options struct {
	// OnEnqueue is called when a cell joins the frontier, start included.
	OnEnqueue func(c grid.Cell, dist int)

	// OnDequeue is called when a cell leaves the frontier for expansion.
	OnDequeue func(c grid.Cell, dist int)

	// OnLabel is called when a cell receives its (final) distance label,
	// start included.
	OnLabel func(c grid.Cell, dist int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Cell, int) {},
		OnDequeue: func(grid.Cell, int) {},
		OnLabel:   func(grid.Cell, int) {},
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnLabel registers a callback to run when a cell is labeled.
func WithOnLabel(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}
