// Package wavefront provides breadth-first grassfire propagation over a
// grid.Grid, producing a complete DistanceMap in a single synchronous pass.
package wavefront

import (
	"fmt"

	"github.com/borismassesa/grassfire/grid"
)

// walker encapsulates mutable propagation state for one run.
type walker struct {
	grid  *grid.Grid
	opts  Options
	queue []grid.Cell
	head  int
	dist  *DistanceMap
}

// Propagate flood-fills distance labels outward from start across g,
// applying any number of functional Options.
// The returned map is complete even when parts of the grid (the goal
// included) stay Unreachable; that is reported by the label, not an error.
// Returns ErrGridNil, ErrStartOutOfBounds, or ErrStartObstacle for invalid
// input. Complexity: O(R×C) time and memory.
func Propagate(g *grid.Grid, start grid.Cell, opts ...Option) (*DistanceMap, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	state, err := g.Get(start)
	if err != nil {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.Row, start.Col)
	}
	if state == grid.Obstacle {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartObstacle, start.Row, start.Col)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]grid.Cell, 0, g.Rows()*g.Cols()),
		dist:  newDistanceMap(g.Rows(), g.Cols()),
	}

	// Seed the frontier with the start cell at distance 0.
	w.label(start, 0)
	w.loop()

	return w.dist, nil
}

// label stamps c with distance d, fires hooks, and enqueues c.
// Each cell is labeled exactly once per run.
func (w *walker) label(c grid.Cell, d int) {
	w.dist.set(c, d)
	w.opts.OnLabel(c, d)
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, c)
}

// loop expands the frontier in FIFO order until it empties.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		c := w.queue[w.head]
		w.head++
		d := w.dist.At(c)
		w.opts.OnDequeue(c, d)
		w.expand(c, d)
	}
}

// expand labels every unvisited, non-obstacle neighbor of c with d+1,
// following the grid's fixed neighbor order.
func (w *walker) expand(c grid.Cell, d int) {
	neighbors, _ := w.grid.Neighbors(c) // c came off the queue, always in bounds
	for _, n := range neighbors {
		if w.dist.Reachable(n) {
			continue
		}
		state, _ := w.grid.Get(n)
		if state == grid.Obstacle {
			continue
		}
		w.label(n, d+1)
	}
}
