// Package builder assembles randomized obstacle grids with validated
// start/goal placement, deterministic under an explicit seed.
package builder

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/borismassesa/grassfire/grid"
)

// Build generates a Scenario on a rows×cols grid.
//
// Placement rules (the workflow constraints the core never re-derives):
//   - Start: row 0, uniformly random column.
//   - Goal: row in (rows/2, rows), column in [round(2·cols/3), cols).
//   - Obstacles: round(percent × rows × cols) unique cells, never on
//     start or goal.
//
// Determinism: the same dimensions, options, and WithSeed value always
// produce the identical scenario. Without WithSeed the RNG is
// time-derived.
//
// Returns ErrGridTooSmall or ErrObstaclePercent for invalid parameters.
// Complexity: O(rows×cols) expected (rejection sampling over ≤20% of cells).
func Build(rows, cols int, opts ...Option) (*Scenario, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, rows, cols)
	}
	if o.ObstaclePercent < MinObstaclePercent || o.ObstaclePercent > MaxObstaclePercent {
		return nil, fmt.Errorf("%w: got %.3f", ErrObstaclePercent, o.ObstaclePercent)
	}

	seed := o.Seed
	if !o.Seeded {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	g, err := grid.New(rows, cols, o.Conn)
	if err != nil {
		return nil, err
	}

	start := grid.Cell{Row: 0, Col: rnd.Intn(cols)}

	rowFloor := rows/2 + 1
	colFloor := int(math.Round(2.0 / 3.0 * float64(cols)))
	goal := grid.Cell{
		Row: rowFloor + rnd.Intn(rows-rowFloor),
		Col: colFloor + rnd.Intn(cols-colFloor),
	}

	if err = g.Set(start, grid.Start); err != nil {
		return nil, err
	}
	if err = g.Set(goal, grid.Goal); err != nil {
		return nil, err
	}

	want := int(math.Round(o.ObstaclePercent * float64(rows*cols)))
	for placed := 0; placed < want; {
		c := grid.Cell{Row: rnd.Intn(rows), Col: rnd.Intn(cols)}
		if c == start || c == goal {
			continue
		}
		if st, _ := g.Get(c); st == grid.Obstacle {
			continue
		}
		if err = g.Set(c, grid.Obstacle); err != nil {
			return nil, err
		}
		placed++
	}

	return &Scenario{Grid: g, Start: start, Goal: goal}, nil
}
