// Package builder generates randomized, validated pathfinding scenarios:
// a grid peppered with obstacles plus a start and goal placed under the
// workflow rules the algorithmic core deliberately does not re-check.
//
// What
//
//   - Build(rows, cols, opts...) produces a Scenario: a populated
//     grid.Grid with exactly one Start, one Goal, and
//     round(percent × rows × cols) unique Obstacle cells that never cover
//     start or goal.
//   - Start lands on row 0 at a random column; Goal lands strictly below
//     the middle row and within the right third of columns.
//   - Same dimensions, options, and seed ⇒ identical scenario.
//
// Why
//
//   - Random placement and percentage/position validation are
//     configuration concerns; keeping them here leaves grid, wavefront,
//     and backtrack pure functions of their inputs.
//
// Options
//
//   - WithSeed(n): freeze the RNG for reproducible scenarios.
//   - WithObstaclePercent(p): obstacle fraction in [0.10, 0.20] (default 0.15).
//   - WithConnectivity(c): Conn4 (default) or Conn8.
//
// Errors
//
//   - ErrGridTooSmall:    rows or cols below 8.
//   - ErrObstaclePercent: fraction outside [0.10, 0.20].
package builder
