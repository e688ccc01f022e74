// Package backtrack recovers shortest paths from a wavefront DistanceMap
// by walking from the goal down the distance gradient to the start.
//
// What
//
//   - Reconstruct walks goal→start, at every step moving to a neighbor
//     whose label is exactly one below the current cell's label, then
//     reverses the walk into start→goal order.
//   - Default mode returns one path, picking the first qualifying neighbor
//     in the fixed tie-break order of grid.Offsets — fully deterministic.
//   - WithAllPaths branches over every qualifying neighbor and returns
//     every distinct shortest coordinate sequence; WithMaxPaths bounds the
//     result count for large tie fans.
//
// Why
//
//   - A reachable cell with label d > 0 always has a neighbor labeled d-1,
//     so the backward walk never dead-ends and runs in O(path length) for
//     the single-path mode.
//   - Multi-path mode is combinatorial (every tie doubles the fan), which
//     stays tractable on the small grids this module targets; bound it
//     with WithMaxPaths when grid sizes are not under your control.
//
// Errors
//
//   - ErrNoPath:          the goal label is Unreachable — a normal,
//     recoverable outcome reported with an empty result, never a partial path.
//   - ErrDistanceMapNil:  nil distance map pointer.
//   - ErrCellOutOfBounds: start or goal outside the map.
//   - ErrOptionViolation: invalid Option (e.g. negative WithMaxPaths).
//   - ErrMalformedMap:    the map is not a propagation result for start
//     (start label ≠ 0, or the gradient dead-ends).
//
// See: wavefront for producing the DistanceMap.
package backtrack
