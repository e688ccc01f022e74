// Package wavefront labels every reachable grid cell with its shortest
// unweighted distance from a start cell, sweeping outward one ring at a
// time like a spreading fire (the grassfire algorithm).
//
// What
//
//   - Propagate runs a FIFO breadth-first flood fill over a grid.Grid,
//     skipping Obstacle cells, and returns a DistanceMap.
//   - DistanceMap holds one label per cell: the minimum number of grid
//     steps from the start, or Unreachable for cells no obstacle-free
//     route can reach (all Obstacle cells included).
//   - Optional hooks observe the sweep: OnEnqueue, OnDequeue, OnLabel.
//
// Why
//
//   - The distance field is the whole input the backtrack package needs
//     to recover one or every shortest path.
//   - An explicit frontier queue over a flat row-major array avoids
//     recursion and pointer graphs entirely.
//
// Guarantee
//
//	After Propagate, every reachable Free/Goal cell's label equals the
//	true shortest step count from start under the grid's connectivity and
//	obstacle layout; unreached cells keep the Unreachable sentinel. An
//	unreachable goal is a normal outcome, not an error: the map is always
//	complete.
//
// Complexity (R×C grid, d = 4 or 8 neighbors)
//
//   - Time:   O(R×C×d)  (each cell enqueued at most once)
//   - Memory: O(R×C)    (distance array plus frontier)
//
// Errors
//
//   - ErrGridNil:          nil grid pointer.
//   - ErrStartOutOfBounds: start cell outside the grid.
//   - ErrStartObstacle:    start cell is an Obstacle.
//
// See: backtrack for path reconstruction over the resulting DistanceMap.
package wavefront
