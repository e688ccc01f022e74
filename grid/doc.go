// Package grid models a rectangular 2D field of cells for wavefront
// pathfinding: free space, impassable obstacles, and a single start and
// goal cell.
//
// What:
//
//   - Grid wraps an R×C field of CellState values with fixed dimensions.
//   - Each cell is Free, Obstacle, Start, or Goal; Start and Goal may be
//     assigned at most once per grid.
//   - Neighbors enumerates in-bounds adjacent cells in a fixed order
//     (up, right, down, left, then the four diagonals under Conn8); the
//     order is the tie-break priority used by path reconstruction.
//
// Why:
//
//   - Occupancy grids: robot motion planning, game maps, flood simulation.
//   - A stable neighbor order makes every downstream traversal and
//     backtrack fully deterministic and reproducible.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - Set / Get:  O(1).
//   - Neighbors:  O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:         requested dimensions below one row or column.
//   - ErrInvalidCoordinate: cell access outside [0,R)×[0,C).
//   - ErrDuplicateRole:     Start or Goal assigned a second time.
//
// See: wavefront for distance labeling and backtrack for path recovery.
package grid
