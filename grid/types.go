// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/borismassesa/grassfire.
package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates requested dimensions below one row or one column.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrInvalidCoordinate indicates a cell outside the grid boundaries.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")
	// ErrDuplicateRole indicates a second assignment of Start or Goal.
	ErrDuplicateRole = errors.New("grid: start or goal already assigned")
)

// CellState classifies a single grid cell.
type CellState uint8

const (
	// Free marks a passable cell.
	Free CellState = iota
	// Obstacle marks an impassable cell.
	Obstacle
	// Start marks the wavefront source cell; at most one per grid.
	Start
	// Goal marks the destination cell; at most one per grid.
	Goal
)

// String returns a human-readable state name.
func (s CellState) String() string {
	switch s {
	case Free:
		return "Free"
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals after the cardinal directions.
	Conn8
)

// Cell is a 0-indexed (row, col) coordinate pair. Immutable value type.
type Cell struct {
	Row, Col int
}

// Offsets returns the canonical neighbor offsets for conn as (dRow, dCol)
// pairs, in tie-break order: up, right, down, left, then (Conn8 only)
// up-right, down-right, down-left, up-left. The returned slice is freshly
// allocated; callers may reorder or trim it.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{
			{-1, 0}, {0, 1}, {1, 0}, {0, -1},
			{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
		}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Grid is a fixed-size R×C field of CellState values. Dimensions and
// connectivity are immutable once built; cell states mutate only through
// Set. Grid performs no locking: callers must not mutate it while a
// traversal reads it.
type Grid struct {
	rows, cols      int
	states          []CellState // row-major, len rows*cols
	conn            Connectivity
	neighborOffsets [][2]int

	start, goal       Cell
	hasStart, hasGoal bool
}
