package grid

import "fmt"

// New constructs an all-Free Grid with the given dimensions and
// connectivity. Returns ErrEmptyGrid when rows or cols is below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, conn Connectivity) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		rows:            rows,
		cols:            cols,
		states:          make([]CellState, rows*cols),
		conn:            conn,
		neighborOffsets: Offsets(conn),
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Conn returns the connectivity the grid was built with.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether c lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major position: Row*cols + Col.
// The caller must ensure c is in bounds. Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell. Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Set assigns state to cell c.
// Returns ErrInvalidCoordinate when c is out of bounds, and
// ErrDuplicateRole when Start or Goal is assigned a second time.
// Complexity: O(1).
func (g *Grid) Set(c Cell, state CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCoordinate, c.Row, c.Col, g.rows, g.cols)
	}
	switch state {
	case Start:
		if g.hasStart {
			return fmt.Errorf("%w: start already at (%d,%d)", ErrDuplicateRole, g.start.Row, g.start.Col)
		}
		g.start, g.hasStart = c, true
	case Goal:
		if g.hasGoal {
			return fmt.Errorf("%w: goal already at (%d,%d)", ErrDuplicateRole, g.goal.Row, g.goal.Col)
		}
		g.goal, g.hasGoal = c, true
	}
	g.states[g.Index(c)] = state

	return nil
}

// Get returns the state of cell c, or ErrInvalidCoordinate out of bounds.
// Complexity: O(1).
func (g *Grid) Get(c Cell) (CellState, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCoordinate, c.Row, c.Col, g.rows, g.cols)
	}

	return g.states[g.Index(c)], nil
}

// Start returns the Start cell and whether one has been assigned.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Goal returns the Goal cell and whether one has been assigned.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// Neighbors returns the in-bounds cells adjacent to c under the grid's
// connectivity, in the fixed tie-break order of Offsets. The slice is
// freshly allocated on every call, so iteration is restartable.
// Returns ErrInvalidCoordinate when c itself is out of bounds.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCoordinate, c.Row, c.Col, g.rows, g.cols)
	}
	out := make([]Cell, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out, nil
}
