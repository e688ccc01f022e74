package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/borismassesa/grassfire/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 5},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.rows, tc.cols, grid.Conn4); !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestInBounds checks boundary classification on a 3x2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2, grid.Conn4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v) = false; want true", c)
		}
	}
	invalid := []grid.Cell{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v) = true; want false", c)
		}
	}
}

// TestIndexCellAt_RoundTrip verifies row-major index conversion both ways.
func TestIndexCellAt_RoundTrip(t *testing.T) {
	g, _ := grid.New(4, 5, grid.Conn4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if got := g.CellAt(g.Index(cell)); got != cell {
				t.Errorf("CellAt(Index(%v)) = %v", cell, got)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Set and Get Tests
//----------------------------------------------------------------------------//

// TestSetGet covers normal assignment and out-of-bounds rejection.
func TestSetGet(t *testing.T) {
	g, _ := grid.New(8, 8, grid.Conn4)

	c := grid.Cell{Row: 2, Col: 3}
	if err := g.Set(c, grid.Obstacle); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	st, err := g.Get(c)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if st != grid.Obstacle {
		t.Errorf("Get(%v) = %v; want Obstacle", c, st)
	}

	// untouched cells stay Free
	st, _ = g.Get(grid.Cell{Row: 0, Col: 0})
	if st != grid.Free {
		t.Errorf("fresh cell state = %v; want Free", st)
	}

	oob := grid.Cell{Row: 8, Col: 0}
	if err = g.Set(oob, grid.Free); !errors.Is(err, grid.ErrInvalidCoordinate) {
		t.Errorf("Set out of bounds: error = %v; want ErrInvalidCoordinate", err)
	}
	if _, err = g.Get(oob); !errors.Is(err, grid.ErrInvalidCoordinate) {
		t.Errorf("Get out of bounds: error = %v; want ErrInvalidCoordinate", err)
	}
}

// TestSet_DuplicateRole verifies Start and Goal are single-assignment.
func TestSet_DuplicateRole(t *testing.T) {
	g, _ := grid.New(8, 8, grid.Conn4)

	if err := g.Set(grid.Cell{Row: 0, Col: 0}, grid.Start); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := g.Set(grid.Cell{Row: 1, Col: 1}, grid.Start); !errors.Is(err, grid.ErrDuplicateRole) {
		t.Errorf("second Start: error = %v; want ErrDuplicateRole", err)
	}

	if err := g.Set(grid.Cell{Row: 7, Col: 7}, grid.Goal); err != nil {
		t.Fatalf("first Goal: %v", err)
	}
	if err := g.Set(grid.Cell{Row: 6, Col: 6}, grid.Goal); !errors.Is(err, grid.ErrDuplicateRole) {
		t.Errorf("second Goal: error = %v; want ErrDuplicateRole", err)
	}

	start, ok := g.Start()
	if !ok || start != (grid.Cell{Row: 0, Col: 0}) {
		t.Errorf("Start() = %v,%v; want (0,0),true", start, ok)
	}
	goal, ok := g.Goal()
	if !ok || goal != (grid.Cell{Row: 7, Col: 7}) {
		t.Errorf("Goal() = %v,%v; want (7,7),true", goal, ok)
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed tie-break order on an interior cell.
func TestNeighbors_Order(t *testing.T) {
	c := grid.Cell{Row: 2, Col: 2}

	g4, _ := grid.New(5, 5, grid.Conn4)
	got4, err := g4.Neighbors(c)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}
	want4 := []grid.Cell{
		{Row: 1, Col: 2}, // up
		{Row: 2, Col: 3}, // right
		{Row: 3, Col: 2}, // down
		{Row: 2, Col: 1}, // left
	}
	if !reflect.DeepEqual(got4, want4) {
		t.Errorf("Conn4 neighbors = %v; want %v", got4, want4)
	}

	g8, _ := grid.New(5, 5, grid.Conn8)
	got8, err := g8.Neighbors(c)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}
	want8 := append(want4,
		grid.Cell{Row: 1, Col: 3}, // up-right
		grid.Cell{Row: 3, Col: 3}, // down-right
		grid.Cell{Row: 3, Col: 1}, // down-left
		grid.Cell{Row: 1, Col: 1}, // up-left
	)
	if !reflect.DeepEqual(got8, want8) {
		t.Errorf("Conn8 neighbors = %v; want %v", got8, want8)
	}
}

// TestNeighbors_Corner verifies out-of-bounds neighbors are dropped while
// the relative order of the remaining ones is preserved.
func TestNeighbors_Corner(t *testing.T) {
	g, _ := grid.New(4, 4, grid.Conn8)
	got, err := g.Neighbors(grid.Cell{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}
	want := []grid.Cell{
		{Row: 0, Col: 1}, // right
		{Row: 1, Col: 0}, // down
		{Row: 1, Col: 1}, // down-right
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("corner neighbors = %v; want %v", got, want)
	}
}

// TestNeighbors_Restartable verifies repeated enumeration yields the same
// sequence and independent slices.
func TestNeighbors_Restartable(t *testing.T) {
	g, _ := grid.New(6, 6, grid.Conn4)
	c := grid.Cell{Row: 3, Col: 3}

	first, _ := g.Neighbors(c)
	second, _ := g.Neighbors(c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Neighbors not stable: %v vs %v", first, second)
	}
	first[0] = grid.Cell{Row: -99, Col: -99}
	third, _ := g.Neighbors(c)
	if !reflect.DeepEqual(second, third) {
		t.Errorf("Neighbors shares backing storage across calls")
	}
}

// TestNeighbors_OutOfBounds verifies the origin cell itself is validated.
func TestNeighbors_OutOfBounds(t *testing.T) {
	g, _ := grid.New(4, 4, grid.Conn4)
	if _, err := g.Neighbors(grid.Cell{Row: 4, Col: 4}); !errors.Is(err, grid.ErrInvalidCoordinate) {
		t.Errorf("Neighbors out of bounds: error = %v; want ErrInvalidCoordinate", err)
	}
}

// TestOffsets_Order pins the canonical offset order both connectivities share.
func TestOffsets_Order(t *testing.T) {
	want4 := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	if got := grid.Offsets(grid.Conn4); !reflect.DeepEqual(got, want4) {
		t.Errorf("Offsets(Conn4) = %v; want %v", got, want4)
	}
	want8 := append(want4, [2]int{-1, 1}, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, -1})
	if got := grid.Offsets(grid.Conn8); !reflect.DeepEqual(got, want8) {
		t.Errorf("Offsets(Conn8) = %v; want %v", got, want8)
	}
}
