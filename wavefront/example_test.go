// File: wavefront/example_test.go
package wavefront_test

import (
	"fmt"

	"github.com/borismassesa/grassfire/grid"
	"github.com/borismassesa/grassfire/wavefront"
)

// ExamplePropagate demonstrates grassfire labeling around an obstacle wall.
// Scenario:
//
//   - 3x4 grid, Conn4, obstacles at (0,2) and (1,2).
//   - The wave from (0,0) must detour through row 2 to reach column 3.
//   - Unreachable cells (the obstacles) print as "·".
func ExamplePropagate() {
	g, _ := grid.New(3, 4, grid.Conn4)
	_ = g.Set(grid.Cell{Row: 0, Col: 2}, grid.Obstacle)
	_ = g.Set(grid.Cell{Row: 1, Col: 2}, grid.Obstacle)

	dm, _ := wavefront.Propagate(g, grid.Cell{Row: 0, Col: 0})

	for r := 0; r < dm.Rows(); r++ {
		for c := 0; c < dm.Cols(); c++ {
			if c > 0 {
				fmt.Print(" ")
			}
			if d := dm.At(grid.Cell{Row: r, Col: c}); d == wavefront.Unreachable {
				fmt.Print("·")
			} else {
				fmt.Print(d)
			}
		}
		fmt.Println()
	}

	// Output:
	// 0 1 · 7
	// 1 2 · 6
	// 2 3 4 5
}

// ExamplePropagate_hooks demonstrates observing the sweep ring by ring.
func ExamplePropagate_hooks() {
	g, _ := grid.New(3, 3, grid.Conn4)

	perRing := map[int]int{}
	_, _ = wavefront.Propagate(g, grid.Cell{Row: 1, Col: 1},
		wavefront.WithOnLabel(func(_ grid.Cell, dist int) { perRing[dist]++ }),
	)

	for d := 0; d <= 2; d++ {
		fmt.Printf("ring %d: %d cells\n", d, perRing[d])
	}

	// Output:
	// ring 0: 1 cells
	// ring 1: 4 cells
	// ring 2: 4 cells
}
