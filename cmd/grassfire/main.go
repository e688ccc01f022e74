// Command grassfire generates a random obstacle grid, runs the wavefront,
// and prints (or displays) the shortest path from start to goal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/borismassesa/grassfire/backtrack"
	"github.com/borismassesa/grassfire/builder"
	"github.com/borismassesa/grassfire/grid"
	"github.com/borismassesa/grassfire/render"
	"github.com/borismassesa/grassfire/viewer"
	"github.com/borismassesa/grassfire/wavefront"
)

func main() {
	var (
		rows     = flag.Int("rows", 12, "grid rows (minimum 8)")
		cols     = flag.Int("cols", 12, "grid columns (minimum 8)")
		percent  = flag.Float64("percent", 0.15, "obstacle fraction in [0.10, 0.20]")
		seed     = flag.Int64("seed", 0, "RNG seed; 0 means time-derived")
		connFlag = flag.Int("conn", 4, "connectivity: 4 or 8")
		all      = flag.Bool("all", false, "collect every shortest path, not just the first")
		maxPaths = flag.Int("max-paths", 1000, "cap on collected paths in -all mode; 0 = unlimited")
		gui      = flag.Bool("gui", false, "open a window instead of printing text")
	)
	flag.Parse()

	conn := grid.Conn4
	switch *connFlag {
	case 4:
	case 8:
		conn = grid.Conn8
	default:
		log.Fatalf("[APP] [FATAL] -conn must be 4 or 8, got %d", *connFlag)
	}

	buildOpts := []builder.Option{
		builder.WithObstaclePercent(*percent),
		builder.WithConnectivity(conn),
	}
	if *seed != 0 {
		buildOpts = append(buildOpts, builder.WithSeed(*seed))
	}
	scenario, err := builder.Build(*rows, *cols, buildOpts...)
	if err != nil {
		log.Fatalf("[APP] [FATAL] build scenario: %v", err)
	}

	started := time.Now()
	dm, err := wavefront.Propagate(scenario.Grid, scenario.Start)
	if err != nil {
		log.Fatalf("[APP] [FATAL] propagate: %v", err)
	}

	opts := []backtrack.Option{backtrack.WithMaxPaths(*maxPaths)}
	if *all {
		opts = append(opts, backtrack.WithAllPaths())
	}
	paths, err := backtrack.Reconstruct(dm, scenario.Start, scenario.Goal, conn, opts...)
	elapsed := time.Since(started)

	if err != nil {
		if errors.Is(err, backtrack.ErrNoPath) {
			fmt.Println(render.GridString(scenario.Grid))
			fmt.Println("no path found: the goal is sealed off by obstacles")
			os.Exit(0)
		}
		log.Fatalf("[APP] [FATAL] reconstruct: %v", err)
	}

	if *gui {
		if err = viewer.Run(scenario.Grid, paths[0], "grassfire"); err != nil {
			log.Fatalf("[APP] [FATAL] viewer: %v", err)
		}
		return
	}

	fmt.Println("distance field:")
	fmt.Println(render.DistanceString(dm))
	fmt.Printf("shortest path (%d steps, solved in %s):\n", dm.At(scenario.Goal), elapsed)
	fmt.Println(render.PathString(scenario.Grid, paths[0]))
	if *all {
		fmt.Printf("distinct shortest paths: %d\n", len(paths))
	}
}
