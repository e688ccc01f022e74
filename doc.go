// Package grassfire is a small toolkit for shortest-path finding on 2D
// obstacle grids using wavefront (grassfire) distance labeling.
//
// 🔥 What is grassfire?
//
//	A breadth-first flood fill that labels every reachable cell with its
//	step distance from a start cell, like a fire spreading outward one
//	ring at a time. Backtracking down the labels then recovers one — or
//	every — shortest path to a goal.
//
// The module is organized as flat, single-concern packages:
//
//	grid/      — cells, states, connectivity, and the fixed neighbor order
//	wavefront/ — Propagate: grid → DistanceMap (the labeling sweep)
//	backtrack/ — Reconstruct: DistanceMap → shortest path(s)
//	builder/   — randomized, validated scenarios (obstacles, start, goal)
//	render/    — text matrices for terminals
//	viewer/    — Ebiten window presenter
//	api/       — gin HTTP endpoint wrapping the whole pipeline
//	config/    — environment configuration for the server binary
//
// Quick ASCII example (a 4x12 slice of a solved grid):
//
//	S * . . # . . . . . . .
//	. * * . . . # . . # . .
//	. . * * * * * . # . . .
//	. # . . . # * * * * G .
//
// The core (grid, wavefront, backtrack) is pure and synchronous: no
// goroutines, no locks, no I/O. Presenters consume its results and never
// reach back in.
//
//	go get github.com/borismassesa/grassfire
package grassfire
