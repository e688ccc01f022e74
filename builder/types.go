// Package builder defines scenario types, tunable options, and sentinel
// errors for random grid generation.
package builder

import (
	"errors"

	"github.com/borismassesa/grassfire/grid"
)

// Minimum grid dimensions a scenario may use.
const (
	MinRows = 8
	MinCols = 8
)

// Obstacle fraction bounds and default.
const (
	MinObstaclePercent     = 0.10
	MaxObstaclePercent     = 0.20
	DefaultObstaclePercent = 0.15
)

// Sentinel errors for Build.
var (
	// ErrGridTooSmall indicates dimensions below MinRows×MinCols.
	ErrGridTooSmall = errors.New("builder: grid must be at least 8x8")
	// ErrObstaclePercent indicates an obstacle fraction outside [0.10, 0.20].
	ErrObstaclePercent = errors.New("builder: obstacle percent outside [0.10, 0.20]")
)

// Scenario is a fully populated pathfinding setup, ready for the wavefront.
type Scenario struct {
	Grid  *grid.Grid
	Start grid.Cell
	Goal  grid.Cell
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed drives the RNG. Seeded indicates an explicit WithSeed call;
	// otherwise Build falls back to a time-derived seed.
	Seed   int64
	Seeded bool

	// ObstaclePercent is the obstacle fraction of the total cell count.
	ObstaclePercent float64

	// Conn selects the grid connectivity.
	Conn grid.Connectivity
}

// DefaultOptions returns Options with a 15% obstacle fraction, Conn4
// connectivity, and an unseeded (time-derived) RNG.
func DefaultOptions() Options {
	return Options{
		ObstaclePercent: DefaultObstaclePercent,
		Conn:            grid.Conn4,
	}
}

// WithSeed freezes the RNG so repeated Build calls reproduce the exact
// same scenario.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithObstaclePercent sets the obstacle fraction. Values outside
// [0.10, 0.20] are rejected by Build with ErrObstaclePercent.
func WithObstaclePercent(p float64) Option {
	return func(o *Options) { o.ObstaclePercent = p }
}

// WithConnectivity selects Conn4 or Conn8 for the generated grid.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
