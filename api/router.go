// Package api exposes the solver over HTTP: one endpoint that generates a
// random scenario, runs the wavefront, reconstructs paths, and returns the
// lot as JSON for a frontend to draw.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/borismassesa/grassfire/backtrack"
	"github.com/borismassesa/grassfire/builder"
	"github.com/borismassesa/grassfire/grid"
	"github.com/borismassesa/grassfire/render"
	"github.com/borismassesa/grassfire/wavefront"
)

// Defaults supplies the parameter values used when a request omits them.
type Defaults struct {
	Rows     int
	Cols     int
	Percent  float64
	MaxPaths int
}

// NewRouter builds the gin engine with CORS and the v1 routes mounted.
func NewRouter(d Defaults) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	v1 := r.Group("/api/v1")
	v1.GET("/solve", solveHandler(d))

	return r
}

// corsMiddleware allows browser frontends on other origins to call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// solveHandler generates a scenario from the query parameters, solves it,
// and answers with a SolveResponse. A sealed goal is a 200 with
// found=false; only malformed parameters produce a 400.
func solveHandler(d Defaults) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		rows, ok := intQuery(c, "rows", d.Rows)
		if !ok {
			return
		}
		cols, ok := intQuery(c, "cols", d.Cols)
		if !ok {
			return
		}
		maxPaths, ok := intQuery(c, "maxPaths", d.MaxPaths)
		if !ok {
			return
		}
		if maxPaths < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "maxPaths must not be negative"})
			return
		}
		percent, ok := floatQuery(c, "percent", d.Percent)
		if !ok {
			return
		}
		seed, ok := int64Query(c, "seed", time.Now().UnixNano())
		if !ok {
			return
		}

		conn := grid.Conn4
		switch c.DefaultQuery("conn", "4") {
		case "4":
		case "8":
			conn = grid.Conn8
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "conn must be 4 or 8"})
			return
		}
		allPaths := c.DefaultQuery("all", "false") == "true"

		scenario, err := builder.Build(rows, cols,
			builder.WithSeed(seed),
			builder.WithObstaclePercent(percent),
			builder.WithConnectivity(conn),
		)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dm, err := wavefront.Propagate(scenario.Grid, scenario.Start)
		if err != nil {
			log.Printf("[API] [ERROR] propagate: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		opts := []backtrack.Option{backtrack.WithMaxPaths(maxPaths)}
		if allPaths {
			opts = append(opts, backtrack.WithAllPaths())
		}
		paths, err := backtrack.Reconstruct(dm, scenario.Start, scenario.Goal, conn, opts...)
		found := true
		if err != nil {
			if !errors.Is(err, backtrack.ErrNoPath) {
				log.Printf("[API] [ERROR] reconstruct: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return
			}
			found = false
		}

		resp := SolveResponse{
			RequestID:    uuid.NewString(),
			Rows:         rows,
			Cols:         cols,
			Connectivity: 4 + 4*int(conn),
			Seed:         seed,
			Start:        CellDTO{Row: scenario.Start.Row, Col: scenario.Start.Col},
			Goal:         CellDTO{Row: scenario.Goal.Row, Col: scenario.Goal.Col},
			Found:        found,
			GoalDistance: dm.At(scenario.Goal),
			Paths:        toPathDTOs(paths),
			GridText:     render.GridString(scenario.Grid),
			TimeTakenMs:  float64(time.Since(started).Microseconds()) / 1000.0,
		}
		c.JSON(http.StatusOK, resp)
	}
}

func toPathDTOs(paths []backtrack.Path) [][]CellDTO {
	out := make([][]CellDTO, 0, len(paths))
	for _, p := range paths {
		cells := make([]CellDTO, len(p))
		for i, cell := range p {
			cells[i] = CellDTO{Row: cell.Row, Col: cell.Col}
		}
		out = append(out, cells)
	}

	return out
}

func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": key + " must be an integer"})
		return 0, false
	}

	return v, true
}

func int64Query(c *gin.Context, key string, fallback int64) (int64, bool) {
	s := c.Query(key)
	if s == "" {
		return fallback, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": key + " must be an integer"})
		return 0, false
	}

	return v, true
}

func floatQuery(c *gin.Context, key string, fallback float64) (float64, bool) {
	s := c.Query(key)
	if s == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": key + " must be a number"})
		return 0, false
	}

	return v, true
}
