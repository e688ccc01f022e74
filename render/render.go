// Package render provides text presenters for grids, distance maps, and
// reconstructed paths.
package render

import (
	"fmt"
	"strings"

	"github.com/borismassesa/grassfire/backtrack"
	"github.com/borismassesa/grassfire/grid"
	"github.com/borismassesa/grassfire/wavefront"
)

// Cell glyphs used by GridString and PathString.
const (
	glyphFree     = '.'
	glyphObstacle = '#'
	glyphStart    = 'S'
	glyphGoal     = 'G'
	glyphPath     = '*'
)

// GridString renders g as a rows×cols character matrix, one row per line,
// glyphs separated by single spaces.
func GridString(g *grid.Grid) string {
	return gridString(g, nil)
}

// PathString renders g with p overlaid: intermediate path cells print as
// '*' while start and goal keep their own glyphs.
func PathString(g *grid.Grid, p backtrack.Path) string {
	onPath := make(map[grid.Cell]struct{}, len(p))
	for _, c := range p {
		onPath[c] = struct{}{}
	}

	return gridString(g, onPath)
}

func gridString(g *grid.Grid, onPath map[grid.Cell]struct{}) string {
	var b strings.Builder
	b.Grow(g.Rows() * (2 * g.Cols()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(glyph(g, grid.Cell{Row: r, Col: c}, onPath))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func glyph(g *grid.Grid, c grid.Cell, onPath map[grid.Cell]struct{}) rune {
	state, _ := g.Get(c) // c is generated in-bounds
	switch state {
	case grid.Obstacle:
		return glyphObstacle
	case grid.Start:
		return glyphStart
	case grid.Goal:
		return glyphGoal
	}
	if _, ok := onPath[c]; ok {
		return glyphPath
	}

	return glyphFree
}

// DistanceString renders dm as a matrix of right-aligned labels, with '·'
// in place of Unreachable cells.
func DistanceString(dm *wavefront.DistanceMap) string {
	width := 1
	for r := 0; r < dm.Rows(); r++ {
		for c := 0; c < dm.Cols(); c++ {
			if d := dm.At(grid.Cell{Row: r, Col: c}); d != wavefront.Unreachable {
				if w := len(fmt.Sprint(d)); w > width {
					width = w
				}
			}
		}
	}

	var b strings.Builder
	for r := 0; r < dm.Rows(); r++ {
		for c := 0; c < dm.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if d := dm.At(grid.Cell{Row: r, Col: c}); d == wavefront.Unreachable {
				fmt.Fprintf(&b, "%*s", width, "·")
			} else {
				fmt.Fprintf(&b, "%*d", width, d)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
