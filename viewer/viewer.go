// Package viewer renders a solved grid scenario in an Ebiten window.
package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/borismassesa/grassfire/grid"
)

// cellSize is the logical pixel size of one grid cell.
const cellSize = 48

// Palette mirrors the classic grassfire visualization.
var (
	colorFree     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorObstacle = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorStart    = color.RGBA{R: 0x2e, G: 0x8b, B: 0x2e, A: 0xff}
	colorGoal     = color.RGBA{R: 0xc0, G: 0x2a, B: 0x2a, A: 0xff}
	colorPath     = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	colorGridline = color.RGBA{R: 0x3a, G: 0x5f, B: 0xcd, A: 0xff}
)

// game is the static scene: the scenario never changes after Run starts.
type game struct {
	grid   *grid.Grid
	onPath map[grid.Cell]struct{}
	width  int
	height int
}

// Run opens a window displaying g with path overlaid and blocks until the
// user closes it. path may be nil (no-path scenarios render without an
// overlay). Must be called from the main goroutine.
func Run(g *grid.Grid, path []grid.Cell, title string) error {
	onPath := make(map[grid.Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	gm := &game{
		grid:   g,
		onPath: onPath,
		width:  g.Cols() * cellSize,
		height: g.Rows() * cellSize,
	}

	ebiten.SetWindowSize(gm.width, gm.height)
	ebiten.SetWindowTitle(title)

	return ebiten.RunGame(gm)
}

// Update is a no-op: the scene is static.
func (g *game) Update() error { return nil }

// Draw paints every cell, then the gridlines, then the start/goal labels.
func (g *game) Draw(screen *ebiten.Image) {
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			vector.DrawFilledRect(screen,
				float32(c*cellSize), float32(r*cellSize),
				cellSize, cellSize,
				g.cellColor(cell), false)
		}
	}

	for c := 0; c <= g.grid.Cols(); c++ {
		x := float32(c * cellSize)
		vector.StrokeLine(screen, x, 0, x, float32(g.height), 1, colorGridline, false)
	}
	for r := 0; r <= g.grid.Rows(); r++ {
		y := float32(r * cellSize)
		vector.StrokeLine(screen, 0, y, float32(g.width), y, 1, colorGridline, false)
	}

	if start, ok := g.grid.Start(); ok {
		g.label(screen, start, "START")
	}
	if goal, ok := g.grid.Goal(); ok {
		g.label(screen, goal, "END")
	}
}

// Layout reports the fixed logical screen size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *game) cellColor(c grid.Cell) color.Color {
	state, _ := g.grid.Get(c)
	switch state {
	case grid.Obstacle:
		return colorObstacle
	case grid.Start:
		return colorStart
	case grid.Goal:
		return colorGoal
	}
	if _, ok := g.onPath[c]; ok {
		return colorPath
	}

	return colorFree
}

func (g *game) label(screen *ebiten.Image, c grid.Cell, text string) {
	x := c.Col*cellSize + cellSize/2 - 3*len(text)
	y := c.Row*cellSize + cellSize/2 - 6
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
