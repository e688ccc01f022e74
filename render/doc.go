// Package render turns grids, distance maps, and paths into plain-text
// matrices for terminal display.
//
// Glyphs: '.' free, '#' obstacle, 'S' start, 'G' goal, '*' path cell.
// Distance matrices print right-aligned labels with '·' for Unreachable.
//
// Rendering is presentation only: nothing here mutates its inputs or
// affects the algorithms.
package render
