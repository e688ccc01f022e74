// Package viewer opens an Ebiten window showing a solved scenario: white
// free cells, black obstacles, a green start ("START"), a red goal ("END"),
// orange path cells, and blue gridlines.
//
// The viewer is a pure presenter — it renders a finished grid and path and
// never calls back into the algorithms. Run blocks until the window closes.
package viewer
