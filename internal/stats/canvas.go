package stats

import "math"

// dotBits maps a dot position inside a braille cell (row, column) to its bit.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a grid of braille cells. Dot coordinates are two per cell
// horizontally and four per cell vertically, origin top-left.
type canvas struct {
	cols  int
	rows  int
	cells []uint8
}

func newCanvas(cols, rows int) *canvas {
	return &canvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

func (c *canvas) dotWidth() int  { return c.cols * 2 }
func (c *canvas) dotHeight() int { return c.rows * 4 }

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= dotBits[y%4][x%2]
}

// line draws from (x0,y0) to (x1,y1), skipping dots whose x fails keep.
func (c *canvas) line(x0, y0, x1, y1 int, keep func(x int) bool) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		if keep(x0) {
			c.set(x0, y0)
		}
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(dx)))
		y := y0 + int(math.Round(t*float64(dy)))
		if keep(x) {
			c.set(x, y)
		}
	}
}

func (c *canvas) at(col, row int) uint8 {
	return c.cells[row*c.cols+col]
}

func brailleRune(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
