package tui

import (
	"strings"

	"github.com/san-kum/grapher/internal/plot"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas packs a pixel grid into braille characters, 2x4 pixels per cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas returns a canvas able to hold w x h pixels.
func NewCanvas(w, h int) *Canvas {
	cols, rows := (max(w, 1)+1)/2, (max(h, 1)+3)/4
	c := &Canvas{
		Width:  cols,
		Height: rows,
		Grid:   make([][]rune, rows),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

// Set raises the dot for pixel (x, y). Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Draw raises a dot for every pixel of fb that differs from bg.
func (c *Canvas) Draw(fb *plot.Framebuffer, bg plot.RGB) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.RGBAt(x, y) != bg {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
