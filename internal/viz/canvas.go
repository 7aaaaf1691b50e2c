package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
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

const (
	brailleBase = 0x2800
	noBucket    = -1
)

// Canvas is a Braille dot grid. Each cell remembers the highest palette
// bucket drawn through it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Buckets       [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		Buckets: make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Buckets[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// Set sets a dot at (x, y) in sub-pixel coordinates. The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y, bucket int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if bucket > c.Buckets[row][col] {
		c.Buckets[row][col] = bucket
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.Buckets[i][j] = noBucket
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1, bucket int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, bucket)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
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

// Colorize renders the canvas with each cell in the colour of its bucket.
func (c *Canvas) Colorize(palette []string) string {
	styles := make([]lipgloss.Style, len(palette))
	for i, p := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(p))
	}

	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			bucket := c.Buckets[i][j]
			if bucket < 0 || bucket >= len(styles) {
				b.WriteRune(r)
				continue
			}
			b.WriteString(styles[bucket].Render(string(r)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
