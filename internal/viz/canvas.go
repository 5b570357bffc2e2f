package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	ch     rune
	fg, bg lipgloss.Color
}

// Canvas is a grid of terminal cells, each with its own foreground and
// background color. One viewport unit is one cell.
type Canvas struct {
	Width, Height int
	cells         [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: max(w, 0), Height: max(h, 0)}
	c.cells = make([][]cell, c.Height)
	for i := range c.cells {
		c.cells[i] = make([]cell, c.Width)
	}
	c.Clear()
	return c
}

func (c *Canvas) Viewport() Viewport {
	return Viewport{Width: float64(c.Width), Height: float64(c.Height)}
}

func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for j := range row {
			row[j] = cell{ch: ' '}
		}
	}
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// Set writes a glyph, keeping whatever background the cell already has.
func (c *Canvas) Set(x, y int, ch rune, fg lipgloss.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y][x].ch = ch
	c.cells[y][x].fg = fg
}

// Shade paints a cell's background and blanks its glyph.
func (c *Canvas) Shade(x, y int, bg lipgloss.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y][x] = cell{ch: ' ', bg: bg}
}

// At returns the glyph and colors of a cell.
func (c *Canvas) At(x, y int) (ch rune, fg, bg lipgloss.Color) {
	if !c.in(x, y) {
		return 0, "", ""
	}
	cl := c.cells[y][x]
	return cl.ch, cl.fg, cl.bg
}

func (c *Canvas) FillRect(x, y, w, h int, bg lipgloss.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Shade(col, row, bg)
		}
	}
}

// DrawLine plots a Bresenham line.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ch rune, fg lipgloss.Color) {
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
		c.Set(x0, y0, ch, fg)
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

// FillCircle shades a disc. Cells are about twice as tall as wide, so the
// horizontal radius is doubled.
func (c *Canvas) FillCircle(cx, cy, r int, bg lipgloss.Color) {
	if r < 1 {
		c.Shade(cx, cy, bg)
		c.Shade(cx-1, cy, bg)
		c.Shade(cx+1, cy, bg)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -2 * r; dx <= 2*r; dx++ {
			fx := float64(dx) / 2
			if fx*fx+float64(dy*dy) <= float64(r*r)+0.5 {
				c.Shade(cx+dx, cy+dy, bg)
			}
		}
	}
}

// Text writes s centered on (cx, y).
func (c *Canvas) Text(cx, y int, s string, fg lipgloss.Color) {
	x := cx - runewidth.StringWidth(s)/2
	for _, r := range s {
		c.Set(x, y, r, fg)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// Paint rasterizes drawing commands in order.
func (c *Canvas) Paint(cmds []DrawCmd) {
	for _, d := range cmds {
		switch d.Op {
		case OpRect:
			x0 := int(math.Round(d.X))
			y0 := int(math.Round(d.Y))
			x1 := int(math.Floor(d.X + d.W))
			y1 := int(math.Round(d.Y + d.H))
			if x1 <= x0 {
				x1 = x0 + 1
			}
			c.FillRect(x0, y0, x1-x0, y1-y0, d.Fill)
		case OpLine:
			c.DrawLine(round(d.X), round(d.Y), round(d.X2), round(d.Y2), '·', d.Fill)
		case OpCircle:
			c.FillCircle(round(d.X), round(d.Y), int(d.R/2), d.Fill)
		case OpText:
			c.Text(round(d.X), int(d.Y), d.Text, d.Fill)
		}
	}
}

// Plain returns the glyphs without any styling.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.cells {
		for _, cl := range row {
			b.WriteRune(cl.ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with colors, one style per run of equal cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, cl := range row[start:i] {
				run = append(run, cl.ch)
			}
			b.WriteString(cellStyle(row[start]).Render(string(run)))
			start = i
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellStyle(cl cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if cl.fg != "" {
		s = s.Foreground(cl.fg)
	}
	if cl.bg != "" {
		s = s.Background(cl.bg)
	}
	return s
}

func round(f float64) int { return int(math.Round(f)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
