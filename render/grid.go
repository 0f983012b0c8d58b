package render

import (
	"strings"

	"github.com/iw2rmb/lined/internal/grapheme"
)

// Grid is an in-memory cell grid. The zero value is an empty 0x0 grid.
type Grid struct {
	width, height int
	cells         [][]string

	x, y int

	writes  int
	flushes int
}

func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid, blanking every cell.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
	g.cells = make([][]string, height)
	for y := range g.cells {
		row := make([]string, width)
		for x := range row {
			row[x] = " "
		}
		g.cells[y] = row
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) MoveTo(x, y int) error {
	g.x, g.y = x, y
	return nil
}

func (g *Grid) WriteString(s string) error {
	for _, c := range grapheme.Split(s) {
		if g.inside(g.x, g.y) {
			g.cells[g.y][g.x] = c
		}
		g.writes++
		g.x++
	}
	return nil
}

func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// Cursor returns the current write position.
func (g *Grid) Cursor() (x, y int) { return g.x, g.y }

// Cell returns the cell at (x, y), or "" outside the grid.
func (g *Grid) Cell(x, y int) string {
	if !g.inside(x, y) {
		return ""
	}
	return g.cells[y][x]
}

// Row returns a copy of screen row y.
func (g *Grid) Row(y int) []string {
	if y < 0 || y >= g.height {
		return nil
	}
	return append([]string(nil), g.cells[y]...)
}

// Line returns screen row y as a string.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	return strings.Join(g.cells[y], "")
}

// Lines returns every screen row.
func (g *Grid) Lines() []string {
	out := make([]string, g.height)
	for y := range out {
		out[y] = g.Line(y)
	}
	return out
}

// Writes counts cells written since the last ResetStats.
func (g *Grid) Writes() int { return g.writes }

// Flushes counts Flush calls since the last ResetStats.
func (g *Grid) Flushes() int { return g.flushes }

func (g *Grid) ResetStats() {
	g.writes = 0
	g.flushes = 0
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}
