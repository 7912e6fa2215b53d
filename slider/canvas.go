package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rect is a rectangular area of a canvas, in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks the rect by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	inner := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}

	if inner.Width < 0 {
		inner.Width = 0
	}

	if inner.Height < 0 {
		inner.Height = 0
	}

	return inner
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Cell is one terminal column of a canvas row. A wide glyph occupies its
// first cell; the cells it covers hold an empty Symbol.
type Cell struct {
	Symbol string
	Fg     lipgloss.TerminalColor
}

// Canvas is a fixed-size grid of cells that widgets draw into.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas returns a canvas filled with blanks.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}

	if height < 0 {
		height = 0
	}

	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = Cell{Symbol: " "}
	}

	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Area returns the rect covering the whole canvas.
func (c *Canvas) Area() Rect {
	return Rect{Width: c.width, Height: c.height}
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Cell returns the cell at (x, y), or a blank when out of range.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.contains(x, y) {
		return Cell{Symbol: " "}
	}

	return c.cells[y*c.width+x]
}

// SetString writes s starting at (x, y) and returns the column after the last
// glyph written. Glyphs that do not fit before the right edge are dropped.
func (c *Canvas) SetString(x, y int, s string, fg lipgloss.TerminalColor) int {
	if y < 0 || y >= c.height {
		return x
	}

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}

		if x+w > c.width {
			break
		}

		if x >= 0 {
			c.cells[y*c.width+x] = Cell{Symbol: string(r), Fg: fg}
			for i := 1; i < w; i++ {
				c.cells[y*c.width+x+i] = Cell{}
			}
		}

		x += w
	}

	return x
}

// PlainString returns the canvas text without styling, rows joined by newlines.
func (c *Canvas) PlainString() string {
	rows := make([]string, c.height)

	for y := range c.height {
		var b strings.Builder
		for x := range c.width {
			b.WriteString(c.cells[y*c.width+x].Symbol)
		}

		rows[y] = b.String()
	}

	return strings.Join(rows, "\n")
}

// String renders the canvas with lipgloss, one style run per color change.
func (c *Canvas) String() string {
	rows := make([]string, c.height)

	for y := range c.height {
		var (
			b   strings.Builder
			run strings.Builder
			fg  lipgloss.TerminalColor
		)

		flush := func() {
			if run.Len() == 0 {
				return
			}

			if fg == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(run.String()))
			}

			run.Reset()
		}

		for x := range c.width {
			cell := c.cells[y*c.width+x]
			if cell.Symbol == "" {
				continue
			}

			if cell.Fg != fg {
				flush()
				fg = cell.Fg
			}

			run.WriteString(cell.Symbol)
		}

		flush()

		rows[y] = b.String()
	}

	return strings.Join(rows, "\n")
}

// StringWidth is the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
