package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// BorderStyle selects the frame drawn by a Block.
type BorderStyle int

const (
	BorderPlain BorderStyle = iota
	BorderPlainSegmented
	BorderPlainSidesOnly
	BorderRounded
	BorderRoundedSegmented
	BorderRoundedSidesOnly
	BorderDouble
	BorderDoubleSegmented
	BorderDoubleSidesOnly
	BorderThick
	BorderThickSegmented
	BorderThickSidesOnly
)

// BorderSet holds the glyphs of a frame.
type BorderSet struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Vertical    rune
	Horizontal  rune
	Segmented   bool
	SidesOnly   bool
}

var borderNames = map[BorderStyle]string{
	BorderPlain:            "Plain",
	BorderPlainSegmented:   "Plain (Segmented)",
	BorderPlainSidesOnly:   "Plain (Sides Only)",
	BorderRounded:          "Rounded",
	BorderRoundedSegmented: "Rounded (Segmented)",
	BorderRoundedSidesOnly: "Rounded (Sides Only)",
	BorderDouble:           "Double",
	BorderDoubleSegmented:  "Double (Segmented)",
	BorderDoubleSidesOnly:  "Double (Sides Only)",
	BorderThick:            "Thick",
	BorderThickSegmented:   "Thick (Segmented)",
	BorderThickSidesOnly:   "Thick (Sides Only)",
}

var borderDescriptions = map[BorderStyle]string{
	BorderPlain:            "Basic straight lines",
	BorderRounded:          "Smooth rounded corners",
	BorderDouble:           "Elegant double lines",
	BorderThick:            "Bold thick borders",
	BorderPlainSegmented:   "Dashed lines with gaps",
	BorderRoundedSegmented: "Rounded with gaps",
	BorderDoubleSegmented:  "Double lines with gaps",
	BorderThickSegmented:   "Thick with gaps",
	BorderPlainSidesOnly:   "Left and right borders only",
	BorderRoundedSidesOnly: "Rounded sides only",
	BorderDoubleSidesOnly:  "Double sides only",
	BorderThickSidesOnly:   "Thick sides only",
}

// Set returns the glyphs for the style.
func (b BorderStyle) Set() BorderSet {
	var set BorderSet

	switch b {
	case BorderRounded, BorderRoundedSegmented, BorderRoundedSidesOnly:
		set = BorderSet{'╭', '╮', '╰', '╯', '│', '─', false, false}
	case BorderDouble, BorderDoubleSegmented, BorderDoubleSidesOnly:
		set = BorderSet{'╔', '╗', '╚', '╝', '║', '═', false, false}
	case BorderThick, BorderThickSegmented, BorderThickSidesOnly:
		set = BorderSet{'┏', '┓', '┗', '┛', '┃', '━', false, false}
	default:
		set = BorderSet{'┌', '┐', '└', '┘', '│', '─', false, false}
	}

	set.Segmented = b.IsSegmented()
	set.SidesOnly = b.IsSidesOnly()

	return set
}

func (b BorderStyle) Name() string        { return borderNames[b] }
func (b BorderStyle) Description() string { return borderDescriptions[b] }
func (b BorderStyle) String() string      { return b.Name() }

func (b BorderStyle) IsSegmented() bool {
	switch b {
	case BorderPlainSegmented, BorderRoundedSegmented, BorderDoubleSegmented, BorderThickSegmented:
		return true
	}

	return false
}

func (b BorderStyle) IsSidesOnly() bool {
	switch b {
	case BorderPlainSidesOnly, BorderRoundedSidesOnly, BorderDoubleSidesOnly, BorderThickSidesOnly:
		return true
	}

	return false
}

// AllBorderStyles lists every border style, grouped by family.
func AllBorderStyles() []BorderStyle {
	return []BorderStyle{
		BorderPlain, BorderPlainSegmented, BorderPlainSidesOnly,
		BorderRounded, BorderRoundedSegmented, BorderRoundedSidesOnly,
		BorderDouble, BorderDoubleSegmented, BorderDoubleSidesOnly,
		BorderThick, BorderThickSegmented, BorderThickSidesOnly,
	}
}

// SegmentedLine repeats r for length cells, leaving every third cell blank.
func SegmentedLine(length int, r rune) string {
	var b strings.Builder

	for i := range length {
		if i%3 == 2 {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// TitleAlignment places a title along its edge.
type TitleAlignment int

const (
	TitleAlignCenter TitleAlignment = iota
	TitleAlignLeft
	TitleAlignRight
)

// TitlePosition selects the edge a title is drawn on.
type TitlePosition int

const (
	TitleTop TitlePosition = iota
	TitleBottom
)

// Title is text drawn on a block edge.
type Title struct {
	Text      string
	Alignment TitleAlignment
	Position  TitlePosition
}

func TitleLeft(text string) Title   { return Title{Text: text, Alignment: TitleAlignLeft} }
func TitleCenter(text string) Title { return Title{Text: text, Alignment: TitleAlignCenter} }
func TitleRight(text string) Title  { return Title{Text: text, Alignment: TitleAlignRight} }

// TitleRightWithSpacing pads a right title so it does not collide with a
// right-aligned value on the same row.
func TitleRightWithSpacing(text string) Title {
	return TitleRight(text + "     ")
}

// Block is a frame with optional titles around a widget.
type Block struct {
	Border      BorderStyle
	BorderColor lipgloss.TerminalColor
	Titles      []Title
}

// NewBlock returns a block with the given border.
func NewBlock(border BorderStyle) *Block {
	return &Block{Border: border}
}

// Title adds a title and returns the block.
func (b *Block) Title(t Title) *Block {
	b.Titles = append(b.Titles, t)
	return b
}

// Color sets the border color and returns the block.
func (b *Block) Color(c lipgloss.TerminalColor) *Block {
	b.BorderColor = c
	return b
}

func (b *Block) hasTitle(pos TitlePosition) bool {
	for _, t := range b.Titles {
		if t.Position == pos {
			return true
		}
	}

	return false
}

// Inner returns the area left for content inside the frame.
func (b *Block) Inner(area Rect) Rect {
	inner := area
	if b.Border.IsSidesOnly() {
		inner.X++
		inner.Width -= 2

		if b.hasTitle(TitleTop) {
			inner.Y++
			inner.Height--
		}

		if b.hasTitle(TitleBottom) {
			inner.Height--
		}
	} else {
		inner = area.Inner(1)
	}

	if inner.Width < 0 {
		inner.Width = 0
	}

	if inner.Height < 0 {
		inner.Height = 0
	}

	return inner
}

// Render draws the frame and titles onto c and returns the inner area.
func (b *Block) Render(area Rect, c *Canvas) Rect {
	if area.IsEmpty() {
		return Rect{X: area.X, Y: area.Y}
	}

	set := b.Border.Set()
	left, right := area.X, area.Right()-1
	top, bottom := area.Y, area.Bottom()-1

	if set.SidesOnly {
		for y := top; y <= bottom; y++ {
			c.SetString(left, y, string(set.Vertical), b.BorderColor)
			c.SetString(right, y, string(set.Vertical), b.BorderColor)
		}
	} else {
		span := area.Width - 2
		horizontal := strings.Repeat(string(set.Horizontal), max(span, 0))
		if set.Segmented {
			horizontal = SegmentedLine(span, set.Horizontal)
		}

		c.SetString(left, top, string(set.TopLeft)+horizontal+string(set.TopRight), b.BorderColor)

		for y := top + 1; y < bottom; y++ {
			c.SetString(left, y, string(set.Vertical), b.BorderColor)
			c.SetString(right, y, string(set.Vertical), b.BorderColor)
		}

		if bottom > top {
			c.SetString(left, bottom, string(set.BottomLeft)+horizontal+string(set.BottomRight), b.BorderColor)
		}
	}

	for _, t := range b.Titles {
		row := top
		if t.Position == TitleBottom {
			row = bottom
		}

		text := runewidth.Truncate(t.Text, max(area.Width-2, 0), "")
		w := StringWidth(text)

		var x int

		switch t.Alignment {
		case TitleAlignLeft:
			x = left + 1
		case TitleAlignRight:
			x = right - w
		default:
			x = area.X + (area.Width-w)/2
		}

		if x < left+1 {
			x = left + 1
		}

		c.SetString(x, row, text, nil)
	}

	return b.Inner(area)
}
