package slider

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Slider is a value indicator drawn with configurable glyphs. The builder
// methods return a modified copy so sliders can be declared inline.
type Slider struct {
	block       *Block
	orientation Orientation
	value       float64
	min         float64
	max         float64
	label       string

	showValue      bool
	valueAlignment Alignment
	barAlignment   HorizontalBarAlignment
	barAligned     bool

	filledSymbol string
	emptySymbol  string
	handleSymbol string
	filledColor  lipgloss.TerminalColor
	emptyColor   lipgloss.TerminalColor
	handleColor  lipgloss.TerminalColor
	showHandle   bool
	segmented    bool

	verticalLabelPosition  VerticalLabelPosition
	verticalValuePosition  VerticalValuePosition
	verticalValueAlignment VerticalValueAlignment
}

// New creates a horizontal slider with the value clamped into [min, max].
func New(value, min, max float64) Slider {
	return Slider{
		orientation:            Horizontal,
		value:                  clamp(value, min, max),
		min:                    min,
		max:                    max,
		valueAlignment:         AlignRight,
		barAlignment:           BarCenter,
		filledSymbol:           FilledThickLine,
		emptySymbol:            EmptyThinLine,
		handleSymbol:           HandleCircle,
		filledColor:            ColorCyan,
		emptyColor:             ColorDarkGray,
		handleColor:            ColorWhite,
		showHandle:             true,
		verticalLabelPosition:  LabelTop,
		verticalValuePosition:  ValueBottom,
		verticalValueAlignment: ValueAlignCenter,
	}
}

// Default is New(0, 0, 100).
func Default() Slider {
	return New(0, 0, 100)
}

// FromState creates a slider showing the state's value and bounds.
func FromState(s *State) Slider {
	return New(s.Value(), s.Min(), s.Max())
}

func (s Slider) Block(b *Block) Slider {
	s.block = b
	return s
}

func (s Slider) Orientation(o Orientation) Slider {
	s.orientation = o
	return s
}

func (s Slider) Label(label string) Slider {
	s.label = label
	return s
}

func (s Slider) ShowValue(show bool) Slider {
	s.showValue = show
	return s
}

func (s Slider) ValueAlignment(a Alignment) Slider {
	s.valueAlignment = a
	return s
}

func (s Slider) ShowHandle(show bool) Slider {
	s.showHandle = show
	return s
}

func (s Slider) Segmented(enabled bool) Slider {
	s.segmented = enabled
	return s
}

// ShowThumb is an alias for ShowHandle.
func (s Slider) ShowThumb(show bool) Slider { return s.ShowHandle(show) }

func (s Slider) Value(v float64) Slider {
	s.value = clamp(v, s.min, s.max)
	return s
}

func (s Slider) Min(min float64) Slider {
	s.min = min
	s.value = clamp(s.value, s.min, s.max)

	return s
}

func (s Slider) Max(max float64) Slider {
	s.max = max
	s.value = clamp(s.value, s.min, s.max)

	return s
}

func (s Slider) FilledSymbol(sym string) Slider {
	s.filledSymbol = sym
	return s
}

func (s Slider) EmptySymbol(sym string) Slider {
	s.emptySymbol = sym
	return s
}

func (s Slider) HandleSymbol(sym string) Slider {
	s.handleSymbol = sym
	return s
}

func (s Slider) FilledColor(c lipgloss.TerminalColor) Slider {
	s.filledColor = c
	return s
}

func (s Slider) EmptyColor(c lipgloss.TerminalColor) Slider {
	s.emptyColor = c
	return s
}

func (s Slider) HandleColor(c lipgloss.TerminalColor) Slider {
	s.handleColor = c
	return s
}

func (s Slider) HorizontalBarAlignment(a HorizontalBarAlignment) Slider {
	s.barAlignment = a
	s.barAligned = true

	return s
}

func (s Slider) VerticalLabelPosition(p VerticalLabelPosition) Slider {
	s.verticalLabelPosition = p
	return s
}

func (s Slider) VerticalValuePosition(p VerticalValuePosition) Slider {
	s.verticalValuePosition = p
	return s
}

func (s Slider) VerticalValueAlignment(a VerticalValueAlignment) Slider {
	s.verticalValueAlignment = a
	return s
}

// ApplyStyle copies the symbols, colors and segmentation of a preset.
func (s Slider) ApplyStyle(st Style) Slider {
	s.filledSymbol = st.Filled
	s.emptySymbol = st.Empty
	s.handleSymbol = st.Handle
	s.filledColor = st.FilledColor
	s.emptyColor = st.EmptyColor
	s.handleColor = st.HandleColor
	s.segmented = st.Segmented

	return s
}

// CurrentValue returns the clamped value.
func (s Slider) CurrentValue() float64 { return s.value }

// Percentage returns the filled fraction of the bar, from 0 to 1.
func (s Slider) Percentage() float64 {
	if math.Abs(s.max-s.min) < epsilon {
		return 0
	}

	return clamp((s.value-s.min)/(s.max-s.min), 0, 1)
}

// Render draws the slider into area of c.
func (s Slider) Render(area Rect, c *Canvas) {
	if s.block != nil {
		area = s.block.Render(area, c)
	}

	if area.IsEmpty() {
		return
	}

	if s.orientation == Vertical {
		s.renderVerticalText(area, c)
		s.renderVertical(area, c)

		return
	}

	row := s.barRow(area)
	s.renderHorizontalText(area, row, c)

	if s.segmented {
		s.renderSegmented(area, row, c)
	} else {
		s.renderHorizontal(area, row, c)
	}
}

// View renders the slider into a fresh width x height canvas and returns the
// styled text. Horizontal sliders with a label or value keep the first row for
// that text; vertical sliders keep the first and last rows.
func (s Slider) View(width, height int) string {
	c := NewCanvas(width, height)
	area := c.Area()

	if s.block == nil {
		switch {
		case s.orientation == Vertical:
			area = Rect{X: 0, Y: 1, Width: width, Height: height - 2}
		case (s.label != "" || s.showValue) && height >= 2:
			area = Rect{X: 0, Y: 1, Width: width, Height: height - 1}
		}
	}

	s.Render(area, c)

	return c.String()
}

// barRow is the first row of area unless an alignment was chosen explicitly.
func (s Slider) barRow(area Rect) int {
	if !s.barAligned {
		return area.Y
	}

	switch s.barAlignment {
	case BarTop:
		return area.Y
	case BarBottom:
		return area.Bottom() - 1
	default:
		return area.Y + (area.Height-1)/2
	}
}

func symbolWidth(sym string) int {
	return max(StringWidth(sym), 1)
}

func (s Slider) renderHorizontal(area Rect, row int, c *Canvas) {
	barWidth := area.Width
	filledWidth := symbolWidth(s.filledSymbol)
	emptyWidth := symbolWidth(s.emptySymbol)
	filledColumns := int(float64(barWidth) * s.Percentage())

	x := area.X
	for col := 0; col < barWidth; {
		sym, color, w := s.emptySymbol, s.emptyColor, emptyWidth
		if col < filledColumns {
			sym, color, w = s.filledSymbol, s.filledColor, filledWidth
		}

		if w > barWidth-col {
			for ; col < barWidth; col++ {
				c.SetString(x, row, " ", nil)
				x++
			}

			break
		}

		c.SetString(x, row, sym, color)
		x += w
		col += w
	}

	if !s.showHandle {
		return
	}

	handleX := area.X
	for acc := 0; acc < filledColumns && acc < barWidth; acc += filledWidth {
		if acc+filledWidth > filledColumns {
			break
		}

		handleX += filledWidth
	}

	if handleX+symbolWidth(s.handleSymbol) <= area.Right() {
		c.SetString(handleX, row, s.handleSymbol, s.handleColor)
	}
}

// renderSegmented draws one symbol per segment with a blank column between
// segments. The handle sits in the gap after the last filled segment.
func (s Slider) renderSegmented(area Rect, row int, c *Canvas) {
	stride := max(symbolWidth(s.filledSymbol), symbolWidth(s.emptySymbol)) + 1
	segments := max(area.Width/stride, 1)
	filled := int(math.Round(float64(segments) * s.Percentage()))

	for i := range segments {
		sym, color := s.emptySymbol, s.emptyColor
		if i < filled {
			sym, color = s.filledSymbol, s.filledColor
		}

		x := area.X + i*stride
		if x+symbolWidth(sym) > area.Right() {
			break
		}

		c.SetString(x, row, sym, color)
	}

	if !s.showHandle {
		return
	}

	handleX := area.X
	if filled > 0 {
		handleX = area.X + filled*stride - 1
	}

	if handleX+symbolWidth(s.handleSymbol) <= area.Right() {
		c.SetString(handleX, row, s.handleSymbol, s.handleColor)
	}
}

func (s Slider) renderVertical(area Rect, c *Canvas) {
	barHeight := area.Height
	filledHeight := symbolWidth(s.filledSymbol)
	emptyHeight := symbolWidth(s.emptySymbol)
	filledRows := int(float64(barHeight) * s.Percentage())
	x := area.X + area.Width/2

	y := area.Bottom() - 1
	for row := 0; row < barHeight && y >= area.Y; {
		sym, color, h := s.emptySymbol, s.emptyColor, emptyHeight
		if row < filledRows {
			sym, color, h = s.filledSymbol, s.filledColor, filledHeight
		}

		if h > barHeight-row {
			for ; row < barHeight && y >= area.Y; row++ {
				c.SetString(x, y, " ", nil)
				y--
			}

			break
		}

		c.SetString(x, y, sym, color)
		y -= h
		row += h
	}

	if !s.showHandle {
		return
	}

	handleY := area.Bottom() - 1
	for acc := 0; acc < filledRows && acc < barHeight; acc += filledHeight {
		if acc+filledHeight > filledRows {
			break
		}

		handleY -= filledHeight
	}

	if handleY >= area.Y && handleY < area.Bottom() {
		c.SetString(x, handleY, s.handleSymbol, s.handleColor)
	}
}

func (s Slider) renderHorizontalText(area Rect, row int, c *Canvas) {
	textRow := row - 1
	labelX := area.X
	labelWidth := StringWidth(s.label)

	if s.label != "" {
		c.SetString(labelX, textRow, s.label, nil)
	}

	if !s.showValue {
		return
	}

	value := fmt.Sprintf("%.1f", s.value)
	valueWidth := len(value)
	rightEdge := area.X + max(area.Width-valueWidth, 0)

	var valueX int

	switch {
	case s.valueAlignment == AlignLeft && s.label != "":
		valueX = labelX + labelWidth + 2
	case s.valueAlignment == AlignLeft:
		valueX = area.X
	case s.valueAlignment == AlignCenter:
		valueX = area.X + max(area.Width-valueWidth, 0)/2
	default:
		valueX = rightEdge
	}

	if s.label != "" && overlaps(labelX, labelWidth, valueX, valueWidth) {
		valueX = rightEdge
	}

	c.SetString(valueX, textRow, value, nil)
}

func overlaps(aX, aWidth, bX, bWidth int) bool {
	return !(aX+aWidth <= bX || bX+bWidth <= aX)
}

func (s Slider) renderVerticalText(area Rect, c *Canvas) {
	if s.label != "" {
		y := area.Y - 1
		if s.verticalLabelPosition == LabelBottom {
			y = area.Bottom()
		}

		x := area.X + max(area.Width-StringWidth(s.label), 0)/2
		c.SetString(x, y, s.label, nil)
	}

	if !s.showValue {
		return
	}

	value := fmt.Sprintf("%.0f", s.value)
	width := len(value)

	var y int

	switch s.verticalValuePosition {
	case ValueTop:
		y = area.Y - 1
	case ValueMiddle:
		y = area.Y + area.Height/2
	default:
		y = area.Bottom()
	}

	var x int

	switch s.verticalValueAlignment {
	case ValueAlignLeft:
		x = area.X
	case ValueAlignRight:
		x = area.X + max(area.Width-width, 0)
	default:
		x = area.X + max(area.Width-width, 0)/2
	}

	c.SetString(x, y, value, nil)
}
