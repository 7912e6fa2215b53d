package slider

// Alignment places the value text of a horizontal slider.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// VerticalLabelPosition places the label of a vertical slider.
type VerticalLabelPosition int

const (
	LabelTop VerticalLabelPosition = iota
	LabelBottom
)

// VerticalValuePosition places the value of a vertical slider.
type VerticalValuePosition int

const (
	ValueTop VerticalValuePosition = iota
	ValueMiddle
	ValueBottom
)

// VerticalValueAlignment aligns the value of a vertical slider within its area.
type VerticalValueAlignment int

const (
	ValueAlignLeft VerticalValueAlignment = iota
	ValueAlignCenter
	ValueAlignRight
)

// HorizontalBarAlignment picks the row a horizontal bar occupies in a taller area.
type HorizontalBarAlignment int

const (
	BarCenter HorizontalBarAlignment = iota
	BarTop
	BarBottom
)
