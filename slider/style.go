package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is a named bundle of symbols and colors applied to a Slider.
type Style struct {
	Name        string
	Filled      string
	Empty       string
	Handle      string
	FilledColor lipgloss.TerminalColor
	EmptyColor  lipgloss.TerminalColor
	HandleColor lipgloss.TerminalColor
	Segmented   bool
}

func newStyle(name string, set SymbolSet, filled lipgloss.TerminalColor) Style {
	return Style{
		Name:        name,
		Filled:      set.Filled,
		Empty:       set.Empty,
		Handle:      set.Handle,
		FilledColor: filled,
		EmptyColor:  ColorDarkGray,
		HandleColor: ColorWhite,
	}
}

func (s Style) WithFilled(symbol string) Style {
	s.Filled = symbol
	return s
}

func (s Style) WithEmpty(symbol string) Style {
	s.Empty = symbol
	return s
}

func (s Style) WithHandle(symbol string) Style {
	s.Handle = symbol
	return s
}

func (s Style) WithFilledColor(c lipgloss.TerminalColor) Style {
	s.FilledColor = c
	return s
}

func (s Style) WithEmptyColor(c lipgloss.TerminalColor) Style {
	s.EmptyColor = c
	return s
}

func (s Style) WithHandleColor(c lipgloss.TerminalColor) Style {
	s.HandleColor = c
	return s
}

func (s Style) WithSegments(enabled bool) Style {
	s.Segmented = enabled
	return s
}

// Custom starts from the default look under a new name.
func Custom(name string) Style {
	s := DefaultStyle()
	s.Name = name

	return s
}

// Basic styles.

func DefaultStyle() Style { return newStyle("Default", SymbolsDefault, ColorCyan) }
func Blocks() Style { return newStyle("Blocks", SymbolsBlock, ColorGreen) }
func Dots() Style { return newStyle("Dots", SymbolsDotted, ColorYellow) }
func Arrows() Style { return newStyle("Arrows", SymbolsArrow, ColorMagenta) }

func Minimal() Style {
	return newStyle("Minimal", SymbolsMinimal, ColorBlue).WithHandleColor(ColorCyan)
}

func DoubleLine() Style { return newStyle("Double Line", SymbolsDoubleLine, ColorRed) }
func Wave() Style { return newStyle("Wave", SymbolsWave, ColorCyan) }

func ProgressStyle() Style {
	return newStyle("Progress", SymbolsProgress, ColorGreen).WithHandleColor(ColorYellow)
}

func Thick() Style {
	return newStyle("Thick", SymbolsThick, ColorMagenta).WithEmptyColor(RGB(60, 60, 60))
}

func Gradient() Style {
	return newStyle("Gradient", SymbolsGradient, ColorBlue).WithHandleColor(ColorCyan)
}

func Rounded() Style { return newStyle("Rounded", SymbolsRounded, ColorYellow) }
func Retro() Style { return newStyle("Retro", SymbolsRetro, ColorGreen) }

// Segmented styles draw the bar as separated cells.

func segmented(name, filled, empty, handle string, c lipgloss.TerminalColor) Style {
	return newStyle(name, SymbolSet{filled, empty, handle}, c).WithSegments(true)
}

func SegmentedStyle() Style {
	return segmented("Segmented", FilledSegment, EmptySegment, HandleCircle, ColorRed)
}

func SegmentedBlocks() Style {
	return segmented("Segmented Blocks", FilledBlock, FilledLightShade, HandleSquare, ColorGreen)
}

func SegmentedDots() Style {
	return segmented("Segmented Dots", FilledCircle, EmptyCircle, HandleDiamond, ColorCyan).
		WithHandleColor(ColorYellow)
}

func SegmentedBars() Style {
	return segmented("Segmented Bars", FilledVerticalBar, "┆", HandleTriangleRight, ColorMagenta)
}

func SegmentedSquares() Style {
	return segmented("Segmented Squares", FilledSquare, EmptySquare, HandleDoubleCircle, ColorBlue).
		WithHandleColor(ColorCyan)
}

func SegmentedDiamonds() Style {
	return segmented("Segmented Diamonds", FilledDiamond, EmptyDiamond, HandleHexagon, ColorYellow)
}

func SegmentedStars() Style {
	return segmented("Segmented Stars", FilledStar, EmptyStar, HandleSparkle, ColorYellow).
		WithHandleColor(ColorCyan)
}

func SegmentedArrows() Style {
	return segmented("Segmented Arrows", HandleTriangleRight, "▷", HandleTriangleRight, ColorRed)
}

func SegmentedThick() Style {
	return segmented("Segmented Thick", FilledThickLine, EmptyDashed, HandleLargeCircle, ColorCyan)
}

// Progress bar presets.

func ProgressDownload() Style {
	return newStyle("Download", SymbolSet{FilledBlock, FilledLightShade, HandleCircle}, ColorGreen)
}

func ProgressUpload() Style {
	return newStyle("Upload", SymbolSet{FilledProgress, EmptyProgress, HandleCircle}, ColorBlue)
}

func ProgressHealth() Style {
	return newStyle("Health", SymbolSet{FilledDarkShade, FilledLightShade, HandleCircle}, ColorRed).
		WithEmptyColor(RGB(40, 40, 40))
}

func ProgressMana() Style {
	return newStyle("Mana", SymbolSet{FilledDarkShade, FilledLightShade, HandleCircle}, ColorCyan).
		WithEmptyColor(RGB(40, 40, 40))
}

func ProgressExperience() Style {
	return newStyle("Experience", SymbolSet{FilledThickLine, EmptyThinLine, HandleCircle}, ColorYellow)
}

func ProgressLoading() Style {
	return newStyle("Loading", SymbolSet{FilledDoubleLine, EmptyThinLine, HandleCircle}, ColorMagenta)
}

func ProgressInstallation() Style {
	return newStyle("Installation", SymbolSet{FilledBar, EmptyBarOutline, HandleCircle}, ColorLightGreen)
}

func ProgressBattery() Style {
	return newStyle("Battery", SymbolSet{FilledSquare, EmptySquare, HandleCircle}, ColorLightYellow)
}

// Vertical presets.

func VerticalStyle() Style { return newStyle("Vertical", SymbolsVertical, ColorCyan) }
func VerticalBlocks() Style { return newStyle("Vertical Blocks", SymbolsVerticalBlocks, ColorGreen) }
func VerticalGradient() Style { return newStyle("Vertical Gradient", SymbolsVerticalGradient, ColorMagenta) }
func VerticalDots() Style { return newStyle("Vertical Dots", SymbolsVerticalDots, ColorYellow) }
func VerticalSquares() Style { return newStyle("Vertical Squares", SymbolsVerticalSquares, ColorBlue) }
func VerticalEqualizer() Style { return newStyle("Equalizer", SymbolsVertical, ColorLightGreen) }

// Horizontal presets.

func HorizontalStyle() Style { return newStyle("Horizontal", SymbolsHorizontal, ColorCyan) }
func HorizontalThick() Style { return newStyle("Horizontal Thick", SymbolsHorizontalThick, ColorCyan) }
func HorizontalBlocks() Style { return newStyle("Horizontal Blocks", SymbolsHorizontalBlocks, ColorGreen) }
func HorizontalGradient() Style { return newStyle("Horizontal Gradient", SymbolsHorizontalGradient, ColorMagenta) }
func HorizontalDots() Style { return newStyle("Horizontal Dots", SymbolsHorizontalDots, ColorYellow) }
func HorizontalSquares() Style { return newStyle("Horizontal Squares", SymbolsHorizontalSquares, ColorBlue) }

func HorizontalDouble() Style {
	return newStyle("Horizontal Double", SymbolsDoubleLine, ColorLightCyan)
}

// Styles returns every preset in display order.
func Styles() []Style {
	return []Style{
		DefaultStyle(), Blocks(), Dots(), Arrows(), Minimal(), DoubleLine(), Wave(),
		ProgressStyle(), Thick(), Gradient(), Rounded(), Retro(),
		SegmentedStyle(), SegmentedBlocks(), SegmentedDots(), SegmentedBars(), SegmentedSquares(),
		SegmentedDiamonds(), SegmentedStars(), SegmentedArrows(), SegmentedThick(),
		ProgressDownload(), ProgressUpload(), ProgressHealth(), ProgressMana(),
		ProgressExperience(), ProgressLoading(), ProgressInstallation(), ProgressBattery(),
		VerticalStyle(), VerticalBlocks(), VerticalGradient(), VerticalDots(), VerticalSquares(), VerticalEqualizer(),
		HorizontalStyle(), HorizontalThick(), HorizontalBlocks(), HorizontalGradient(),
		HorizontalDots(), HorizontalSquares(), HorizontalDouble(),
	}
}

// StyleByName looks a preset up by name, ignoring case.
func StyleByName(name string) (Style, bool) {
	for _, s := range Styles() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}

	return Style{}, false
}
