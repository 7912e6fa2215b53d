package slider

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// The 16 ANSI colors by their conventional names.
const (
	ColorBlack        = lipgloss.Color("0")
	ColorRed          = lipgloss.Color("1")
	ColorGreen        = lipgloss.Color("2")
	ColorYellow       = lipgloss.Color("3")
	ColorBlue         = lipgloss.Color("4")
	ColorMagenta      = lipgloss.Color("5")
	ColorCyan         = lipgloss.Color("6")
	ColorGray         = lipgloss.Color("7")
	ColorDarkGray     = lipgloss.Color("8")
	ColorLightRed     = lipgloss.Color("9")
	ColorLightGreen   = lipgloss.Color("10")
	ColorLightYellow  = lipgloss.Color("11")
	ColorLightBlue    = lipgloss.Color("12")
	ColorLightMagenta = lipgloss.Color("13")
	ColorLightCyan    = lipgloss.Color("14")
	ColorWhite        = lipgloss.Color("15")
)

// RGB returns a true-color value.
func RGB(r, g, b uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
