package slider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(c *Canvas, y int) string {
	return strings.Split(c.PlainString(), "\n")[y]
}

func TestSlider_Defaults(t *testing.T) {
	s := New(150, 0, 100)
	assert.Equal(t, 100.0, s.CurrentValue())
	assert.Equal(t, FilledThickLine, s.filledSymbol)
	assert.Equal(t, EmptyThinLine, s.emptySymbol)
	assert.Equal(t, HandleCircle, s.handleSymbol)
	assert.True(t, s.showHandle)
	assert.False(t, s.showValue)
	assert.Equal(t, AlignRight, s.valueAlignment)
	assert.False(t, s.barAligned)
	assert.Equal(t, ValueBottom, s.verticalValuePosition)
	assert.Equal(t, ValueAlignCenter, s.verticalValueAlignment)

	assert.Equal(t, 0.0, Default().CurrentValue())
	assert.Equal(t, 20.0, New(50, 0, 100).Max(20).CurrentValue())
}

func TestSlider_RenderHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		slider Slider
		want   string
	}{
		{
			name:   "half",
			slider: New(50, 0, 100).ShowHandle(false),
			want:   "━━━━━─────",
		},
		{
			name:   "half with handle",
			slider: New(50, 0, 100),
			want:   "━━━━━●────",
		},
		{
			name:   "empty",
			slider: New(0, 0, 100),
			want:   "●─────────",
		},
		{
			name:   "full has no room for the handle",
			slider: New(100, 0, 100),
			want:   "━━━━━━━━━━",
		},
		{
			name:   "floor of filled columns",
			slider: New(59, 0, 100).ShowHandle(false),
			want:   "━━━━━─────",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 1)
			tt.slider.Render(c.Area(), c)
			assert.Equal(t, tt.want, row(c, 0))
		})
	}
}

func TestSlider_WideSymbolsFillExactWidth(t *testing.T) {
	c := NewCanvas(5, 1)
	New(0, 0, 100).EmptySymbol("✨").ShowHandle(false).Render(c.Area(), c)

	assert.Equal(t, "✨✨ ", row(c, 0))
	assert.Equal(t, 5, StringWidth(row(c, 0)))
}

func TestSlider_SameWidthRegardlessOfValue(t *testing.T) {
	for _, v := range []float64{0, 13, 50, 87, 100} {
		c := NewCanvas(17, 1)
		New(v, 0, 100).Render(c.Area(), c)
		assert.Equal(t, 17, StringWidth(row(c, 0)), "value %v", v)
	}
}

func TestSlider_LabelAndValue(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		label     string
		want      string
	}{
		{name: "right", alignment: AlignRight, label: "Vol", want: "Vol             50.0"},
		{name: "left after label", alignment: AlignLeft, label: "Vol", want: "Vol  50.0           "},
		{name: "left without label", alignment: AlignLeft, want: "50.0                "},
		{name: "center", alignment: AlignCenter, label: "Vol", want: "Vol     50.0        "},
		{name: "center overlapping label", alignment: AlignCenter, label: "Volume level", want: "Volume level    50.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 2)
			New(50, 0, 100).
				Label(tt.label).
				ShowValue(true).
				ValueAlignment(tt.alignment).
				Render(Rect{X: 0, Y: 1, Width: 20, Height: 1}, c)

			assert.Equal(t, tt.want, row(c, 0))
		})
	}
}

func TestSlider_LeftValueKeepsGapAfterLabel(t *testing.T) {
	c := NewCanvas(10, 2)
	New(50, 0, 100).
		Label("Volume").
		ShowValue(true).
		ValueAlignment(AlignLeft).
		Render(Rect{X: 0, Y: 1, Width: 10, Height: 1}, c)

	assert.Equal(t, "Volume  50", row(c, 0))
}

func TestSlider_BarRow(t *testing.T) {
	tests := []struct {
		name    string
		slider  Slider
		wantBar int
	}{
		{name: "first row by default", slider: New(50, 0, 100).Label("Vol"), wantBar: 1},
		{name: "explicit top", slider: New(50, 0, 100).Label("Vol").HorizontalBarAlignment(BarTop), wantBar: 1},
		{name: "explicit center", slider: New(50, 0, 100).Label("Vol").HorizontalBarAlignment(BarCenter), wantBar: 2},
		{name: "explicit bottom", slider: New(50, 0, 100).Label("Vol").HorizontalBarAlignment(BarBottom), wantBar: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 4)
			tt.slider.Render(Rect{X: 0, Y: 1, Width: 20, Height: 3}, c)

			assert.Equal(t, "Vol", strings.TrimSpace(row(c, tt.wantBar-1)))
			assert.Contains(t, row(c, tt.wantBar), "━")
			assert.Contains(t, row(c, tt.wantBar), "●")
		})
	}
}

func TestSlider_RenderVertical(t *testing.T) {
	c := NewCanvas(3, 6)
	New(50, 0, 100).
		Orientation(Vertical).
		Label("V").
		ShowValue(true).
		ShowHandle(false).
		Render(Rect{X: 0, Y: 1, Width: 3, Height: 4}, c)

	assert.Equal(t, " V ", row(c, 0))
	assert.Equal(t, " ─ ", row(c, 1))
	assert.Equal(t, " ─ ", row(c, 2))
	assert.Equal(t, " ━ ", row(c, 3))
	assert.Equal(t, " ━ ", row(c, 4))
	assert.Equal(t, "50 ", row(c, 5))
}

func TestSlider_VerticalPositions(t *testing.T) {
	c := NewCanvas(5, 6)
	New(100, 0, 100).
		Orientation(Vertical).
		Label("L").
		VerticalLabelPosition(LabelBottom).
		ShowValue(true).
		VerticalValuePosition(ValueTop).
		VerticalValueAlignment(ValueAlignRight).
		Render(Rect{X: 0, Y: 1, Width: 5, Height: 4}, c)

	assert.Equal(t, "  100", row(c, 0))
	assert.Equal(t, "  L  ", row(c, 5))
}

func TestSlider_Segmented(t *testing.T) {
	c := NewCanvas(10, 1)
	New(60, 0, 100).ApplyStyle(SegmentedStyle()).ShowHandle(false).Render(c.Area(), c)

	assert.Equal(t, "─ ─ ─ ─ ─ ", row(c, 0))
	assert.Equal(t, ColorRed, c.Cell(0, 0).Fg)
	assert.Equal(t, ColorRed, c.Cell(4, 0).Fg)
	assert.Equal(t, ColorDarkGray, c.Cell(6, 0).Fg)
}

func TestSlider_BlockShrinksArea(t *testing.T) {
	c := NewCanvas(8, 3)
	New(50, 0, 100).
		ShowHandle(false).
		Block(NewBlock(BorderRounded).Title(TitleLeft("T"))).
		Render(c.Area(), c)

	assert.Equal(t, "╭T─────╮", row(c, 0))
	assert.Equal(t, "│━━━───│", row(c, 1))
	assert.Equal(t, "╰──────╯", row(c, 2))
}

func TestSlider_EmptyAreaRendersNothing(t *testing.T) {
	c := NewCanvas(4, 2)
	New(50, 0, 100).Render(Rect{X: 0, Y: 0, Width: 0, Height: 1}, c)
	New(50, 0, 100).Block(NewBlock(BorderPlain)).Render(Rect{X: 0, Y: 0, Width: 2, Height: 2}, c)

	assert.Equal(t, "┌┐  ", row(c, 0))
	assert.Equal(t, "└┘  ", row(c, 1))
}

func TestSlider_View(t *testing.T) {
	out := New(50, 0, 100).Label("Vol").ShowValue(true).View(12, 2)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Vol")
	assert.Contains(t, lines[0], "50.0")
}

func TestSlider_ApplyStyle(t *testing.T) {
	s := New(0, 0, 100).ApplyStyle(ProgressHealth())
	assert.Equal(t, FilledDarkShade, s.filledSymbol)
	assert.Equal(t, ColorRed, s.filledColor)
	assert.Equal(t, RGB(40, 40, 40), s.emptyColor)
	assert.False(t, s.segmented)
}
