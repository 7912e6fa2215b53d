package demo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inovacc/tuislider/slider"
)

// Showcase is a named interactive demo
type Showcase struct {
	Name        string
	Title       string
	Description string
	// Keys is the VHS key script recorded into the showcase tape
	Keys []string

	build func() *board
}

// Model builds a fresh bubbletea model for the showcase
func (s Showcase) Model() tea.Model {
	return s.build()
}

// Run starts the showcase on the terminal and blocks until it quits
func (s Showcase) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	if _, err := tea.NewProgram(s.Model(), opts...).Run(); err != nil {
		return fmt.Errorf("showcase %s: %w", s.Name, err)
	}

	return nil
}

// Showcases lists every demo in display order
func Showcases() []Showcase {
	return []Showcase{
		{
			Name: "horizontal", Title: "Horizontal Sliders",
			Description: "Basic horizontal styles",
			Keys:        []string{"Right 5", "Down", "Left 8", "Down 2", "Right 10"},
			build:       horizontalShowcase,
		},
		{
			Name: "vertical", Title: "Vertical Sliders",
			Description: "Vertical styles side by side",
			Keys:        []string{"Up 5", "Right", "Down 6", "Right 2", "Up 10"},
			build:       verticalShowcase,
		},
		{
			Name: "styles", Title: "Style Gallery",
			Description: "Every named style preset",
			Keys:        []string{"Down 4", "Right 5", "Down 10", "Left 5", "Down 10"},
			build:       stylesShowcase,
		},
		{
			Name: "borders", Title: "Border Styles",
			Description: "Plain, rounded, double, thick, segmented and sides-only borders",
			Keys:        []string{"Down 3", "Right 4", "Down 5", "Left 6"},
			build:       bordersShowcase,
		},
		{
			Name: "progress", Title: "Progress Bars",
			Description: "Handle-less sliders advancing on a timer",
			Keys:        []string{"Sleep 3s", "Space", "Sleep 1s", "Space", "Sleep 2s"},
			build:       progressShowcase,
		},
		{
			Name: "status", Title: "Status Bars",
			Description: "Game stats and system monitor",
			Keys:        []string{"Sleep 3s", "Space", "Down 5", "Left 3"},
			build:       statusShowcase,
		},
		{
			Name: "handles", Title: "Handle Symbols",
			Description: "Handle glyphs with visibility toggle",
			Keys:        []string{"Right 3", "Down 2", "Space", "Sleep 1s", "Space", "Down 3"},
			build:       handlesShowcase,
		},
		{
			Name: "steps", Title: "Step Sizes",
			Description: "Fine and coarse step sizes",
			Keys:        []string{"Right 3", "Down", "Right 3", "Type \"5\"", "Right 2", "Type \"+\"", "Right 2"},
			build:       stepsShowcase,
		},
		{
			Name: "titles", Title: "Title Alignment",
			Description: "Left, center and right block titles",
			Keys:        []string{"Right 3", "Down", "Left 2", "Down 2", "Right 4"},
			build:       titlesShowcase,
		},
		{
			Name: "alignment", Title: "Value Alignment",
			Description: "Value text alignment and bar placement",
			Keys:        []string{"Right 4", "Down", "Left 3", "Down 3", "Right 2"},
			build:       alignmentShowcase,
		},
		{
			Name: "vertical-positioning", Title: "Vertical Positioning",
			Description: "Label and value placement on vertical sliders",
			Keys:        []string{"Up 4", "Right", "Down 3", "Right 2", "Up 6"},
			build:       verticalPositioningShowcase,
		},
		{
			Name: "custom", Title: "Custom Styles",
			Description: "Hand picked symbols and RGB colors",
			Keys:        []string{"Right 5", "Down 2", "Left 4", "Down 2", "Right 3"},
			build:       customShowcase,
		},
	}
}

// ShowcaseByName looks a showcase up by its name
func ShowcaseByName(name string) (Showcase, bool) {
	for _, s := range Showcases() {
		if s.Name == name {
			return s, true
		}
	}

	return Showcase{}, false
}

// ShowcaseNames returns the registered names in display order
func ShowcaseNames() []string {
	all := Showcases()

	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}

	return names
}

func mustState(value, min, max, step float64) *slider.State {
	s, err := slider.NewStateWithStep(value, min, max, step)
	if err != nil {
		panic(err)
	}

	return s
}

func horizontalShowcase() *board {
	rows := []struct {
		label string
		value float64
		style slider.Style
	}{
		{"Volume", 75, slider.DefaultStyle()},
		{"Brightness", 60, slider.Blocks()},
		{"Bass", 30, slider.Dots()},
		{"Treble", 65, slider.Arrows()},
		{"Balance", 40, slider.Minimal()},
		{"Contrast", 70, slider.DoubleLine()},
		{"Saturation", 55, slider.Wave()},
		{"Speed", 70, slider.ProgressStyle()},
		{"Gain", 45, slider.Thick()},
		{"Mix", 60, slider.Gradient()},
		{"Pan", 35, slider.Rounded()},
		{"Master", 75, slider.Retro()},
	}

	items := make([]*item, 0, len(rows))

	for _, r := range rows {
		s := slider.Default().ApplyStyle(r.style).ShowValue(true)
		it := newItem(fmt.Sprintf("%s - %s", r.label, r.style.Name), mustState(r.value, 0, 100, 1), s)
		it.model.ID = r.label
		items = append(items, it)
	}

	return newBoard("Horizontal Sliders", false, items...)
}

func verticalShowcase() *board {
	cols := []struct {
		label string
		value float64
		style slider.Style
	}{
		{"Vol", 75, slider.VerticalStyle()},
		{"Bass", 60, slider.VerticalBlocks()},
		{"Mid", 55, slider.VerticalGradient()},
		{"High", 50, slider.VerticalDots()},
		{"Gain", 90, slider.VerticalSquares()},
		{"Mix", 55, slider.VerticalEqualizer()},
	}

	items := make([]*item, 0, len(cols))

	for _, c := range cols {
		s := slider.Default().
			Orientation(slider.Vertical).
			ApplyStyle(c.style).
			ShowValue(true)
		items = append(items, newItem(c.label, mustState(c.value, 0, 100, 1), s))
	}

	return newBoard("Vertical Sliders", true, items...)
}

func stylesShowcase() *board {
	styles := slider.Styles()
	items := make([]*item, 0, len(styles))

	for i, st := range styles {
		value := float64(20 + (i*37)%70)
		s := slider.Default().ApplyStyle(st).ShowValue(true)
		items = append(items, newItem(st.Name, mustState(value, 0, 100, 1), s))
	}

	return newBoard(fmt.Sprintf("Style Gallery (%d styles)", len(styles)), false, items...)
}

func bordersShowcase() *board {
	borders := slider.AllBorderStyles()
	items := make([]*item, 0, len(borders))

	for i, b := range borders {
		block := slider.NewBlock(b).Title(slider.TitleLeft(" " + b.Name() + " "))
		s := slider.Default().ShowValue(true)
		it := newItemWithBlock(b.Name(), mustState(float64(30+i*5), 0, 100, 1), s, block)
		it.desc = b.Description()
		items = append(items, it)
	}

	return newBoard("Border Styles", false, items...)
}

func progressShowcase() *board {
	rows := []struct {
		label string
		style slider.Style
		rate  float64
	}{
		{"Download", slider.ProgressDownload(), 3},
		{"Upload", slider.ProgressUpload(), 1.5},
		{"Loading", slider.ProgressLoading(), 5},
		{"Installation", slider.ProgressInstallation(), 2},
		{"Battery", slider.ProgressBattery(), 0.5},
	}

	items := make([]*item, 0, len(rows))
	rates := make(map[string]float64, len(rows))

	for _, r := range rows {
		s := slider.Default().ApplyStyle(r.style).ShowHandle(false).ShowValue(true)
		items = append(items, newItem(r.label, mustState(0, 0, 100, 1), s))
		rates[r.label] = r.rate
	}

	return newBoard("Progress Bars", false, items...).withTicker(200*time.Millisecond, func(b *board) {
		for _, it := range b.items {
			st := it.model.State
			if st.IsAtMax() {
				st.SetValue(st.Min())
				continue
			}

			st.Increase(rates[it.model.ID])
		}
	})
}

func statusShowcase() *board {
	rows := []struct {
		label string
		value float64
		style slider.Style
	}{
		{"Health", 85, slider.ProgressHealth()},
		{"Mana", 60, slider.ProgressMana()},
		{"Stamina", 70, slider.Blocks()},
		{"Experience", 35, slider.ProgressExperience()},
		{"CPU", 45, slider.SegmentedBars()},
		{"Memory", 68, slider.SegmentedBlocks()},
		{"Disk", 82, slider.SegmentedSquares()},
		{"Network", 25, slider.SegmentedDots()},
	}

	items := make([]*item, 0, len(rows))

	for _, r := range rows {
		s := slider.Default().ApplyStyle(r.style).ShowHandle(false).ShowValue(true)
		items = append(items, newItem(r.label, mustState(r.value, 0, 100, 1), s))
	}

	b := newBoard("Status Bars", false, items...).withTicker(500*time.Millisecond, updateStatus)
	b.running = false

	return b
}

// updateStatus regenerates the character stats and drifts the system gauges
func updateStatus(b *board) {
	for _, it := range b.items {
		st := it.model.State

		switch it.model.ID {
		case "Health":
			st.Increase(1)
		case "Mana":
			st.Increase(2)
		case "Stamina":
			st.Increase(3)
		case "Experience":
			st.Increase(1.5)

			if st.IsAtMax() {
				st.SetValue(st.Min())
			}
		default:
			st.Increase(rand.Float64()*10 - 5)
		}
	}
}

func handlesShowcase() *board {
	handles := []struct {
		name   string
		symbol string
	}{
		{"Circle", slider.HandleCircle},
		{"Double Circle", slider.HandleDoubleCircle},
		{"Square", slider.HandleSquare},
		{"Diamond", slider.HandleDiamond},
		{"Hexagon", slider.HandleHexagon},
		{"Triangle", slider.HandleTriangleRight},
		{"Bullseye", slider.HandleBullseye},
		{"Star", slider.HandleStar},
	}

	items := make([]*item, 0, len(handles))

	for i, h := range handles {
		s := slider.Default().HandleSymbol(h.symbol).HandleColor(slider.ColorYellow).ShowValue(true)
		items = append(items, newItem(h.name, mustState(float64(25+i*8), 0, 100, 1), s))
	}

	visible := true

	return newBoard("Handle Symbols", false, items...).withToggle("toggle handle", func(b *board) {
		visible = !visible

		for _, it := range b.items {
			it.model.Slider = it.model.Slider.ShowHandle(visible)
		}

		b.status = fmt.Sprintf("handles visible: %t", visible)
	})
}

var (
	stepFine   = key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "step 1"))
	stepMedium = key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "step 2.5"))
	stepCoarse = key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "step 5"))
	stepDouble = key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "double step"))
	stepHalve  = key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "halve step"))
)

func stepsShowcase() *board {
	rows := []struct {
		label                 string
		value, min, max, step float64
	}{
		{"Fine (0.5)", 50, 0, 100, 0.5},
		{"Normal (1)", 50, 0, 100, 1},
		{"Medium (2.5)", 50, 0, 100, 2.5},
		{"Coarse (5)", 50, 0, 100, 5},
		{"Large (10)", 50, 0, 100, 10},
		{"Quarter (25)", 50, 0, 100, 25},
		{"Opacity 0..1 (0.01)", 0.5, 0, 1, 0.01},
		{"Temperature -60..0 (0.5)", 0, -60, 0, 0.5},
		{"Offset -20..50 (0.1)", 20, -20, 50, 0.1},
	}

	items := make([]*item, 0, len(rows))

	for _, r := range rows {
		s := slider.Default().ShowValue(true)
		items = append(items, newItem(r.label, mustState(r.value, r.min, r.max, r.step), s))
	}

	setStep := func(b *board, step float64) {
		it := b.current()
		if err := it.model.State.SetStep(step); err != nil {
			b.status = err.Error()
			return
		}

		b.status = fmt.Sprintf("%s step: %g", it.label, it.model.State.Step())
	}

	return newBoard("Step Sizes", false, items...).withKeys(func(b *board, msg tea.KeyMsg) bool {
		step := b.current().model.State.Step()

		switch {
		case key.Matches(msg, stepFine):
			setStep(b, 1)
		case key.Matches(msg, stepMedium):
			setStep(b, 2.5)
		case key.Matches(msg, stepCoarse):
			setStep(b, 5)
		case key.Matches(msg, stepDouble):
			setStep(b, step*2)
		case key.Matches(msg, stepHalve):
			setStep(b, step/2)
		default:
			return false
		}

		return true
	}, stepFine, stepMedium, stepCoarse, stepDouble, stepHalve)
}

func titlesShowcase() *board {
	rows := []struct {
		label string
		value float64
		desc  string
		title func(string) slider.Title
	}{
		{"Volume", 75, "Left aligned", slider.TitleLeft},
		{"Bass", 60, "Center aligned", slider.TitleCenter},
		{"Treble", 45, "Right aligned", slider.TitleRight},
		{"Balance", 50, "Right aligned with spacing for the value", slider.TitleRightWithSpacing},
	}

	items := make([]*item, 0, len(rows)+1)

	for _, r := range rows {
		block := slider.NewBlock(slider.BorderRounded).Title(r.title(fmt.Sprintf(" %s - %s ", r.label, r.desc)))
		s := slider.Default().ShowValue(true)
		it := newItemWithBlock(r.label, mustState(r.value, 0, 100, 1), s, block)
		it.desc = r.desc
		items = append(items, it)
	}

	multi := slider.NewBlock(slider.BorderRounded).
		Title(slider.TitleLeft(" Gain ")).
		Title(slider.TitleCenter(" multiple ")).
		Title(slider.Title{Text: " bottom ", Alignment: slider.TitleAlignRight, Position: slider.TitleBottom})
	gain := newItemWithBlock("Gain", mustState(30, 0, 100, 1), slider.Default(), multi)
	gain.desc = "Several titles on one block"
	items = append(items, gain)

	return newBoard("Title Alignment", false, items...)
}

func alignmentShowcase() *board {
	rows := []struct {
		label     string
		value     float64
		alignment slider.Alignment
		bar       slider.HorizontalBarAlignment
	}{
		{"Value Left", 25, slider.AlignLeft, slider.BarCenter},
		{"Value Center", 50, slider.AlignCenter, slider.BarCenter},
		{"Value Right", 75, slider.AlignRight, slider.BarCenter},
		{"Bar Top", 40, slider.AlignRight, slider.BarTop},
		{"Bar Bottom", 60, slider.AlignRight, slider.BarBottom},
	}

	items := make([]*item, 0, len(rows))

	for _, r := range rows {
		block := slider.NewBlock(slider.BorderRoundedSidesOnly)
		s := slider.Default().
			Label(r.label).
			ShowValue(true).
			ValueAlignment(r.alignment).
			HorizontalBarAlignment(r.bar)
		items = append(items, newItemWithBlock(r.label, mustState(r.value, 0, 100, 1), s, block))
	}

	return newBoard("Value Alignment", false, items...)
}

func verticalPositioningShowcase() *board {
	cols := []struct {
		label     string
		labelPos  slider.VerticalLabelPosition
		valuePos  slider.VerticalValuePosition
		alignment slider.VerticalValueAlignment
	}{
		{"Top/Top", slider.LabelTop, slider.ValueTop, slider.ValueAlignLeft},
		{"Top/Mid", slider.LabelTop, slider.ValueMiddle, slider.ValueAlignCenter},
		{"Top/Bot", slider.LabelTop, slider.ValueBottom, slider.ValueAlignRight},
		{"Bot/Top", slider.LabelBottom, slider.ValueTop, slider.ValueAlignCenter},
		{"Bot/Mid", slider.LabelBottom, slider.ValueMiddle, slider.ValueAlignLeft},
	}

	items := make([]*item, 0, len(cols))

	for i, c := range cols {
		s := slider.Default().
			Orientation(slider.Vertical).
			ApplyStyle(slider.VerticalBlocks()).
			Label(c.label).
			ShowValue(true).
			VerticalLabelPosition(c.labelPos).
			VerticalValuePosition(c.valuePos).
			VerticalValueAlignment(c.alignment)
		items = append(items, newItemWithBlock(c.label, mustState(float64(30+i*12), 0, 100, 1), s, slider.NewBlock(slider.BorderPlain)))
	}

	return newBoard("Vertical Positioning", true, items...)
}

func customShowcase() *board {
	styles := []slider.Style{
		slider.Custom("Shaded Ocean").
			WithFilled(slider.FilledBlock).WithEmpty(slider.FilledLightShade).WithHandle(slider.HandleCircle).
			WithFilledColor(slider.RGB(0, 150, 255)).WithHandleColor(slider.RGB(255, 255, 255)),
		slider.Custom("Sea Wave").
			WithFilled(slider.FilledWave).WithEmpty(slider.EmptyWave).WithHandle(slider.HandleDoubleCircle).
			WithFilledColor(slider.RGB(0, 200, 180)).WithHandleColor(slider.RGB(255, 215, 0)),
		slider.Custom("Dark Shade").
			WithFilled(slider.FilledDarkShade).WithEmpty(slider.FilledLightShade).WithHandle(slider.HandleDiamond).
			WithFilledColor(slider.RGB(180, 80, 255)).WithHandleColor(slider.RGB(255, 100, 200)),
		slider.Custom("Medium Shade").
			WithFilled(slider.FilledMediumShade).WithEmpty(slider.EmptyLightShade).WithHandle(slider.HandleHexagon).
			WithFilledColor(slider.RGB(255, 140, 0)).WithHandleColor(slider.RGB(255, 60, 60)),
		slider.Custom("Bar Outline").
			WithFilled(slider.FilledBar).WithEmpty(slider.EmptyBarOutline).WithHandle(slider.HandleTriangleRight).
			WithFilledColor(slider.RGB(80, 220, 100)).WithHandleColor(slider.RGB(255, 255, 255)),
		slider.Custom("Diamonds").
			WithFilled(slider.FilledDiamond).WithEmpty(slider.EmptyDiamond).WithHandle(slider.HandleDoubleDiamond).
			WithFilledColor(slider.RGB(255, 80, 120)).WithHandleColor(slider.RGB(255, 255, 255)),
		slider.Custom("Ascii").
			WithFilled(slider.FilledEquals).WithEmpty(slider.EmptyHyphen).WithHandle(slider.HandleAt).
			WithFilledColor(slider.ColorLightGreen).WithEmptyColor(slider.ColorGray),
	}

	items := make([]*item, 0, len(styles))

	for i, st := range styles {
		s := slider.Default().ApplyStyle(st).ShowValue(true)
		it := newItem(st.Name, mustState(float64(35+i*9), 0, 100, 1), s)
		it.desc = describeStyle(st)
		items = append(items, it)
	}

	return newBoard("Custom Styles", false, items...)
}

func describeStyle(st slider.Style) string {
	return strings.Join([]string{"filled " + st.Filled, "empty " + st.Empty, "handle " + st.Handle}, "  ")
}
