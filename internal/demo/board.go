package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/tuislider/slider"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true)

	selectedBorder = lipgloss.Color("3")
	idleBorder     = lipgloss.Color("8")
)

// boardKeyMap holds the navigation bindings shared by every showcase
type boardKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Quit   key.Binding

	slider slider.KeyMap
	extra  []key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Prev, k.Next, k.slider.Decrease, k.slider.Increase}
	bindings = append(bindings, k.extra...)

	if k.Toggle.Enabled() {
		bindings = append(bindings, k.Toggle)
	}

	return append(bindings, k.Quit)
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func horizontalKeys() boardKeyMap {
	km := slider.DefaultKeyMap()
	km.Increase = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase"))
	km.Decrease = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease"))
	km.IncreaseBig = key.NewBinding(key.WithKeys("shift+right", "L", "pgup"), key.WithHelp("L", "increase ×10"))
	km.DecreaseBig = key.NewBinding(key.WithKeys("shift+left", "H", "pgdown"), key.WithHelp("H", "decrease ×10"))

	return boardKeyMap{
		Next:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
		Prev:   key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"), key.WithDisabled()),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		slider: km,
	}
}

func verticalKeys() boardKeyMap {
	km := slider.DefaultKeyMap()
	km.Increase = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "increase"))
	km.Decrease = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "decrease"))
	km.IncreaseBig = key.NewBinding(key.WithKeys("shift+up", "K", "pgup"), key.WithHelp("K", "increase ×10"))
	km.DecreaseBig = key.NewBinding(key.WithKeys("shift+down", "J", "pgdown"), key.WithHelp("J", "decrease ×10"))

	return boardKeyMap{
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"), key.WithDisabled()),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		slider: km,
	}
}

// item is one slider on a board
type item struct {
	label string
	desc  string
	block *slider.Block
	model slider.Model
}

// newItem wraps s in a rounded block titled with label
func newItem(label string, state *slider.State, s slider.Slider) *item {
	return newItemWithBlock(label, state, s, slider.NewBlock(slider.BorderRounded).Title(slider.TitleLeft(" "+label+" ")))
}

func newItemWithBlock(label string, state *slider.State, s slider.Slider, block *slider.Block) *item {
	it := &item{label: label, block: block}
	s = s.Block(block)

	it.model = slider.NewModel(state, s)
	it.model.ID = label

	return it
}

type tickMsg time.Time

// board lays out a list of sliders, one selected at a time. Horizontal boards
// stack rows, vertical boards place columns side by side.
type board struct {
	title    string
	items    []*item
	vertical bool
	selected int
	width    int
	height   int
	status   string

	keys boardKeyMap
	help help.Model

	// onKey handles showcase specific keys before navigation
	onKey func(b *board, msg tea.KeyMsg) bool
	// onToggle runs on the toggle key when it is enabled
	onToggle func(b *board)
	// onTick runs every interval while running is true
	onTick   func(b *board)
	interval time.Duration
	running  bool
}

func newBoard(title string, vertical bool, items ...*item) *board {
	b := &board{
		title:    title,
		items:    items,
		vertical: vertical,
		width:    80,
		height:   24,
		help:     help.New(),
	}

	if vertical {
		b.keys = verticalKeys()
	} else {
		b.keys = horizontalKeys()
	}

	for _, it := range b.items {
		it.model.KeyMap = b.keys.slider
	}

	b.selectItem(0)
	b.layout()

	return b
}

// withToggle enables the space binding
func (b *board) withToggle(desc string, fn func(b *board)) *board {
	b.keys.Toggle.SetHelp("space", desc)
	b.keys.Toggle.SetEnabled(true)
	b.onToggle = fn

	return b
}

// withTicker drives fn every interval; running toggles with space
func (b *board) withTicker(interval time.Duration, fn func(b *board)) *board {
	b.interval = interval
	b.onTick = fn
	b.running = true

	return b.withToggle("pause", func(b *board) {
		b.running = !b.running
	})
}

func (b *board) withKeys(fn func(b *board, msg tea.KeyMsg) bool, bindings ...key.Binding) *board {
	b.onKey = fn
	b.keys.extra = bindings

	return b
}

func (b *board) current() *item {
	if len(b.items) == 0 {
		return nil
	}

	return b.items[b.selected]
}

func (b *board) selectItem(i int) {
	if len(b.items) == 0 {
		return
	}

	i = ((i % len(b.items)) + len(b.items)) % len(b.items)

	for j, it := range b.items {
		if j == i {
			it.model.Focus()
			it.block.BorderColor = selectedBorder
		} else {
			it.model.Blur()
			it.block.BorderColor = idleBorder
		}
	}

	b.selected = i
}

// chrome is the number of rows used by the title and help lines
const chrome = 4

func (b *board) layout() {
	if len(b.items) == 0 {
		return
	}

	if b.vertical {
		colWidth := max(b.width/len(b.items), 5)
		for _, it := range b.items {
			it.model.Width = colWidth
			it.model.Height = max(b.height-chrome, 5)
		}

		return
	}

	for _, it := range b.items {
		it.model.Width = b.width
		it.model.Height = 3
	}
}

func (b *board) tick() tea.Cmd {
	if b.interval <= 0 {
		return nil
	}

	return tea.Tick(b.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (b *board) Init() tea.Cmd {
	return b.tick()
}

func (b *board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.help.Width = msg.Width
		b.layout()

		return b, nil

	case tickMsg:
		if b.running && b.onTick != nil {
			b.onTick(b)
		}

		return b, b.tick()

	case slider.ChangedMsg:
		b.status = fmt.Sprintf("%s: %.1f", msg.ID, msg.Value)

		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case b.onKey != nil && b.onKey(b, msg):
			return b, nil
		case key.Matches(msg, b.keys.Toggle):
			if b.onToggle != nil {
				b.onToggle(b)
			}

			return b, nil
		case key.Matches(msg, b.keys.Next):
			b.selectItem(b.selected + 1)

			return b, nil
		case key.Matches(msg, b.keys.Prev):
			b.selectItem(b.selected - 1)

			return b, nil
		}

		if it := b.current(); it != nil {
			var cmd tea.Cmd

			it.model, cmd = it.model.Update(msg)

			return b, cmd
		}
	}

	return b, nil
}

// visible returns the window of rows that fits the terminal, keeping the
// selection on screen
func (b *board) visible() (start, end int) {
	per := max((b.height-chrome)/3, 1)
	if per >= len(b.items) {
		return 0, len(b.items)
	}

	start = min(max(b.selected-per/2, 0), len(b.items)-per)

	return start, start + per
}

func (b *board) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(b.title))
	sb.WriteByte('\n')

	if it := b.current(); it != nil && it.desc != "" {
		sb.WriteString(descStyle.Render(it.desc))
	}

	sb.WriteByte('\n')

	if b.vertical {
		cols := make([]string, 0, len(b.items))
		for _, it := range b.items {
			cols = append(cols, it.model.View())
		}

		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	} else {
		start, end := b.visible()
		for _, it := range b.items[start:end] {
			sb.WriteString(it.model.View())
			sb.WriteByte('\n')
		}
	}

	sb.WriteByte('\n')

	status := b.status
	if b.onTick != nil && !b.running {
		status = strings.TrimSpace(status + " (paused)")
	}

	sb.WriteString(statusStyle.Render(status))
	sb.WriteByte('\n')
	sb.WriteString(b.help.View(b.keys))

	return sb.String()
}
