package slider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the bindings a Model responds to.
type KeyMap struct {
	Increase    key.Binding
	Decrease    key.Binding
	IncreaseBig key.Binding
	DecreaseBig key.Binding
	Home        key.Binding
	End         key.Binding
}

// DefaultKeyMap binds arrows and vim keys. Shift moves by ten steps.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "up", "l", "k"),
			key.WithHelp("→/↑", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "down", "h", "j"),
			key.WithHelp("←/↓", "decrease"),
		),
		IncreaseBig: key.NewBinding(
			key.WithKeys("shift+right", "shift+up", "L", "K", "pgup"),
			key.WithHelp("shift+→", "increase ×10"),
		),
		DecreaseBig: key.NewBinding(
			key.WithKeys("shift+left", "shift+down", "H", "J", "pgdown"),
			key.WithHelp("shift+←", "decrease ×10"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "min"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "max"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Home, k.End}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.DecreaseBig, k.IncreaseBig},
		{k.Home, k.End},
	}
}

// ChangedMsg is emitted when a key press changes the value of a focused Model.
type ChangedMsg struct {
	ID    string
	Value float64
}

// Model is a bubbletea component driving a Slider from a State.
type Model struct {
	ID     string
	State  *State
	Slider Slider
	KeyMap KeyMap
	Width  int
	Height int

	focus bool
}

// NewModel wraps state with a default slider. The model starts unfocused.
func NewModel(state *State, s Slider) Model {
	return Model{
		State:  state,
		Slider: s,
		KeyMap: DefaultKeyMap(),
		Width:  40,
		Height: 2,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) Focus()        { m.focus = true }
func (m *Model) Blur()         { m.focus = false }
func (m Model) Focused() bool  { return m.focus }
func (m Model) Value() float64 { return m.State.Value() }

// Update handles key presses while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focus {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	before := m.State.Value()

	switch {
	case key.Matches(keyMsg, m.KeyMap.Increase):
		m.State.StepUp()
	case key.Matches(keyMsg, m.KeyMap.Decrease):
		m.State.StepDown()
	case key.Matches(keyMsg, m.KeyMap.IncreaseBig):
		m.State.Increase(m.State.Step() * 10)
	case key.Matches(keyMsg, m.KeyMap.DecreaseBig):
		m.State.Decrease(m.State.Step() * 10)
	case key.Matches(keyMsg, m.KeyMap.Home):
		m.State.SetValue(m.State.Min())
	case key.Matches(keyMsg, m.KeyMap.End):
		m.State.SetValue(m.State.Max())
	default:
		return m, nil
	}

	value := m.State.Value()
	if value == before {
		return m, nil
	}

	id := m.ID

	return m, func() tea.Msg { return ChangedMsg{ID: id, Value: value} }
}

// View renders the slider with the current state.
func (m Model) View() string {
	return m.Slider.Min(m.State.Min()).Max(m.State.Max()).Value(m.State.Value()).View(m.Width, m.Height)
}
