package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Back     key.Binding
	Toggle   key.Binding
	Start    key.Binding
	Reset    key.Binding
	Cancel   key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Theme    key.Binding
	Language key.Binding
	Explain  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Cancel:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
		Faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "code language")),
		Explain:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "explanation")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// runKeys is the key map shown on the run screen.
type runKeys keyMap

func (k runKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Start, k.Reset, k.Cancel, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k runKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Start, k.Reset, k.Cancel},
		{k.Faster, k.Slower, k.Theme},
		{k.Explain, k.Language, k.Back},
		{k.Help, k.Quit},
	}
}

// menuKeys is the key map shown on the algorithm menu.
type menuKeys keyMap

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Theme, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Theme, k.Help, k.Quit}}
}

// inputKeys is the key map shown while editing the input.
type inputKeys keyMap

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Back}}
}
